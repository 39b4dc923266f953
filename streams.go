package qbdiff

import "encoding/binary"

// triple is one control record (a, b, c): a bytes of additive diff, then b
// literal bytes, then a signed seek of c in old.
type triple struct {
	a, b, c int64
}

// streams holds the three intermediate byte sequences the encoder produces
// and the decoder replays: CB (the big-endian triple stream), DB (the
// byte-wise diff stream), and EB (literal extra bytes). Keeping all three in
// one owned value means dropping it releases all three backing arrays
// together, rather than tracking three separate lifetimes.
type streams struct {
	cb []byte
	db []byte
	eb []byte
}

// appendTriple serializes t as three big-endian int64 values onto cb.
func (s *streams) appendTriple(t triple) {
	var buf [24]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(t.a))
	binary.BigEndian.PutUint64(buf[8:16], uint64(t.b))
	binary.BigEndian.PutUint64(buf[16:24], uint64(t.c))
	s.cb = append(s.cb, buf[:]...)
}

// readTriple decodes the k-th triple out of cb.
func readTriple(cb []byte, k int) triple {
	off := k * 24
	return triple{
		a: int64(binary.BigEndian.Uint64(cb[off : off+8])),
		b: int64(binary.BigEndian.Uint64(cb[off+8 : off+16])),
		c: int64(binary.BigEndian.Uint64(cb[off+16 : off+24])),
	}
}

// tripleCount returns how many 24-byte triples cb holds, or an error if its
// length is not a multiple of 24.
func tripleCount(cb []byte) (int, error) {
	if len(cb)%24 != 0 {
		return 0, wrap(ErrBadPatch, "control stream length %d is not a multiple of 24", len(cb))
	}
	return len(cb) / 24, nil
}
