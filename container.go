package qbdiff

import "encoding/binary"

// Container magics and fixed header layout. Big-endian throughout, with
// every stream length written as a fixed-width integer ahead of its
// payload, flat rather than staged since the format has no optional
// sections.
const (
	magicBig  = "QBDB1"
	magicFull = "QBDF1"

	bigHeaderSize  = 133
	fullHeaderSize = 77

	magicSize = 5
)

// bigHeader is the parsed fixed header of a BIG container.
type bigHeader struct {
	checksum       [checksumSize]byte
	oldSize        int64
	newSize        int64
	compressedCB   int64
	compressedDB   int64
	compressedEB   int64
	originalCBLen  int64
	originalDBLen  int64
	originalEBLen  int64
}

func putI64(buf []byte, v int64) { binary.BigEndian.PutUint64(buf, uint64(v)) }
func getI64(buf []byte) int64    { return int64(binary.BigEndian.Uint64(buf)) }

// writeBig serializes a BIG container: magic, checksum, sizes, then the
// three compressed streams back to back.
func writeBig(sum [checksumSize]byte, oldSize, newSize int64, s streams, compressed streams) []byte {
	out := make([]byte, bigHeaderSize, bigHeaderSize+len(compressed.cb)+len(compressed.db)+len(compressed.eb))
	copy(out[0:5], magicBig)
	copy(out[5:69], sum[:])
	putI64(out[69:77], oldSize)
	putI64(out[77:85], newSize)
	putI64(out[85:93], int64(len(compressed.cb)))
	putI64(out[93:101], int64(len(compressed.db)))
	putI64(out[101:109], int64(len(compressed.eb)))
	putI64(out[109:117], int64(len(s.cb)))
	putI64(out[117:125], int64(len(s.db)))
	putI64(out[125:133], int64(len(s.eb)))
	out = append(out, compressed.cb...)
	out = append(out, compressed.db...)
	out = append(out, compressed.eb...)
	return out
}

// parseBig validates and decodes a BIG container's fixed header plus the
// byte ranges of its three compressed payloads. It does not decompress;
// callers pass the returned ranges to lzmaDecompress.
func parseBig(patch []byte) (bigHeader, [3][]byte, error) {
	var h bigHeader
	if len(patch) < bigHeaderSize {
		return h, [3][]byte{}, wrap(ErrTruncPatch, "patch is %d bytes, need at least %d for a BIG header", len(patch), bigHeaderSize)
	}
	copy(h.checksum[:], patch[5:69])
	h.oldSize = getI64(patch[69:77])
	h.newSize = getI64(patch[77:85])
	h.compressedCB = getI64(patch[85:93])
	h.compressedDB = getI64(patch[93:101])
	h.compressedEB = getI64(patch[101:109])
	h.originalCBLen = getI64(patch[109:117])
	h.originalDBLen = getI64(patch[117:125])
	h.originalEBLen = getI64(patch[125:133])

	if h.oldSize < 0 || h.newSize < 0 || h.compressedCB < 0 || h.compressedDB < 0 || h.compressedEB < 0 ||
		h.originalCBLen < 0 || h.originalDBLen < 0 || h.originalEBLen < 0 {
		return h, [3][]byte{}, wrap(ErrTruncPatch, "negative declared length in header")
	}

	cbOff := int64(bigHeaderSize)
	dbOff := cbOff + h.compressedCB
	ebOff := dbOff + h.compressedDB
	end := ebOff + h.compressedEB

	if end != int64(len(patch)) {
		return h, [3][]byte{}, wrap(ErrTruncPatch, "EB section ends at %d, container is %d bytes", end, len(patch))
	}

	return h, [3][]byte{
		patch[cbOff:dbOff],
		patch[dbOff:ebOff],
		patch[ebOff:end],
	}, nil
}

// writeFull serializes a FULL container: magic, checksum, uncompressed new
// length, then the single compressed stream.
func writeFull(sum [checksumSize]byte, newSize int64, compressedNew []byte) []byte {
	out := make([]byte, fullHeaderSize, fullHeaderSize+len(compressedNew))
	copy(out[0:5], magicFull)
	copy(out[5:69], sum[:])
	putI64(out[69:77], newSize)
	out = append(out, compressedNew...)
	return out
}

// parseFull validates and decodes a FULL container's fixed header plus the
// byte range of its single compressed payload.
func parseFull(patch []byte) ([checksumSize]byte, int64, []byte, error) {
	var sum [checksumSize]byte
	if len(patch) < fullHeaderSize {
		return sum, 0, nil, wrap(ErrTruncPatch, "patch is %d bytes, need at least %d for a FULL header", len(patch), fullHeaderSize)
	}
	copy(sum[:], patch[5:69])
	newSize := getI64(patch[69:77])
	if newSize < 0 {
		return sum, 0, nil, wrap(ErrTruncPatch, "negative declared new size")
	}
	return sum, newSize, patch[77:], nil
}

// sniffMagic reports which container variant patch claims to be, or an
// error if its first 5 bytes match neither magic.
func sniffMagic(patch []byte) (big bool, err error) {
	if len(patch) < magicSize {
		return false, wrap(ErrTruncPatch, "patch is %d bytes, shorter than the %d-byte magic", len(patch), magicSize)
	}
	switch string(patch[:magicSize]) {
	case magicBig:
		return true, nil
	case magicFull:
		return false, nil
	default:
		return false, wrap(ErrTruncPatch, "unrecognized magic %q", patch[:magicSize])
	}
}
