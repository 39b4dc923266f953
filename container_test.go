package qbdiff

import (
	"bytes"
	"testing"
)

func TestWriteParseBigRoundTrip(t *testing.T) {
	sum := checksum([]byte("hello"))
	s := streams{cb: bytes.Repeat([]byte{1}, 24), db: []byte{2, 3, 4}, eb: []byte{5}}
	compressed := streams{cb: []byte("ccc"), db: []byte("dd"), eb: []byte("e")}

	out := writeBig(sum, 100, 200, s, compressed)
	if len(out) != bigHeaderSize+len(compressed.cb)+len(compressed.db)+len(compressed.eb) {
		t.Fatalf("writeBig length=%d, want %d", len(out), bigHeaderSize+6)
	}
	if string(out[:magicSize]) != magicBig {
		t.Fatalf("magic=%q, want %q", out[:magicSize], magicBig)
	}

	h, ranges, err := parseBig(out)
	if err != nil {
		t.Fatalf("parseBig: %v", err)
	}
	if h.checksum != sum {
		t.Fatalf("checksum mismatch")
	}
	if h.oldSize != 100 || h.newSize != 200 {
		t.Fatalf("oldSize=%d newSize=%d, want 100,200", h.oldSize, h.newSize)
	}
	if h.originalCBLen != int64(len(s.cb)) || h.originalDBLen != int64(len(s.db)) || h.originalEBLen != int64(len(s.eb)) {
		t.Fatalf("original lengths not round-tripped")
	}
	if !bytes.Equal(ranges[0], compressed.cb) || !bytes.Equal(ranges[1], compressed.db) || !bytes.Equal(ranges[2], compressed.eb) {
		t.Fatalf("compressed ranges not round-tripped")
	}
}

func TestParseBigTruncated(t *testing.T) {
	sum := checksum([]byte("x"))
	out := writeBig(sum, 1, 1, streams{}, streams{cb: []byte("a")})
	truncated := out[:bigHeaderSize-1]
	if _, _, err := parseBig(truncated); Code(err) != TRUNCPATCH {
		t.Fatalf("parseBig(truncated) code=%v, want TRUNCPATCH", Code(err))
	}
}

func TestParseBigShortOfDeclaredPayload(t *testing.T) {
	sum := checksum([]byte("x"))
	out := writeBig(sum, 1, 1, streams{}, streams{cb: []byte("abcd")})
	out = out[:len(out)-1]
	if _, _, err := parseBig(out); Code(err) != TRUNCPATCH {
		t.Fatalf("parseBig(short) code=%v, want TRUNCPATCH", Code(err))
	}
}

func TestWriteParseFullRoundTrip(t *testing.T) {
	sum := checksum([]byte("abcdef"))
	out := writeFull(sum, 6, []byte("payload"))
	if string(out[:magicSize]) != magicFull {
		t.Fatalf("magic=%q, want %q", out[:magicSize], magicFull)
	}

	gotSum, newSize, payload, err := parseFull(out)
	if err != nil {
		t.Fatalf("parseFull: %v", err)
	}
	if gotSum != sum {
		t.Fatalf("checksum mismatch")
	}
	if newSize != 6 {
		t.Fatalf("newSize=%d, want 6", newSize)
	}
	if string(payload) != "payload" {
		t.Fatalf("payload=%q, want %q", payload, "payload")
	}
}

func TestSniffMagic(t *testing.T) {
	big, err := sniffMagic([]byte(magicBig + "rest"))
	if err != nil || !big {
		t.Fatalf("sniffMagic(BIG): big=%v err=%v", big, err)
	}

	big, err = sniffMagic([]byte(magicFull + "rest"))
	if err != nil || big {
		t.Fatalf("sniffMagic(FULL): big=%v err=%v", big, err)
	}

	if _, err := sniffMagic([]byte("XXXXX")); Code(err) != TRUNCPATCH {
		t.Fatalf("sniffMagic(garbage) code=%v, want TRUNCPATCH", Code(err))
	}

	if _, err := sniffMagic([]byte("abc")); Code(err) != TRUNCPATCH {
		t.Fatalf("sniffMagic(short) code=%v, want TRUNCPATCH", Code(err))
	}
}

// TestContainerOffsetsMatchLayout pins the byte offsets of the FULL
// container's checksum and new_size fields, since external tooling may read
// the container directly.
func TestContainerOffsetsMatchLayout(t *testing.T) {
	sum := checksum([]byte("abcdef"))
	out := writeFull(sum, 6, []byte("x"))
	if getI64(out[69:77]) != 6 {
		t.Fatalf("new_size at offset 69 = %d, want 6", getI64(out[69:77]))
	}
	if !bytes.Equal(out[5:69], sum[:]) {
		t.Fatalf("checksum not at offset 5..69")
	}
}
