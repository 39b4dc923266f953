package qbdiff

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

// maxPresetDictCap approximates "LZMA2 at maximum preset": any stream this
// package compresses (CB, DB, EB, or a FULL fallback's new) of up to 64 MiB
// fits in a single window; larger streams do not.
const maxPresetDictCap = 1 << 26 // 64 MiB

func writerConfig(dictCap int) xz.WriterConfig {
	return xz.WriterConfig{
		DictCap:  dictCap,
		CheckSum: xz.CRC64,
	}
}

// lzmaCompress compresses data with LZMA2 inside an xz container using a
// CRC-64 integrity check.
func lzmaCompress(data []byte, dictCap int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := writerConfig(dictCap).NewWriter(&buf)
	if err != nil {
		return nil, wrap(ErrLZMA, "open writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, wrap(ErrLZMA, "write: %v", err)
	}
	if err := w.Close(); err != nil {
		return nil, wrap(ErrLZMA, "close: %v", err)
	}
	return buf.Bytes(), nil
}

// lzmaDecompress decompresses an LZMA2/xz stream, failing with LZMAERR if
// the result is not exactly wantLen bytes (the container always records the
// original length alongside the compressed one, so any mismatch means the
// codec or the framing around it is broken).
func lzmaDecompress(data []byte, wantLen int64) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, wrap(ErrLZMA, "open reader: %v", err)
	}
	out := make([]byte, 0, wantLen)
	buf := bytes.NewBuffer(out)
	n, err := io.Copy(buf, r)
	if err != nil {
		return nil, wrap(ErrLZMA, "read: %v", err)
	}
	if n != wantLen {
		return nil, wrap(ErrLZMA, "decompressed length %d != expected %d", n, wantLen)
	}
	return buf.Bytes(), nil
}
