package qbdiff

import "io"

// Compute produces a patch from which Apply(old, patch, sink) reconstructs
// new exactly, and writes it to sink.
//
// Compute is a pure function of old and new: identical inputs always
// produce byte-identical output. It never retries internally; any failure
// releases every buffer it allocated before returning.
func Compute(old, new []byte, sink io.Writer, opts ...Option) error {
	o := resolveOptions(opts)
	sum := checksum(new)

	if len(old) == 0 {
		return computeFull(new, sum, o, sink)
	}

	s := computeStreams(old, new)

	// Fall back to a FULL container when the raw triple/diff/extra streams
	// are already larger than twice new: compressing them first would only
	// change which files take this path, not whether the comparison is fair.
	if len(s.cb)+len(s.db)+len(s.eb) > 2*len(new) {
		return computeFull(new, sum, o, sink)
	}

	compressedCB, err := lzmaCompress(s.cb, o.dictCap)
	if err != nil {
		return err
	}
	compressedDB, err := lzmaCompress(s.db, o.dictCap)
	if err != nil {
		return err
	}
	compressedEB, err := lzmaCompress(s.eb, o.dictCap)
	if err != nil {
		return err
	}

	out := writeBig(sum, int64(len(old)), int64(len(new)), s, streams{
		cb: compressedCB,
		db: compressedDB,
		eb: compressedEB,
	})
	return flush(sink, out)
}

// computeFull emits a FULL container: new compressed exactly once, with the
// checksum computed over the uncompressed bytes.
func computeFull(new []byte, sum [checksumSize]byte, o Options, sink io.Writer) error {
	compressed, err := lzmaCompress(new, o.dictCap)
	if err != nil {
		return err
	}
	out := writeFull(sum, int64(len(new)), compressed)
	return flush(sink, out)
}

// Apply reconstructs new from old and patch and writes it to sink. Apply
// never writes a partial result: it replays fully into memory, verifies the
// checksum, and only then flushes to sink, so a wrong old or corrupt patch
// never produces silent wrong output even when sink is a real file.
func Apply(old, patch []byte, sink io.Writer) error {
	big, err := sniffMagic(patch)
	if err != nil {
		return err
	}
	if !big {
		return applyFull(patch, sink)
	}
	return applyBig(old, patch, sink)
}

func applyFull(patch []byte, sink io.Writer) error {
	sum, newSize, compressed, err := parseFull(patch)
	if err != nil {
		return err
	}
	newData, err := lzmaDecompress(compressed, newSize)
	if err != nil {
		return err
	}
	if checksum(newData) != sum {
		return ErrBadCksum
	}
	return flush(sink, newData)
}

func applyBig(old, patch []byte, sink io.Writer) error {
	h, ranges, err := parseBig(patch)
	if err != nil {
		return err
	}
	if int64(len(old)) != h.oldSize {
		return wrap(ErrBadPatch, "old is %d bytes, patch was built against %d", len(old), h.oldSize)
	}

	cb, err := lzmaDecompress(ranges[0], h.originalCBLen)
	if err != nil {
		return err
	}
	db, err := lzmaDecompress(ranges[1], h.originalDBLen)
	if err != nil {
		return err
	}
	eb, err := lzmaDecompress(ranges[2], h.originalEBLen)
	if err != nil {
		return err
	}

	newData, err := replay(old, cb, db, eb, h.newSize)
	if err != nil {
		return err
	}
	if checksum(newData) != h.checksum {
		return ErrBadCksum
	}
	return flush(sink, newData)
}

// flush writes data to sink in a single call, reporting a short write as
// IOERR rather than silently truncating output.
func flush(sink io.Writer, data []byte) error {
	n, err := sink.Write(data)
	if err != nil {
		return wrap(ErrIO, "%v", err)
	}
	if n != len(data) {
		return wrap(ErrIO, "short write: %d of %d bytes", n, len(data))
	}
	return nil
}
