package qbdiff

// replay walks the control triples against old and db/eb, reconstructing
// new byte-for-byte. It never touches a real sink directly — api.go flushes
// the returned buffer only after replay succeeds and the checksum verifies,
// so a wrong old or a corrupt patch never produces partial output.
func replay(old []byte, cb, db, eb []byte, newSize int64) ([]byte, error) {
	count, err := tripleCount(cb)
	if err != nil {
		return nil, err
	}

	oldSize := int64(len(old))
	newData := make([]byte, newSize)
	var newPos, oldPos int64
	var dbPos, ebPos int64

	for k := 0; k < count; k++ {
		t := readTriple(cb, k)

		if t.a < 0 || t.b < 0 {
			return nil, wrap(ErrBadPatch, "triple %d has negative a=%d or b=%d", k, t.a, t.b)
		}
		if newPos+t.a > newSize {
			return nil, wrap(ErrBadPatch, "triple %d: new_pos+a=%d exceeds new_size=%d", k, newPos+t.a, newSize)
		}
		if dbPos+t.a > int64(len(db)) {
			return nil, wrap(ErrBadPatch, "triple %d: DB stream exhausted", k)
		}

		copy(newData[newPos:newPos+t.a], db[dbPos:dbPos+t.a])
		dbPos += t.a

		for i := int64(0); i < t.a; i++ {
			p := oldPos + i
			if p >= 0 && p < oldSize {
				newData[newPos+i] += old[p]
			}
		}

		newPos += t.a
		oldPos += t.a

		if newPos+t.b > newSize {
			return nil, wrap(ErrBadPatch, "triple %d: new_pos+b=%d exceeds new_size=%d", k, newPos+t.b, newSize)
		}
		if oldPos+t.c > oldSize || oldPos+t.c < 0 {
			return nil, wrap(ErrBadPatch, "triple %d: old_pos+c=%d out of [0,%d]", k, oldPos+t.c, oldSize)
		}
		if ebPos+t.b > int64(len(eb)) {
			return nil, wrap(ErrBadPatch, "triple %d: EB stream exhausted", k)
		}

		copy(newData[newPos:newPos+t.b], eb[ebPos:ebPos+t.b])
		ebPos += t.b

		newPos += t.b
		oldPos += t.c
	}

	if newPos != newSize {
		return nil, wrap(ErrBadPatch, "replay ended at new_pos=%d, want new_size=%d", newPos, newSize)
	}
	if dbPos != int64(len(db)) || ebPos != int64(len(eb)) {
		return nil, wrap(ErrBadPatch, "stream cursors did not land at end-of-stream (db=%d/%d, eb=%d/%d)", dbPos, len(db), ebPos, len(eb))
	}

	return newData, nil
}
