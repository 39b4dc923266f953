package qbdiff

import (
	"github.com/qbdiff/qbdiff/internal/sais"
	"github.com/qbdiff/qbdiff/internal/search"
)

// sa32Ceiling is the len(old) at and above which 64-bit suffix array indices
// are used; below it, 32-bit indices are used.
const sa32Ceiling = (1 << 31) - 8

// fuzzFlushThreshold: a match is committed once its length exceeds
// old_score by more than this many bytes.
const fuzzFlushThreshold = 8

// computeStreams walks new against a suffix array over old and produces the
// three-stream encoding (CB/DB/EB). old must be non-empty; callers take the
// FULL-container path instead when it is not.
func computeStreams(old, new []byte) streams {
	if len(old) < sa32Ceiling {
		return computeStreamsWidth[int32](old, new)
	}
	return computeStreamsWidth[int64](old, new)
}

func computeStreamsWidth[T sais.Index](old, new []byte) streams {
	sa := sais.Build[T](old)
	return match(sa, old, new)
}

// match performs the outer scan over new_pos, the old_score bookkeeping
// that decides when a match is "good enough" to commit, and the
// forward/backward fuzzy extension with overlap resolution performed at
// every commit.
func match[T sais.Index](sa []T, old, new []byte) streams {
	var s streams
	newSize, oldSize := len(new), len(old)

	var lastNewPos, lastOldPos, lastOffset int
	newPos, matchLen, oldPos := 0, 0, 0

	for newPos < newSize {
		oldScore := 0
		newPos += matchLen
		newPeek := newPos

		for newPos < newSize {
			oldPos, matchLen = search.Longest(sa, old, new[newPos:])

			for newPeek < newPos+matchLen {
				if newPeek+lastOffset < oldSize && old[newPeek+lastOffset] == new[newPeek] {
					oldScore++
				}
				newPeek++
			}

			if (matchLen == oldScore && matchLen != 0) || matchLen > oldScore+fuzzFlushThreshold {
				break
			}

			if newPos+lastOffset < oldSize && old[newPos+lastOffset] == new[newPos] {
				oldScore--
			}
			newPos++
		}

		if matchLen != oldScore || newPos == newSize {
			fwd := forwardFuzzy(old, new, lastNewPos, lastOldPos, newPos)
			var back int
			if newPos < newSize {
				back = backwardFuzzy(old, new, lastNewPos, newPos, oldPos)
			}

			if lastNewPos+fwd > newPos-back {
				shift := resolveOverlap(old, new, lastNewPos, lastOldPos, newPos, oldPos, fwd, back)
				overlap := (lastNewPos + fwd) - (newPos - back)
				fwd += shift - overlap
				back -= shift
			}

			for i := 0; i < fwd; i++ {
				s.db = append(s.db, new[lastNewPos+i]-old[lastOldPos+i])
			}
			extraLen := (newPos - back) - (lastNewPos + fwd)
			s.eb = append(s.eb, new[lastNewPos+fwd:lastNewPos+fwd+extraLen]...)

			s.appendTriple(triple{
				a: int64(fwd),
				b: int64(extraLen),
				c: int64((oldPos - back) - (lastOldPos + fwd)),
			})

			lastNewPos = newPos - back
			lastOldPos = oldPos - back
			lastOffset = oldPos - newPos
		}
	}

	return s
}

// forwardFuzzy extends the match starting at (lastNewPos, lastOldPos)
// forward, stopping at the prefix length that maximizes 2*matches-length.
func forwardFuzzy(old, new []byte, lastNewPos, lastOldPos, newPos int) int {
	var bytes, best, bestLen int
	for i := 0; lastNewPos+i < newPos && lastOldPos+i < len(old); i++ {
		if old[lastOldPos+i] == new[lastNewPos+i] {
			bytes++
		}
		if bytes*2-(i+1) > best*2-bestLen {
			best = bytes
			bestLen = i + 1
		}
	}
	return bestLen
}

// backwardFuzzy extends the just-found match at (newPos, oldPos) backward by
// the symmetric optimization.
func backwardFuzzy(old, new []byte, lastNewPos, newPos, oldPos int) int {
	var bytes, best, bestLen int
	for i := 1; newPos >= lastNewPos+i && oldPos >= i; i++ {
		if old[oldPos-i] == new[newPos-i] {
			bytes++
		}
		if bytes*2-i > best*2-bestLen {
			best = bytes
			bestLen = i
		}
	}
	return bestLen
}

// resolveOverlap scans the region where the forward and backward extensions
// collide and returns the split offset (shift) that maximizes forward-match
// count minus backward-match count.
func resolveOverlap(old, new []byte, lastNewPos, lastOldPos, newPos, oldPos, fwd, back int) int {
	overlap := (lastNewPos + fwd) - (newPos - back)
	var bytes, best, shift int
	for i := 0; i < overlap; i++ {
		if new[lastNewPos+fwd-overlap+i] == old[lastOldPos+fwd-overlap+i] {
			bytes++
		}
		if new[newPos-back+i] == old[oldPos-back+i] {
			bytes--
		}
		if bytes > best {
			best = bytes
			shift = i + 1
		}
	}
	return shift
}
