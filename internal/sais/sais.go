// Package sais builds a suffix array over a byte buffer for use by qbdiff's
// approximate longest-match search.
//
// The construction is Colin Percival's qsufsort (a bucket-and-refine sort
// that runs in O(n log n) comparisons), the same algorithm bsdiff itself
// uses to build a total lexicographic ordering of old's suffixes, without
// pulling in a dedicated SA-IS implementation. One generic implementation
// below covers both index widths — int32 for inputs under 2^31-8 bytes,
// int64 beyond that — rather than duplicating it per width.
package sais

// Index is the integer width used for suffix array entries. qbdiff picks
// int32 when len(old) < 2^31-8 to halve memory, and int64 otherwise; both
// produce identical orderings.
type Index interface {
	~int32 | ~int64
}

// Build returns I, an array of length len(data)+1, such that for every
// 0 <= i < j <= len(data), the suffix starting at I[i] is lexicographically
// less than or equal to the suffix starting at I[j]. I[0] is always the
// sentinel empty suffix at position len(data) — the empty string sorts
// before every non-empty one; the longest-match search in package search
// relies on it being the lower bound of its binary search interval.
//
// Build never fails on its own; a nil/zero-length data produces a
// single-element array holding the sentinel.
func Build[T Index](data []byte) []T {
	n := len(data)
	sa := make([]T, n+1)
	rank := make([]T, n+1)
	qsufsort(sa, rank, data)
	return sa
}

// qsufsort is Manber-Myers-style bucket refinement as specialized by
// Percival for bsdiff: first bucket by single bytes, then repeatedly double
// the compared prefix length h, using rank as the inverse permutation during
// each refinement pass.
func qsufsort[T Index](sa, rank []T, data []byte) {
	n := len(data)
	var buckets [256]T

	for i := 0; i < n; i++ {
		buckets[data[i]]++
	}
	for i := 1; i < 256; i++ {
		buckets[i] += buckets[i-1]
	}
	for i := 255; i > 0; i-- {
		buckets[i] = buckets[i-1]
	}
	buckets[0] = 0

	for i := 0; i < n; i++ {
		buckets[data[i]]++
		sa[buckets[data[i]]] = T(i)
	}
	sa[0] = T(n)
	for i := 0; i < n; i++ {
		rank[i] = buckets[data[i]]
	}
	rank[n] = 0

	for i := 1; i < 256; i++ {
		if buckets[i] == buckets[i-1]+1 {
			sa[buckets[i]] = -1
		}
	}
	sa[0] = -1

	for h := T(1); sa[0] != -(T(n) + 1); h += h {
		length := T(0)
		i := T(0)
		for int(i) < n+1 {
			if sa[i] < 0 {
				length -= sa[i]
				i -= sa[i]
			} else {
				if length != 0 {
					sa[int(i)-int(length)] = -length
				}
				length = rank[sa[i]] + 1 - i
				split(sa, rank, i, length, h)
				i += length
				length = 0
			}
		}
		if length != 0 {
			sa[int(i)-int(length)] = -length
		}
	}

	for i := 0; i < n+1; i++ {
		sa[rank[i]] = T(i)
	}
}

// split partitions sa[start:start+length] into three bands (suffixes whose
// rank-at-offset-h is less than, equal to, or greater than the pivot's), the
// classic three-way quicksort-style refinement step.
func split[T Index](sa, rank []T, start, length, h T) {
	if length < 16 {
		for k := start; k < start+length; {
			j := T(1)
			x := rank[sa[k]+h]
			i := T(1)
			for int(k+i) < int(start+length) {
				if rank[sa[k+i]+h] < x {
					x = rank[sa[k+i]+h]
					j = 0
				}
				if rank[sa[k+i]+h] == x {
					sa[k+j], sa[k+i] = sa[k+i], sa[k+j]
					j++
				}
				i++
			}
			for i := T(0); i < j; i++ {
				rank[sa[k+i]] = k + j - 1
			}
			if j == 1 {
				sa[k] = -1
			}
			k += j
		}
		return
	}

	x := rank[sa[start+(length/2)]+h]
	var jj, kk T
	for i := start; i < start+length; i++ {
		if rank[sa[i]+h] < x {
			jj++
		} else if rank[sa[i]+h] == x {
			kk++
		}
	}
	jj += start
	kk += jj

	i, j, k := start, T(0), T(0)
	for i < jj {
		if rank[sa[i]+h] < x {
			i++
		} else if rank[sa[i]+h] == x {
			sa[i], sa[jj+j] = sa[jj+j], sa[i]
			j++
		} else {
			sa[i], sa[kk+k] = sa[kk+k], sa[i]
			k++
		}
	}
	for jj+j < kk {
		if rank[sa[jj+j]+h] == x {
			j++
		} else {
			sa[jj+j], sa[kk+k] = sa[kk+k], sa[jj+j]
			k++
		}
	}

	if jj > start {
		split(sa, rank, start, jj-start, h)
	}
	for i := T(0); i < kk-jj; i++ {
		rank[sa[jj+i]] = kk - 1
	}
	if jj == kk-1 {
		sa[jj] = -1
	}
	if start+length > kk {
		split(sa, rank, kk, start+length-kk, h)
	}
}
