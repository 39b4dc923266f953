// Package search implements qbdiff's approximate longest-match search: given
// a suffix array over old and a query position in new, find the old
// position whose suffix shares the longest common prefix with the query.
//
// Implemented iteratively rather than as a recursive binary search (tail
// recursion has no reason to survive translation into Go), and
// parameterized once over the suffix array's index width instead of keeping
// two near-duplicate copies.
package search

import "github.com/qbdiff/qbdiff/internal/sais"

// Longest returns (pos, length): the position in old and the length of the
// longest common prefix between old[pos:] and query, maximized over the
// suffixes the binary search over sa compares; a longer match at a suffix it
// does not visit is not found. Ties are broken deterministically: the first
// compared suffix that reaches the maximum length wins.
//
// sa must be the array sais.Build produced over old (length len(old)+1,
// with the sentinel empty-suffix entry at sa[0]).
func Longest[T sais.Index](sa []T, old, query []byte) (pos int, length int) {
	st, en := 0, len(old)
	bestPos, bestLen := int(sa[0]), matchLen(old[sa[0]:], query)

	for en-st >= 2 {
		x := st + (en-st)/2
		n := min(len(old)-int(sa[x]), len(query))
		if m := matchLen(old[int(sa[x]):int(sa[x])+n], query[:n]); m > bestLen {
			bestLen = m
			bestPos = int(sa[x])
		}
		if lexLess(old[int(sa[x]):int(sa[x])+n], query[:n]) {
			st = x
		} else {
			en = x
		}
	}

	if m := matchLen(old[int(sa[st]):], query); m > bestLen {
		bestLen = m
		bestPos = int(sa[st])
	}
	if m := matchLen(old[int(sa[en]):], query); m > bestLen {
		bestLen = m
		bestPos = int(sa[en])
	}

	return bestPos, bestLen
}

// matchLen returns the length of the common prefix of a and b.
func matchLen(a, b []byte) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// lexLess reports whether a is lexicographically less than b over their
// shared prefix length (both slices are pre-truncated to that length by the
// caller).
func lexLess(a, b []byte) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
