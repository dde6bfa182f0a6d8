// SPDX-License-Identifier: MIT
// Source: original_source/bsdiff.c (search, matchlen)

package bsdiff

// matchLen returns the number of leading bytes a and b share.
func matchLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// search binary-searches I[st..en] (both ends included) for the suffix of old with the longest
// common prefix of target, bisecting on lexicographic order. It is not
// guaranteed to return the globally longest match, only a match along the
// bisection path walked — the Differ's greedy loop tolerates this.
func search(I []int64, old, target []byte, st, en int64) (pos int64, length int) {
	for en-st >= 2 {
		mid := st + (en-st)/2
		cmpLen := len(target)
		if rem := len(old) - int(I[mid]); rem < cmpLen {
			cmpLen = rem
		}
		if bytesLess(old[I[mid]:int(I[mid])+cmpLen], target[:cmpLen]) {
			st = mid
		} else {
			en = mid
		}
	}

	x := matchLen(old[I[st]:], target)
	y := matchLen(old[I[en]:], target)
	if x > y {
		return I[st], x
	}
	return I[en], y
}

// bytesLess reports whether a is lexicographically less than b, both of the
// same length (the caller has already truncated to the comparison window).
func bytesLess(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
