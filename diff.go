// SPDX-License-Identifier: MIT
// Source: original_source/bsdiff.c (bsdiff_internal)

package bsdiff

import "io"

// segmentWriter receives each greedily-emitted segment's control triple and
// byte payloads. DiffStream implements it by writing the raw opaque body
// grammar of §3/§6 directly; Diff wraps that same raw body in a single
// bzip2 stream behind a header (see codec.go).
type segmentWriter interface {
	writeControl(diffLen, extraLen, oldSeek int64) error
	writeDiff(b []byte) error
	writeExtra(b []byte) error
}

// runDiffer walks new, greedily segmenting it into approximate matches
// against old (via a suffix array over old), and reports each segment to w.
// This is the algorithmic core of both DiffStream and Diff.
func runDiffer(old, newBuf []byte, w segmentWriter) error {
	oldSize := int64(len(old))
	newSize := int64(len(newBuf))

	sa := buildSuffixArray(old)
	defer sa.release()
	I := sa.I

	db := make([]byte, newSize+1)
	eb := make([]byte, newSize+1)

	var scan, matchLen, pos int64
	var lastScan, lastPos, lastOffset int64
	var scsc int64

	for scan < newSize {
		oldScore := int64(0)
		scsc = scan + matchLen

		for scan = scsc; scan < newSize; scan++ {
			pos, matchLen = searchLen(I, old, newBuf[scan:], oldSize)

			for scsc < scan+matchLen {
				if scsc+lastOffset < oldSize && old[scsc+lastOffset] == newBuf[scsc] {
					oldScore++
				}
				scsc++
			}

			if matchLen == oldScore && matchLen != 0 {
				break
			}
			if matchLen > oldScore+8 {
				break
			}
			if scan+lastOffset < oldSize && old[scan+lastOffset] == newBuf[scan] {
				oldScore--
			}
		}

		if matchLen == oldScore && scan != newSize {
			continue
		}

		lenf := extendForward(old, newBuf, lastScan, lastPos, scan)

		var lenb int64
		if scan < newSize {
			lenb = extendBackward(old, newBuf, lastScan, pos, scan)
		}

		if lastScan+lenf > scan-lenb {
			overlap := (lastScan + lenf) - (scan - lenb)
			lenf, lenb = resolveOverlap(old, newBuf, lastScan, lastPos, scan, pos, lenf, lenb, overlap)
		}

		dblen := int64(0)
		for i := int64(0); i < lenf; i++ {
			db[dblen+i] = newBuf[lastScan+i] - old[lastPos+i]
		}

		extraLen := (scan - lenb) - (lastScan + lenf)
		for i := int64(0); i < extraLen; i++ {
			eb[i] = newBuf[lastScan+lenf+i]
		}

		if err := w.writeControl(lenf, extraLen, (pos-lenb)-(lastPos+lenf)); err != nil {
			return err
		}
		if err := w.writeDiff(db[:lenf]); err != nil {
			return err
		}
		if err := w.writeExtra(eb[:extraLen]); err != nil {
			return err
		}

		lastScan = scan - lenb
		lastPos = pos - lenb
		lastOffset = pos - scan
	}

	return nil
}

// searchLen wraps search over the full suffix array range [0, oldSize].
func searchLen(I []int64, old, target []byte, oldSize int64) (pos int64, length int64) {
	p, l := search(I, old, target, 0, oldSize)
	return p, int64(l)
}

// extendForward extends the previous segment's alignment forward from
// lastScan/lastPos up to scan, scoring by 2*matches-length and returning the
// length that maximizes that score.
func extendForward(old, newBuf []byte, lastScan, lastPos, scan int64) int64 {
	oldSize := int64(len(old))
	var s, best, bestLen int64
	for i := int64(0); lastScan+i < scan && lastPos+i < oldSize; i++ {
		if old[lastPos+i] == newBuf[lastScan+i] {
			s++
		}
		if s*2-(i+1) > best*2-bestLen {
			best = s
			bestLen = i + 1
		}
	}
	return bestLen
}

// extendBackward extends the new match backward from scan/pos, scoring by
// 2*matches-length.
func extendBackward(old, newBuf []byte, lastScan, pos, scan int64) int64 {
	var s, best, bestLen int64
	for i := int64(1); scan >= lastScan+i && pos >= i; i++ {
		if old[pos-i] == newBuf[scan-i] {
			s++
		}
		if s*2-i > best*2-bestLen {
			best = s
			bestLen = i
		}
	}
	return bestLen
}

// resolveOverlap finds the split point inside the overlap between the
// forward and backward extensions that maximizes the combined match count,
// and returns the adjusted (lenf, lenb).
func resolveOverlap(old, newBuf []byte, lastScan, lastPos, scan, pos, lenf, lenb, overlap int64) (int64, int64) {
	var s, best, bestLen int64
	for i := int64(0); i < overlap; i++ {
		if newBuf[lastScan+lenf-overlap+i] == old[lastPos+lenf-overlap+i] {
			s++
		}
		if newBuf[scan-lenb+i] == old[pos-lenb+i] {
			s--
		}
		if s > best {
			best = s
			bestLen = i + 1
		}
	}
	return lenf + bestLen - overlap, lenb - bestLen
}

// DiffStream writes the raw, uncompressed, header-free opaque body (§3/§6
// body grammar) for old->new to w. Unlike Diff, it performs no codec
// wrapping and writes no header; callers owning their own stream framing
// use this entry point directly, matching spec.md's diff(old, new, stream)
// API.
func DiffStream(old, newBuf []byte, w io.Writer) error {
	sw := &rawSegmentWriter{w: w}
	return runDiffer(old, newBuf, sw)
}

// rawSegmentWriter writes triples and payloads back to back into one
// stream, per §3's record layout.
type rawSegmentWriter struct {
	w   io.Writer
	buf [tripleLen]byte
}

func (s *rawSegmentWriter) writeControl(diffLen, extraLen, oldSeek int64) error {
	encodeInt64(s.buf[0:8], diffLen)
	encodeInt64(s.buf[8:16], extraLen)
	encodeInt64(s.buf[16:24], oldSeek)
	return writeFull(s.w, s.buf[:])
}

func (s *rawSegmentWriter) writeDiff(b []byte) error  { return writeFull(s.w, b) }
func (s *rawSegmentWriter) writeExtra(b []byte) error { return writeFull(s.w, b) }
