// SPDX-License-Identifier: MIT
// Source: original_source/bsdiff.h, original_source/bspatch.c (magic string)

package bsdiff

// Patch stream header layout: 16-byte ASCII magic, then NEW size as a
// sign-magnitude signed 64-bit integer, least significant byte first.

const (
	// magic is the reference ENDSLEY/BSDIFF43 patch magic, bytes 0-15 of a
	// Diff/Patch-level (header-aware) patch stream.
	magic = "ENDSLEY/BSDIFF43"

	// headerLen is the total length of the header: 16-byte magic plus the
	// 8-byte sign-magnitude NEW size.
	headerLen = 24

	// tripleLen is the byte length of one control triple (three int64s).
	tripleLen = 24

	// maxControlLen mirrors the reference's INT_MAX guard on ctrl[0]/ctrl[1]:
	// both fields are inherited from a 32-bit chunk size and rejecting
	// anything larger preserves the reference's rejection behavior.
	maxControlLen = 1<<31 - 1
)

// encodeHeader writes the 24-byte header (magic + NEW size) to buf, which
// must be at least headerLen bytes.
func encodeHeader(buf []byte, newSize int64) {
	copy(buf, magic)
	encodeInt64(buf[16:24], newSize)
}

// decodeHeader validates and parses a 24-byte header, returning the encoded
// NEW size.
func decodeHeader(buf []byte) (int64, error) {
	if len(buf) < headerLen {
		return 0, ErrCorruptHeader
	}
	if string(buf[:16]) != magic {
		return 0, ErrCorruptHeader
	}
	newSize, err := decodeInt64(buf[16:24])
	if err != nil {
		return 0, err
	}
	if newSize < 0 {
		return 0, ErrNegativeSize
	}
	return newSize, nil
}
