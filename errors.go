// SPDX-License-Identifier: MIT

package bsdiff

import "errors"

// Sentinel errors for Diff and Patch.
var (
	// ErrCorruptHeader is returned when the patch header magic does not match
	// or the header is shorter than 24 bytes.
	ErrCorruptHeader = errors.New("bsdiff: corrupt patch header")
	// ErrCorruptControl is returned when a control triple is negative, exceeds
	// the single-call size limit, or would write past the declared NEW size.
	ErrCorruptControl = errors.New("bsdiff: corrupt control data")
	// ErrNegativeSize is returned when the header's NEW size is negative.
	ErrNegativeSize = errors.New("bsdiff: negative size in header")
	// ErrPatchTooLarge is returned when a patch exceeds PatchOptions.MaxPatchSize.
	ErrPatchTooLarge = errors.New("bsdiff: patch exceeds MaxPatchSize")
	// ErrShortWrite is returned when the underlying writer accepts fewer bytes
	// than requested, or returns an error, during a chunked write.
	ErrShortWrite = errors.New("bsdiff: short write")
	// ErrShortRead is returned when the underlying reader supplies fewer bytes
	// than requested.
	ErrShortRead = errors.New("bsdiff: short read")
	// ErrAlloc names an allocation failure. No function in this package
	// returns it: buffers are allocated with make, so a size that cannot be
	// allocated is not reported as an error.
	ErrAlloc = errors.New("bsdiff: allocation failure")

	// errEncodeOverflow is internal: encodeInt64 cannot represent math.MinInt64
	// because its magnitude overflows the sign-magnitude encoding.
	errEncodeOverflow = errors.New("bsdiff: value magnitude does not fit the sign-magnitude encoding")
)
