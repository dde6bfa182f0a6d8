// SPDX-License-Identifier: MIT

package bsdiff

import "github.com/dsnet/compress/bzip2"

// DiffOptions configures Diff. opts may be nil (uses DefaultDiffOptions).
type DiffOptions struct {
	// Level is the bzip2 block codec level, 1 (fastest) to 9 (best ratio).
	Level int
}

// DefaultDiffOptions returns options using the best bzip2 compression level,
// matching the reference bsdiff CLI.
func DefaultDiffOptions() *DiffOptions {
	return &DiffOptions{Level: bzip2.BestCompression}
}

// PatchOptions configures Patch.
// MaxPatchSize is the largest total patch length, header included, that
// Patch accepts (0 = no limit); a longer patch fails with ErrPatchTooLarge.
// It does not bound the NEW size declared in the header, nor the size of
// the decompressed body.
type PatchOptions struct {
	MaxPatchSize int64
}

// DefaultPatchOptions returns options with no input size limit.
func DefaultPatchOptions() *PatchOptions {
	return &PatchOptions{}
}
