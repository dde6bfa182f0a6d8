// SPDX-License-Identifier: MIT

package bsdiff

import (
	"bytes"
	"fmt"

	"github.com/dsnet/compress/bzip2"
)

// Diff produces a complete ENDSLEY/BSDIFF43 patch: a 24-byte header (magic
// plus NEW's size) followed by the opaque control/diff/extra body,
// compressed as a single bzip2 stream. opts may be nil.
func Diff(old, newBuf []byte, opts *DiffOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDiffOptions()
	}

	var out bytes.Buffer
	header := make([]byte, headerLen)
	encodeHeader(header, int64(len(newBuf)))
	if _, err := out.Write(header); err != nil {
		return nil, err
	}

	bw, err := bzip2.NewWriter(&out, &bzip2.WriterConfig{Level: opts.Level})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShortWrite, err)
	}

	if err := DiffStream(old, newBuf, bw); err != nil {
		bw.Close()
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShortWrite, err)
	}

	return out.Bytes(), nil
}

// Patch reconstructs NEW from old and a complete ENDSLEY/BSDIFF43 patch
// produced by Diff. opts may be nil.
func Patch(old, patch []byte, opts *PatchOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultPatchOptions()
	}

	if opts.MaxPatchSize > 0 && int64(len(patch)) > opts.MaxPatchSize {
		return nil, ErrPatchTooLarge
	}

	if len(patch) < headerLen {
		return nil, ErrCorruptHeader
	}
	newSize, err := decodeHeader(patch[:headerLen])
	if err != nil {
		return nil, err
	}

	br, err := bzip2.NewReader(bytes.NewReader(patch[headerLen:]), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShortRead, err)
	}

	newBuf, err := PatchStream(old, newSize, br)
	if err != nil {
		br.Close()
		return nil, err
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShortRead, err)
	}

	return newBuf, nil
}
