// SPDX-License-Identifier: MIT
// Source: original_source/bsdiff.c (writeData chunking loop)

package bsdiff

import (
	"fmt"
	"io"
)

// maxChunk bounds a single underlying Write call the way the reference's
// stream wrapper bounds writes to fit a 32-bit signed chunk size.
const maxChunk = 1 << 20

// writeFull writes all of buf to w, splitting into chunks of at most
// maxChunk bytes. Any short or failed inner write is reported wrapped around
// ErrShortWrite, so errors.Is(err, ErrShortWrite) holds regardless of the
// underlying writer's own error type; partial progress already written is
// not retried or rolled back.
func writeFull(w io.Writer, buf []byte) error {
	for len(buf) > 0 {
		n := len(buf)
		if n > maxChunk {
			n = maxChunk
		}

		written, err := w.Write(buf[:n])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrShortWrite, err)
		}
		if written != n {
			return ErrShortWrite
		}
		buf = buf[n:]
	}
	return nil
}

// readFull reads exactly len(buf) bytes from r. Any short or failed inner
// read — including a genuine underlying reader error such as a corrupt
// bzip2 stream — is reported wrapped around ErrShortRead, never leaked raw.
func readFull(r io.Reader, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return ErrShortRead
		}
		return fmt.Errorf("%w: %w", ErrShortRead, err)
	}
	if n != len(buf) {
		return ErrShortRead
	}
	return nil
}
