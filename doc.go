// SPDX-License-Identifier: MIT

/*
Package bsdiff implements binary delta compression and patching: given an OLD
and a NEW byte string, Diff produces a PATCH such that Patch(OLD, PATCH)
reconstructs NEW exactly. The algorithm builds a suffix array over OLD and
greedily segments NEW into approximate matches against it (Colin Percival's
bsdiff, Matthew Endsley's ENDSLEY/BSDIFF43 stream format).

# Diff

	patch, err := bsdiff.Diff(old, new, nil)

# Patch

	new, err := bsdiff.Patch(old, patch, nil)

Diff and Patch wrap the opaque control/diff/extra body in a single
bzip2-compressed stream and prepend the ENDSLEY/BSDIFF43 header. Callers that
want the raw, uncompressed, header-free body (e.g. to pipe through their own
codec) use DiffStream and PatchStream instead:

	var buf bytes.Buffer
	err := bsdiff.DiffStream(old, new, &buf)
	...
	new, err := bsdiff.PatchStream(old, int64(len(new)), &buf)
*/
package bsdiff
