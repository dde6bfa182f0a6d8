package bsdiff

import (
	"bytes"
	"testing"
)

// recordingWriter captures the (diffLen, extraLen, oldSeek) triples and
// payloads DiffStream emits, for tests that assert on segmentation.
type recordingWriter struct {
	triples [][3]int64
	diffs   [][]byte
	extras  [][]byte
}

func (r *recordingWriter) writeControl(diffLen, extraLen, oldSeek int64) error {
	r.triples = append(r.triples, [3]int64{diffLen, extraLen, oldSeek})
	return nil
}

func (r *recordingWriter) writeDiff(b []byte) error {
	r.diffs = append(r.diffs, append([]byte(nil), b...))
	return nil
}

func (r *recordingWriter) writeExtra(b []byte) error {
	r.extras = append(r.extras, append([]byte(nil), b...))
	return nil
}

func TestDiffStream_EmptyOldNonEmptyNew(t *testing.T) {
	var rec recordingWriter
	if err := runDiffer(nil, []byte("A"), &rec); err != nil {
		t.Fatalf("runDiffer: %v", err)
	}

	if len(rec.triples) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rec.triples))
	}
	if got := rec.triples[0]; got != [3]int64{0, 1, 0} {
		t.Fatalf("triple = %v, want (0,1,0)", got)
	}
	if len(rec.diffs[0]) != 0 {
		t.Fatalf("diff payload should be empty, got %v", rec.diffs[0])
	}
	if !bytes.Equal(rec.extras[0], []byte("A")) {
		t.Fatalf("extra payload = %q, want %q", rec.extras[0], "A")
	}
}

func TestDiffStream_OldEqualsNew(t *testing.T) {
	old := []byte("ABCD")
	var rec recordingWriter
	if err := runDiffer(old, old, &rec); err != nil {
		t.Fatalf("runDiffer: %v", err)
	}

	if len(rec.triples) != 1 {
		t.Fatalf("expected 1 record, got %d", len(rec.triples))
	}
	if got := rec.triples[0]; got != [3]int64{4, 0, 0} {
		t.Fatalf("triple = %v, want (4,0,0)", got)
	}
	for _, b := range rec.diffs[0] {
		if b != 0 {
			t.Fatalf("diff payload should be all zero, got %v", rec.diffs[0])
		}
	}
}

func TestDiffStream_EmptyOldEmptyNew(t *testing.T) {
	var rec recordingWriter
	if err := runDiffer(nil, nil, &rec); err != nil {
		t.Fatalf("runDiffer: %v", err)
	}
	if len(rec.triples) != 0 {
		t.Fatalf("expected no records for empty old/new, got %d", len(rec.triples))
	}
}

func TestDiffStream_SingleByteFlip(t *testing.T) {
	old := bytes.Repeat([]byte{0}, 1024)
	newBuf := append([]byte(nil), old...)
	newBuf[500] = 0xFF

	var rec recordingWriter
	if err := runDiffer(old, newBuf, &rec); err != nil {
		t.Fatalf("runDiffer: %v", err)
	}
	if len(rec.triples) > 4 {
		t.Fatalf("expected a small constant number of records for a single-byte flip, got %d", len(rec.triples))
	}

	// Reassembling via the triples/diffs/extras must reproduce newBuf.
	rebuilt := make([]byte, 0, len(newBuf))
	oldPos := int64(0)
	for i, tr := range rec.triples {
		diffLen, extraLen, oldSeek := tr[0], tr[1], tr[2]
		for j := int64(0); j < diffLen; j++ {
			rebuilt = append(rebuilt, old[oldPos+j]+rec.diffs[i][j])
		}
		oldPos += diffLen
		rebuilt = append(rebuilt, rec.extras[i][:extraLen]...)
		oldPos += oldSeek
	}
	if !bytes.Equal(rebuilt, newBuf) {
		t.Fatalf("rebuilt mismatch: got %d bytes, want %d", len(rebuilt), len(newBuf))
	}
}
