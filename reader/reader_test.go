package reader

import "testing"

func TestOpenMissingFile(t *testing.T) {
	r, err := Open("testdata/does-not-exist.pdf")
	if err == nil {
		t.Fatal("Expected error opening a missing file")
	}
	if r != nil {
		t.Error("Expected nil reader for a missing file")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	r := &Reader{}
	if err := r.Close(); err != nil {
		t.Errorf("Close on unopened reader should not error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Second Close should not error: %v", err)
	}
}
