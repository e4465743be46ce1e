package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSizeOf_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, h := SizeOf(f)
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("SizeOf(file) = %d,%d, want defaults", w, h)
	}
	if w, h := SizeOf(nil); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("SizeOf(nil) = %d,%d, want defaults", w, h)
	}
}

func TestClear(t *testing.T) {
	var buf bytes.Buffer
	Clear(&buf)
	if buf.String() != "\033[H\033[2J" {
		t.Errorf("Clear wrote %q", buf.String())
	}
}
