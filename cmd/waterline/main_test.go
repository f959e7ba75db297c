package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWritesFigureAndConfirmation(t *testing.T) {
	path := filepath.Join(t.TempDir(), outFile)

	var out bytes.Buffer
	if err := run(&out, path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("output file is empty")
	}

	msg := out.String()
	if !strings.HasPrefix(msg, "Figure saved as ") {
		t.Fatalf("unexpected confirmation: %q", msg)
	}
	if !strings.Contains(msg, outFile) {
		t.Fatalf("confirmation does not name the file: %q", msg)
	}
}

func TestRunReportsWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", outFile)

	var out bytes.Buffer
	if err := run(&out, path); err == nil {
		t.Fatal("expected error for unwritable path")
	}
	if out.Len() != 0 {
		t.Fatalf("confirmation printed despite failure: %q", out.String())
	}
}
