package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rickerevolte/eegsift/internal/domain"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rec.EEG")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write temp recording: %v", err)
	}
	return path
}

func TestFileSourceRangedReads(t *testing.T) {
	src, err := OpenFile(writeTemp(t, []byte("0123456789")))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()

	if src.Size() != 10 {
		t.Fatalf("expected size 10, got %d", src.Size())
	}

	head, err := src.ReadHead(4)
	if err != nil || string(head) != "0123" {
		t.Fatalf("head: got %q, err %v", head, err)
	}

	tail, err := src.ReadTail(3)
	if err != nil || string(tail) != "789" {
		t.Fatalf("tail: got %q, err %v", tail, err)
	}

	rest, err := src.ReadFrom(6)
	if err != nil || string(rest) != "6789" {
		t.Fatalf("from: got %q, err %v", rest, err)
	}
}

func TestFileSourceOversizedRequests(t *testing.T) {
	src, err := OpenFile(writeTemp(t, []byte("abc")))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()

	head, err := src.ReadHead(100)
	if err != nil || string(head) != "abc" {
		t.Fatalf("oversized head: got %q, err %v", head, err)
	}

	tail, err := src.ReadTail(100)
	if err != nil || string(tail) != "abc" {
		t.Fatalf("oversized tail: got %q, err %v", tail, err)
	}

	rest, err := src.ReadFrom(50)
	if err != nil || len(rest) != 0 {
		t.Fatalf("past-end from: got %q, err %v", rest, err)
	}
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nope.EEG"))
	if !errors.Is(err, domain.ErrUnreadableFile) {
		t.Fatalf("expected ErrUnreadableFile, got %v", err)
	}
}
