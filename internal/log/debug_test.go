package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetWriter(t *testing.T) func() {
	t.Helper()

	writer.mu.Lock()
	prevFile := writer.file
	prevPending := append([]byte(nil), writer.pending...)
	prevDiscard := writer.discard
	writer.file = nil
	writer.pending = nil
	writer.discard = false
	writer.mu.Unlock()

	return func() {
		writer.mu.Lock()
		if writer.file != nil {
			_ = writer.file.Close()
		}
		writer.file = prevFile
		writer.pending = prevPending
		writer.discard = prevDiscard
		writer.mu.Unlock()
	}
}

func TestBufferedMessagesFlushOnSetFile(t *testing.T) {
	restore := resetWriter(t)
	t.Cleanup(restore)

	Printf("buffered %d", 1)

	logPath := filepath.Join(t.TempDir(), "debug.log")
	if err := SetFile(logPath); err != nil {
		t.Fatalf("SetFile: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	data, err := os.ReadFile(logPath) //nolint:gosec
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "buffered 1") {
		t.Fatalf("expected buffered message in log, got %q", string(data))
	}
}

func TestEmptyPathDiscards(t *testing.T) {
	restore := resetWriter(t)
	t.Cleanup(restore)

	if err := SetFile(""); err != nil {
		t.Fatalf("SetFile(\"\"): %v", err)
	}

	Println("dropped")

	writer.mu.Lock()
	pending := len(writer.pending)
	discard := writer.discard
	writer.mu.Unlock()

	if !discard {
		t.Fatal("expected discard mode after empty path")
	}
	if pending != 0 {
		t.Fatalf("expected empty buffer, got %d bytes", pending)
	}
}

func TestSetFileFailureDiscards(t *testing.T) {
	restore := resetWriter(t)
	t.Cleanup(restore)

	dir := t.TempDir()
	if err := os.Chmod(dir, 0o500); err != nil { //nolint:gosec
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(dir, 0o700) //nolint:gosec
	})

	if err := SetFile(filepath.Join(dir, "debug.log")); err == nil {
		t.Fatal("expected SetFile to fail in unwritable directory")
	}

	Printf("should be discarded")

	writer.mu.Lock()
	pending := len(writer.pending)
	writer.mu.Unlock()

	if pending != 0 {
		t.Fatal("expected buffer to stay empty after SetFile failure")
	}
}
