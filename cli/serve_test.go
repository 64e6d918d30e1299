package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestServeShutsDownOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modals.yaml")
	data := "compress: false\nmodals:\n  - id: a\n    isOpen: true\n  - id: b\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	var out string
	var err error
	go func() {
		defer close(done)
		out, err = runCommandContext(t, ctx, "serve", "-c", path, "--addr", "127.0.0.1:0")
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("Timed out waiting for serve to shut down")
	}

	if err != nil {
		t.Errorf("Expected clean shutdown, got %v", err)
	}
	if !strings.Contains(out, "Serving 2 modal(s) on 127.0.0.1:0") {
		t.Errorf("Expected serving message, got %q", out)
	}
	if !strings.Contains(out, "Shutting down") {
		t.Errorf("Expected shutdown message, got %q", out)
	}
}

func TestServeReportsListenError(t *testing.T) {
	_, err := runCommand(t, "serve", "--addr", "127.0.0.1:99999")
	if err == nil {
		t.Error("Expected invalid address to fail")
	}
}
