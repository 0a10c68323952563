package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/mmilitzer/nfd-go/internal/logging"
)

func TestExitClosesLog(t *testing.T) {
	dir := t.TempDir()
	if err := logging.Init(dir, false); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer logging.Close()

	err := exit("cancelled", exitCancelled)

	if p := logging.Path(); p != "" {
		t.Errorf("Expected log to be closed, still writing to %s", p)
	}
	var coder cli.ExitCoder
	if !errors.As(err, &coder) || coder.ExitCode() != exitCancelled {
		t.Errorf("Expected exit code %d, got %v", exitCancelled, err)
	}

	data, rerr := os.ReadFile(filepath.Join(dir, "nfd.log"))
	if rerr != nil {
		t.Fatalf("Failed to read log: %v", rerr)
	}
	if !strings.Contains(string(data), "File logging initialized") {
		t.Errorf("Expected log content, got %q", data)
	}
}

func TestExitWithoutLog(t *testing.T) {
	err := exit("boom", exitFailed)
	var coder cli.ExitCoder
	if !errors.As(err, &coder) || coder.ExitCode() != exitFailed {
		t.Errorf("Expected exit code %d, got %v", exitFailed, err)
	}
}
