package main

import (
	"context"
	"path/filepath"
	"testing"
)

func TestRunFailsWithoutCredential(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("VIDSUM_CREDENTIALS_PATH", filepath.Join(dir, "missing.json"))

	if code := run(context.Background()); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}
