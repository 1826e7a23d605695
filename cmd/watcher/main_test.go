package main

import (
	"context"
	"os"
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

func TestRunReturnsWhenInboxCannotBeCreated(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.WriteFile("config.json", []byte(`{"token":"t"}`), 0600); err != nil {
		t.Fatal(err)
	}
	// the inbox sits below a regular file, so MkdirAll fails
	if err := os.WriteFile("blocker", nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := "watcher:\n  inbox: blocker/inbox\nlogging:\n  level: error\n"
	if err := os.WriteFile("config.yaml", []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if code := run(context.Background()); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}
