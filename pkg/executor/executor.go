package executor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Run executes cmd and captures stdout and stderr. A non-zero exit is an
// error that includes the trimmed stderr.
func (e *implExecutor) Run(ctx context.Context, c Command) (Result, error) {
	if c.Name == "" {
		return Result{}, fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}

	if err != nil {
		if stderrStr := strings.TrimSpace(stderr.String()); stderrStr != "" {
			return res, fmt.Errorf("command '%s' failed: %w\nstderr: %s", c.Name, err, stderrStr)
		}
		return res, fmt.Errorf("command '%s' failed: %w", c.Name, err)
	}

	return res, nil
}
