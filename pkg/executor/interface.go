package executor

import (
	"context"
	"time"
)

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env entries are appended to the parent environment.
	Env []string
}

// Result is the captured output of a finished command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

// Executor runs external commands
type Executor interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}
