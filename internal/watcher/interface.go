package watcher

import "context"

// Watcher monitors an inbox directory for link files
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler receives the source line read from a new inbox file
type Handler func(ctx context.Context, source string) error
