package ports

import "context"

// MessageConsumer — фоновый потребитель событий; Run блокируется до отмены контекста.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
