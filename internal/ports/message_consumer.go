package ports

import "context"

// MessageConsumer — фоновый потребитель команд (Kafka и т.п.).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
