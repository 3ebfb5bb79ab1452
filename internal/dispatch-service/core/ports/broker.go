package ports

import "context"

type IOrderBroker interface {
	PublishJSON(ctx context.Context, exchange, routingKey string, msg any) error
	IsAlive() bool
	Close() error
}
