package object

import (
	"context"
)

// ServiceServer is an interface of utility serving object storage requests.
// Implementations are stacked: decorators such as [MetricCollector] wrap the
// execution service that performs the actual storage calls.
type ServiceServer interface {
	Put(ctx context.Context, key string, payload []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
