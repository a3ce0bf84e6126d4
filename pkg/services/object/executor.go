package object

import (
	"context"

	"github.com/cellar-dev/cellar-node/pkg/local_object_storage/common"
)

type executorSvc struct {
	storage common.Storage
}

// NewExecutionService wraps the given local storage and returns
// ServiceServer executing requests directly on it.
func NewExecutionService(s common.Storage) ServiceServer {
	return &executorSvc{
		storage: s,
	}
}

func (s *executorSvc) Put(_ context.Context, key string, payload []byte) error {
	return s.storage.Put(key, payload)
}

func (s *executorSvc) Get(_ context.Context, key string) ([]byte, error) {
	return s.storage.Get(key)
}

func (s *executorSvc) Delete(_ context.Context, key string) error {
	return s.storage.Delete(key)
}
