package common

// Storage represents a key-addressed object storage backend. It is used as
// the building block behind the object service of a node.
type Storage interface {
	Open(readOnly bool) error
	Init() error
	Close() error

	Type() string
	Path() string

	// Get reads an object by key into a memory buffer. Returns
	// [ErrObjectNotFound] if the object is missing.
	Get(key string) ([]byte, error)
	Exists(key string) (bool, error)
	Put(key string, data []byte) error
	// Delete removes an object by key. Returns [ErrObjectNotFound] if the
	// object is missing.
	Delete(key string) error
}
