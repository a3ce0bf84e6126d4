package fstree

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/cellar-dev/cellar-node/internal/keyutil"
	"github.com/cellar-dev/cellar-node/pkg/local_object_storage/common"
	"github.com/cellar-dev/cellar-node/pkg/util"
)

// FSTree represents an object storage as a filesystem tree rooted at a
// single directory.
type FSTree struct {
	Info

	readOnly bool
}

// Info groups the information about file storage.
type Info struct {
	// Permission bits of the root directory.
	Permissions fs.FileMode

	// Full path to the root directory.
	RootPath string
}

// Type is fstree storage type used in logs and configuration.
const Type = "fstree"

// New creates, initializes and returns new FSTree instance.
func New(opts ...Option) *FSTree {
	f := &FSTree{
		Info: Info{
			Permissions: 0700,
			RootPath:    "data",
		},
	}

	for i := range opts {
		opts[i](f)
	}

	return f
}

// Type implements common.Storage.
func (*FSTree) Type() string {
	return Type
}

// Path implements common.Storage.
func (t *FSTree) Path() string {
	return t.RootPath
}

func (t *FSTree) treePath(segments []string) string {
	dirs := make([]string, 0, len(segments)+1)
	dirs = append(dirs, t.RootPath)
	dirs = append(dirs, segments...)

	return filepath.Join(dirs...)
}

// Put saves data as an object with the specified key. Intermediate
// directories are created on demand. An existing object with the same key is
// overwritten in place: the payload is written directly into the target
// file, so a concurrent Put of the same key races with this one and the
// survivor is undefined.
func (t *FSTree) Put(key string, data []byte) error {
	if t.readOnly {
		return common.ErrReadOnly
	}

	segments, err := keyutil.Split(key)
	if err != nil {
		return err
	}

	p := t.treePath(segments)

	if err := util.MkdirAllX(filepath.Dir(p), t.Permissions); err != nil {
		if errors.Is(err, syscall.ENOSPC) {
			return common.ErrNoSpace
		}
		return err
	}

	err = os.WriteFile(p, data, t.Permissions)
	if errors.Is(err, syscall.ENOSPC) {
		return common.ErrNoSpace
	}

	return err
}

// Get returns an object with the specified key from the storage.
func (t *FSTree) Get(key string) ([]byte, error) {
	segments, err := keyutil.Split(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(t.treePath(segments))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.ErrObjectNotFound
		}
		return nil, err
	}

	return data, nil
}

// Exists checks whether an object with the specified key is present in the
// storage.
func (t *FSTree) Exists(key string) (bool, error) {
	segments, err := keyutil.Split(key)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(t.treePath(segments))

	found := err == nil
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
	}

	return found, err
}

// Delete removes an object with the specified key from the storage. The
// directories on the object's path are kept even when the object was the
// last entry below them.
func (t *FSTree) Delete(key string) error {
	if t.readOnly {
		return common.ErrReadOnly
	}

	segments, err := keyutil.Split(key)
	if err != nil {
		return err
	}

	err = os.Remove(t.treePath(segments))
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return common.ErrObjectNotFound
	}

	return err
}
