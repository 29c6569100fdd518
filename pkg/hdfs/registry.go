package hdfs

import (
	"errors"
	"sync"
)

// Registry caches one connected [FS] per filesystem [Endpoint], so that
// repeated transfers against the same endpoint reuse the established native
// connection. The [Registry] is safe for concurrent use; it only guards its
// own map, not the handles it returns.
type Registry struct {
	sync.RWMutex
	ops   clientProvider
	items map[string]*FS
}

// NewRegistry returns a pointer to a new [Registry] connecting through the
// given native client.
func NewRegistry(ops clientProvider) *Registry {
	return &Registry{
		ops:   ops,
		items: make(map[string]*FS),
	}
}

// Get returns the cached [FS] for an [Endpoint], connecting first if no
// cached handle exists yet.
func (r *Registry) Get(endpoint Endpoint) (*FS, error) {
	key := endpoint.Key()

	r.RLock()
	if fs, exists := r.items[key]; exists {
		r.RUnlock()

		return fs, nil
	}
	r.RUnlock()

	r.Lock()
	defer r.Unlock()

	if fs, exists := r.items[key]; exists {
		return fs, nil
	}

	fs, err := NewFS(endpoint, r.ops)
	if err != nil {
		return nil, err
	}
	r.items[key] = fs

	return fs, nil
}

// Len returns the number of cached connections.
func (r *Registry) Len() int {
	r.RLock()
	defer r.RUnlock()

	return len(r.items)
}

// DisconnectAll releases all cached connections, joining any disconnect
// failures into the returned error. The [Registry] remains usable afterwards;
// subsequent [Registry.Get] calls establish fresh connections.
func (r *Registry) DisconnectAll() error {
	r.Lock()
	defer r.Unlock()

	var errs []error

	for key, fs := range r.items {
		if err := fs.Disconnect(); err != nil {
			errs = append(errs, err)
		}
		delete(r.items, key)
	}

	return errors.Join(errs...)
}
