// Package target maps a (content type, object pk) path pair to the
// entity comments attach to.
package target

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound covers both an unknown content type and a missing
// instance; callers answer 404 either way.
var ErrNotFound = errors.New("target not found")

// Target is the resolved reference. The comment subsystem only holds
// this weak key pair, it never touches the entity itself.
type Target struct {
	ContentType string
	ObjectPK    uint
}

// LookupFunc reports whether an instance of one content type exists.
type LookupFunc func(db *gorm.DB, objectPK uint) (bool, error)

// Resolver dispatches resolution to the lookup registered per content
// type. Register everything at startup; Resolve does not lock.
type Resolver struct {
	lookups map[string]LookupFunc
}

func NewResolver() *Resolver {
	return &Resolver{lookups: make(map[string]LookupFunc)}
}

// Register makes a content type resolvable under the given name.
func (r *Resolver) Register(name string, fn LookupFunc) {
	r.lookups[name] = fn
}

// Resolve validates the pair against the registry and the store. Store
// errors propagate as-is so they are not mistaken for a 404.
func (r *Resolver) Resolve(db *gorm.DB, contentType string, objectPK uint) (Target, error) {
	fn, ok := r.lookups[contentType]
	if !ok {
		return Target{}, ErrNotFound
	}
	exists, err := fn(db, objectPK)
	if err != nil {
		return Target{}, err
	}
	if !exists {
		return Target{}, ErrNotFound
	}
	return Target{ContentType: contentType, ObjectPK: objectPK}, nil
}
