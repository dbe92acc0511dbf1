package credential

import (
	"context"
	"errors"

	"github.com/weatherly/authengine/kv"
)

// Store persists the whole record collection as one blob under a single
// namespace key. Read-modify-write callers are responsible for their own
// mutual exclusion; the store itself performs one kv operation per call.
//
//	Performance: 1 kv operation per Load/Save.
type Store struct {
	kv        kv.Store
	namespace string
}

// NewStore creates a credential [Store] over the given kv backend.
// namespace is the well-known key the collection lives under.
func NewStore(backend kv.Store, namespace string) *Store {
	return &Store{
		kv:        backend,
		namespace: namespace,
	}
}

// Load describes the load operation and its observable behavior.
//
// Load may return an error when input validation, dependency calls, or security checks fail.
// Load does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// A missing key and a corrupt blob both load as an empty collection;
// only backend failures surface as errors.
func (s *Store) Load(ctx context.Context) (map[string]Record, error) {
	data, err := s.kv.Get(ctx, s.namespace)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return make(map[string]Record), nil
		}
		return nil, err
	}

	records, err := Decode(data)
	if err != nil {
		// Corrupt persisted data reads as an empty store.
		return make(map[string]Record), nil
	}

	return records, nil
}

// Save describes the save operation and its observable behavior.
//
// Save may return an error when input validation, dependency calls, or security checks fail.
// Save does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *Store) Save(ctx context.Context, records map[string]Record) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.namespace, data)
}
