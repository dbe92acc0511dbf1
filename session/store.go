package session

import (
	"context"
	"errors"
	"time"

	"github.com/weatherly/authengine/kv"
)

// Store owns the single session slot. Reads enforce lazy expiry: the first
// read that observes an expired session deletes it and reports no session.
//
//	Performance: 1 kv operation per call, 2 when a read expires the slot.
type Store struct {
	kv        kv.Store
	namespace string
	now       func() time.Time
}

// NewStore creates a session [Store] over the given kv backend. namespace
// is the slot key; now supplies the clock used for expiry checks.
func NewStore(backend kv.Store, namespace string, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		kv:        backend,
		namespace: namespace,
		now:       now,
	}
}

// Current describes the current operation and its observable behavior.
//
// Current may return an error when input validation, dependency calls, or security checks fail.
// Current does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Current returns a nil session without error when the slot is empty,
// holds a corrupt blob, or held a session that expired. The expired return
// reports whether this read found and deleted an expired session, so
// callers can account for the lazy invalidation.
func (s *Store) Current(ctx context.Context) (sess *Session, expired bool, err error) {
	data, err := s.kv.Get(ctx, s.namespace)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	sess, err = Decode(data)
	if err != nil {
		// Corrupt slot data reads as no session.
		return nil, false, nil
	}

	if sess.Expired(s.now()) {
		if err := s.kv.Delete(ctx, s.namespace); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	return sess, false, nil
}

// Put describes the put operation and its observable behavior.
//
// Put may return an error when input validation, dependency calls, or security checks fail.
// Put does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Put replaces the slot unconditionally; any prior session is overwritten.
func (s *Store) Put(ctx context.Context, sess *Session) error {
	data, err := Encode(sess)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.namespace, data)
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
// Delete does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Delete is idempotent: clearing an empty slot succeeds.
func (s *Store) Delete(ctx context.Context) error {
	return s.kv.Delete(ctx, s.namespace)
}
