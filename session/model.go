package session

import (
	"encoding/json"
	"time"
)

// Session is the value held by the slot: an opaque token plus the identity
// it was issued to. Validity is re-checked against Expiry on every read,
// never cached.
//
// Session instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Session struct {
	Token  string    `json:"token"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Expiry time.Time `json:"expiry"`
}

// Expired reports whether the session is no longer valid at now. Expiry is
// inclusive: a session read at exactly its expiry instant is expired.
func (s *Session) Expired(now time.Time) bool {
	return !s.Expiry.After(now)
}

// Encode serializes the session to its JSON wire form.
func Encode(s *Session) ([]byte, error) {
	return json.Marshal(s)
}

// Decode parses a stored slot blob.
func Decode(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
