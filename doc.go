// Package authengine provides the credential and session engine extracted
// from the Weatherly application: user registration, password verification,
// single-slot session tokens with 24-hour expiry, and short-lived
// password-reset tokens.
//
// The package is designed for concurrent embedding: Engine methods are safe
// to call from multiple goroutines after initialization through
// [Builder.Build]. The two read-modify-write flows (registration's
// duplicate check and reset redemption's scan) run under an engine-level
// critical section.
//
// # Architecture boundaries
//
// authengine is the public surface. It exposes [Engine], [Builder],
// [Config], and value types (Result, SessionInfo, AuditEvent, etc.). Record
// persistence, the session slot, and the digest primitives live in the
// credential, session, kv, and digest sub-packages.
//
// # What this package must NOT do
//
//   - Expose kv backends, stored record internals, or wire encodings in its
//     public API; callers only ever see copies.
//   - Distinguish "no such user" from "wrong password", or "wrong token"
//     from "expired token", in any result or error.
//   - Strengthen the stored digest scheme: digests are a single SHA-256
//     pass over password and salt, preserved for compatibility with
//     existing records.
//
// # Expiry contract
//
// Sessions and reset tokens are invalidated lazily at read time. Nothing
// sweeps expired state in the background, so expiry is only observable on
// the next read that touches it.
package authengine
