// Package session provides the single-slot session store and the [Session]
// model.
//
// # Slot semantics
//
// Exactly one session slot exists per store instance. A new login
// overwrites whatever occupies the slot; there are no per-device sessions.
// Expiry is lazy: an expired session is deleted on the first read that
// observes it, never by a background sweeper, so an expired slot lingers
// in storage until the next [Store.Current] call.
//
// # Architecture boundaries
//
// This package owns the slot (kv operations) and the [Session] model. It
// does NOT mint tokens, verify credentials, or enforce authentication
// policy — those responsibilities belong to the Engine.
//
// # What this package must NOT do
//
//   - Import authengine or credential (no upward imports).
//   - Attach TTLs to the stored slot; lazy read-time expiry is the policy.
//   - Store password material in [Session] fields.
package session
