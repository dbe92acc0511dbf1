// Package kv defines the key-value storage abstraction the engine persists
// through, plus the two shipped implementations: [Redis] for durable
// deployments and [Memory] for embedding and tests.
//
// # Architecture boundaries
//
// This package owns raw byte persistence only. It does NOT interpret stored
// blobs, enforce expiry, or know about credential or session semantics —
// those responsibilities belong to the credential and session packages.
//
// # What this package must NOT do
//
//   - Import authengine, credential, or session (no upward imports).
//   - Attach TTLs to stored values; expiry is enforced lazily at read time
//     by the owning stores.
//   - Log stored values.
package kv
