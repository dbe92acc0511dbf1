// Package credential owns the durable user record collection: the [Record]
// model, its JSON wire codec, and the namespaced [Store] that persists the
// whole email-to-record map as a single blob.
//
// # Wire format
//
// Records serialize with the field names of the original deployment
// (name, email, passwordHash, salt, createdAt, resetToken,
// resetTokenExpiry), so existing stored data decodes unchanged. A malformed
// blob decodes as an empty collection rather than an error.
//
// # Architecture boundaries
//
// This package owns persistence and shape only. It does NOT hash passwords,
// mint tokens, or decide registration/reset policy — those responsibilities
// belong to the Engine.
//
// # What this package must NOT do
//
//   - Import authengine or session (no upward imports).
//   - Mutate records it returns; callers receive the decoded map and write
//     back a full replacement.
//   - Log record contents.
package credential
