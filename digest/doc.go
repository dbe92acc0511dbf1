// Package digest implements the engine's password digest and random
// credential generation.
//
// # Digest scheme
//
// Digests are a single SHA-256 pass over the UTF-8 bytes of the plaintext
// password concatenated with the hex-encoded salt, emitted as a lowercase
// hex string. This is deliberately NOT a memory-hard KDF: the scheme is
// frozen for byte-compatibility with previously stored records, and the
// weakness is a documented property of the engine.
//
// # Architecture boundaries
//
// This package owns hashing, verification, and salt/token generation only.
// Password policy (minimum length) is enforced by the Engine.
//
// # What this package must NOT do
//
//   - Store or retrieve credentials — callers supply plaintext and receive
//     digests.
//   - Import any other authengine package.
//   - Log plaintext passwords or digests at runtime.
package digest
