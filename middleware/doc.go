// Package middleware provides net/http integration for authengine:
// a guard that rejects requests without an active session and exposes the
// session to downstream handlers through the request context.
package middleware
