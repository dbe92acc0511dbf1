package authengine

import (
	"sync"
	"time"

	"github.com/weatherly/authengine/credential"
	"github.com/weatherly/authengine/session"
)

// Engine defines a public type used by authengine APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config      Config
	credentials *credential.Store
	sessions    *session.Store
	audit       *auditDispatcher
	metrics     *Metrics
	clock       Clock

	// mu serializes every credential-collection read-modify-write
	// (registration's duplicate check, reset issuance, reset redemption's
	// scan-then-update). Session slot access stays lock-free: the slot is
	// specified as last-write-wins.
	mu sync.Mutex
}

// Operation result messages. The strings are part of the engine's caller
// contract and match the original deployment verbatim.
const (
	msgRegistered         = "User registered successfully"
	msgDuplicateUser      = "User already exists with this email"
	msgLoginSuccess       = "Login successful"
	msgInvalidCredentials = "Invalid email or password"
	msgResetRequested     = "If the email exists, a reset link has been sent"
	msgInvalidResetToken  = "Invalid or expired reset token"
	msgResetSuccess       = "Password reset successfully"
	msgStorageUnavailable = "Authentication storage is unavailable"
	msgNotReady           = "Engine not initialized"
)

func (e *Engine) now() time.Time {
	if e == nil || e.clock == nil {
		return time.Now()
	}
	return e.clock()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters: map[MetricID]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) ready() bool {
	return e != nil && e.credentials != nil && e.sessions != nil
}

func failure(message string) Result {
	return Result{Success: false, Message: message}
}

func success(message string) Result {
	return Result{Success: true, Message: message}
}
