package authengine

import "context"

// CurrentSession describes the currentsession operation and its observable behavior.
//
// CurrentSession may return an error when input validation, dependency calls, or security checks fail.
// CurrentSession does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// CurrentSession returns a copy of the active session, or nil when the slot
// is empty. A read that observes an expired session deletes the slot and
// returns nil; subsequent reads keep returning nil. Validity is re-checked
// on every call, never cached.
func (e *Engine) CurrentSession(ctx context.Context) (*SessionInfo, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}

	sess, expired, err := e.sessions.Current(ctx)
	if err != nil {
		e.metricInc(MetricStorageFailure)
		e.emitAudit(ctx, auditEventStorageFailure, false, "", err, func() map[string]string {
			return map[string]string{
				"operation": "current_session",
			}
		})
		return nil, ErrStorageUnavailable
	}
	if expired {
		e.metricInc(MetricSessionExpired)
		e.emitAudit(ctx, auditEventSessionExpired, true, "", nil, nil)
	}
	if sess == nil {
		return nil, nil
	}

	return &SessionInfo{
		Token:  sess.Token,
		Email:  sess.Email,
		Name:   sess.Name,
		Expiry: sess.Expiry,
	}, nil
}

// Logout describes the logout operation and its observable behavior.
//
// Logout may return an error when input validation, dependency calls, or security checks fail.
// Logout does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Logout unconditionally clears the session slot and is safe to call when
// no session is active.
func (e *Engine) Logout(ctx context.Context) error {
	if !e.ready() {
		return ErrEngineNotReady
	}

	if err := e.sessions.Delete(ctx); err != nil {
		e.metricInc(MetricStorageFailure)
		e.emitAudit(ctx, auditEventStorageFailure, false, "", err, func() map[string]string {
			return map[string]string{
				"operation": "logout",
			}
		})
		return ErrStorageUnavailable
	}

	e.metricInc(MetricLogout)
	e.emitAudit(ctx, auditEventLogout, true, "", nil, nil)

	return nil
}

// IsAuthenticated describes the isauthenticated operation and its observable behavior.
//
// IsAuthenticated may return an error when input validation, dependency calls, or security checks fail.
// IsAuthenticated does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) IsAuthenticated(ctx context.Context) bool {
	sess, err := e.CurrentSession(ctx)
	return err == nil && sess != nil
}
