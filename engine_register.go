package authengine

import (
	"context"
	"fmt"

	"github.com/weatherly/authengine/credential"
	"github.com/weatherly/authengine/digest"
)

// Register describes the register operation and its observable behavior.
//
// Register may return an error when input validation, dependency calls, or security checks fail.
// Register does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Register creates a new user record for email. The email is used as-is:
// no normalization, no format validation, case-sensitive uniqueness.
// Registration never creates a session. On failure no record is written.
func (e *Engine) Register(ctx context.Context, name, email, password string) (Result, error) {
	if !e.ready() {
		return failure(msgNotReady), ErrEngineNotReady
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	records, err := e.credentials.Load(ctx)
	if err != nil {
		e.metricInc(MetricStorageFailure)
		e.emitAudit(ctx, auditEventStorageFailure, false, email, err, func() map[string]string {
			return map[string]string{
				"operation": "register",
			}
		})
		return failure(msgStorageUnavailable), ErrStorageUnavailable
	}

	if _, exists := records[email]; exists {
		e.metricInc(MetricRegisterDuplicate)
		e.emitAudit(ctx, auditEventRegisterDuplicate, false, email, ErrDuplicateUser, nil)
		return failure(msgDuplicateUser), ErrDuplicateUser
	}

	// Byte length, matching the original policy; multi-byte runes count
	// per byte.
	if len(password) < e.config.Password.MinLength {
		e.metricInc(MetricRegisterWeakPassword)
		e.emitAudit(ctx, auditEventRegisterRejected, false, email, ErrWeakPassword, func() map[string]string {
			return map[string]string{
				"reason": "password_too_short",
			}
		})
		return failure(e.weakPasswordMessage()), ErrWeakPassword
	}

	salt, err := digest.NewSalt()
	if err != nil {
		e.emitAudit(ctx, auditEventRegisterRejected, false, email, err, func() map[string]string {
			return map[string]string{
				"reason": "salt_generation",
			}
		})
		return failure(msgStorageUnavailable), err
	}

	records[email] = credential.Record{
		Name:         name,
		Email:        email,
		PasswordHash: digest.Hash(password, salt),
		Salt:         salt,
		CreatedAt:    e.now(),
	}

	if err := e.credentials.Save(ctx, records); err != nil {
		e.metricInc(MetricStorageFailure)
		e.emitAudit(ctx, auditEventStorageFailure, false, email, err, func() map[string]string {
			return map[string]string{
				"operation": "register",
			}
		})
		return failure(msgStorageUnavailable), ErrStorageUnavailable
	}

	e.metricInc(MetricRegisterSuccess)
	e.emitAudit(ctx, auditEventRegisterSuccess, true, email, nil, nil)

	return success(msgRegistered), nil
}

func (e *Engine) weakPasswordMessage() string {
	return fmt.Sprintf("Password must be at least %d characters long", e.config.Password.MinLength)
}
