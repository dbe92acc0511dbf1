package authengine

import (
	"context"

	"github.com/weatherly/authengine/digest"
)

// RequestPasswordReset describes the requestpasswordreset operation and its observable behavior.
//
// RequestPasswordReset may return an error when input validation, dependency calls, or security checks fail.
// RequestPasswordReset does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// RequestPasswordReset always reports success with the same generic message
// whether or not the email is registered; account non-existence is never
// signalled through the result. When the account exists, the issued token
// is persisted on the record and returned in the result — dispatching it
// out-of-band is the caller's concern.
func (e *Engine) RequestPasswordReset(ctx context.Context, email string) (ResetRequestResult, error) {
	if !e.ready() {
		return ResetRequestResult{Result: failure(msgNotReady)}, ErrEngineNotReady
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	records, err := e.credentials.Load(ctx)
	if err != nil {
		e.metricInc(MetricStorageFailure)
		e.emitAudit(ctx, auditEventStorageFailure, false, email, err, func() map[string]string {
			return map[string]string{
				"operation": "reset_request",
			}
		})
		return ResetRequestResult{Result: failure(msgStorageUnavailable)}, ErrStorageUnavailable
	}

	user, exists := records[email]
	if !exists {
		e.metricInc(MetricResetRequested)
		e.emitAudit(ctx, auditEventResetRequested, true, email, nil, func() map[string]string {
			return map[string]string{
				"known_account": "false",
			}
		})
		return ResetRequestResult{Result: success(msgResetRequested)}, nil
	}

	token, err := digest.NewToken()
	if err != nil {
		e.emitAudit(ctx, auditEventResetRequested, false, email, err, func() map[string]string {
			return map[string]string{
				"reason": "token_generation",
			}
		})
		return ResetRequestResult{Result: failure(msgStorageUnavailable)}, err
	}

	user.SetReset(token, e.now().Add(e.config.Reset.TokenTTL))
	records[email] = user

	if err := e.credentials.Save(ctx, records); err != nil {
		e.metricInc(MetricStorageFailure)
		e.emitAudit(ctx, auditEventStorageFailure, false, email, err, func() map[string]string {
			return map[string]string{
				"operation": "reset_request",
			}
		})
		return ResetRequestResult{Result: failure(msgStorageUnavailable)}, ErrStorageUnavailable
	}

	e.metricInc(MetricResetRequested)
	e.emitAudit(ctx, auditEventResetRequested, true, email, nil, func() map[string]string {
		return map[string]string{
			"known_account": "true",
		}
	})

	return ResetRequestResult{
		Result: success(msgResetRequested),
		Token:  token,
	}, nil
}

// ResetPassword describes the resetpassword operation and its observable behavior.
//
// ResetPassword may return an error when input validation, dependency calls, or security checks fail.
// ResetPassword does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// ResetPassword redeems a reset token: the matching record gets a fresh
// salt and digest and its reset pair is cleared in a single record replace,
// so a redeemed token cannot be replayed and the old password stops
// working. A wrong token and an expired token fail identically.
func (e *Engine) ResetPassword(ctx context.Context, token, newPassword string) (Result, error) {
	if !e.ready() {
		return failure(msgNotReady), ErrEngineNotReady
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	records, err := e.credentials.Load(ctx)
	if err != nil {
		e.metricInc(MetricStorageFailure)
		e.emitAudit(ctx, auditEventStorageFailure, false, "", err, func() map[string]string {
			return map[string]string{
				"operation": "reset_redeem",
			}
		})
		return failure(msgStorageUnavailable), ErrStorageUnavailable
	}

	// Linear scan: the collection carries no token index, and redemption
	// volume is a handful of records at most.
	now := e.now()
	matched := ""
	for email, record := range records {
		if record.MatchesReset(token, now) {
			matched = email
			break
		}
	}

	if matched == "" {
		e.metricInc(MetricResetRejected)
		e.emitAudit(ctx, auditEventResetRejected, false, "", ErrInvalidOrExpiredToken, nil)
		return failure(msgInvalidResetToken), ErrInvalidOrExpiredToken
	}

	if len(newPassword) < e.config.Password.MinLength {
		e.metricInc(MetricResetRejected)
		e.emitAudit(ctx, auditEventResetRejected, false, matched, ErrWeakPassword, func() map[string]string {
			return map[string]string{
				"reason": "password_too_short",
			}
		})
		return failure(e.weakPasswordMessage()), ErrWeakPassword
	}

	salt, err := digest.NewSalt()
	if err != nil {
		e.emitAudit(ctx, auditEventResetRejected, false, matched, err, func() map[string]string {
			return map[string]string{
				"reason": "salt_generation",
			}
		})
		return failure(msgStorageUnavailable), err
	}

	record := records[matched]
	record.PasswordHash = digest.Hash(newPassword, salt)
	record.Salt = salt
	record.ClearReset()
	records[matched] = record
	newPassword = ""

	if err := e.credentials.Save(ctx, records); err != nil {
		e.metricInc(MetricStorageFailure)
		e.emitAudit(ctx, auditEventStorageFailure, false, matched, err, func() map[string]string {
			return map[string]string{
				"operation": "reset_redeem",
			}
		})
		return failure(msgStorageUnavailable), ErrStorageUnavailable
	}

	e.metricInc(MetricResetRedeemed)
	e.emitAudit(ctx, auditEventResetRedeemed, true, matched, nil, nil)

	return success(msgResetSuccess), nil
}
