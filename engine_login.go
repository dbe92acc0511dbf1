package authengine

import (
	"context"

	"github.com/weatherly/authengine/digest"
	"github.com/weatherly/authengine/session"
)

// Login describes the login operation and its observable behavior.
//
// Login may return an error when input validation, dependency calls, or security checks fail.
// Login does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Login verifies the password digest and, on success, writes a fresh
// session into the single slot, overwriting any prior session. An unknown
// email and a wrong password fail identically: neither the result nor the
// error reveals which check missed.
func (e *Engine) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if !e.ready() {
		return LoginResult{Result: failure(msgNotReady)}, ErrEngineNotReady
	}

	records, err := e.credentials.Load(ctx)
	if err != nil {
		e.metricInc(MetricStorageFailure)
		e.emitAudit(ctx, auditEventStorageFailure, false, email, err, func() map[string]string {
			return map[string]string{
				"operation": "login",
			}
		})
		return LoginResult{Result: failure(msgStorageUnavailable)}, ErrStorageUnavailable
	}

	user, exists := records[email]
	if !exists {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"reason": "user_not_found",
			}
		})
		return LoginResult{Result: failure(msgInvalidCredentials)}, ErrInvalidCredentials
	}

	if !digest.Verify(password, user.Salt, user.PasswordHash) {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"reason": "password_mismatch",
			}
		})
		return LoginResult{Result: failure(msgInvalidCredentials)}, ErrInvalidCredentials
	}
	password = ""

	token, err := digest.NewToken()
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, err, func() map[string]string {
			return map[string]string{
				"reason": "token_generation",
			}
		})
		return LoginResult{Result: failure(msgStorageUnavailable)}, err
	}

	sess := &session.Session{
		Token:  token,
		Email:  user.Email,
		Name:   user.Name,
		Expiry: e.now().Add(e.config.Session.Lifetime),
	}

	if err := e.sessions.Put(ctx, sess); err != nil {
		e.metricInc(MetricStorageFailure)
		e.emitAudit(ctx, auditEventStorageFailure, false, email, err, func() map[string]string {
			return map[string]string{
				"operation": "login",
			}
		})
		return LoginResult{Result: failure(msgStorageUnavailable)}, ErrStorageUnavailable
	}

	e.metricInc(MetricSessionCreated)
	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, auditEventLoginSuccess, true, email, nil, nil)

	return LoginResult{
		Result: success(msgLoginSuccess),
		User: &UserInfo{
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
