package authengine

import "time"

// Clock supplies the engine's notion of now. Injected so expiry behavior
// is testable; defaults to [time.Now].
type Clock func() time.Time

// Result is the structured outcome every engine operation reports: a
// success flag plus a human-readable message. Failed operations return a
// Result with Success false alongside a matching sentinel error.
//
// Result instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserInfo is the identity payload returned on successful login. It never
// carries the password hash or salt.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResult is returned by [Engine.Login]. User is set only on success.
type LoginResult struct {
	Result
	User *UserInfo `json:"user,omitempty"`
}

// ResetRequestResult is returned by [Engine.RequestPasswordReset]. The
// message is identical whether or not the account exists; Token is set only
// when it does. In a production deployment the token would be dispatched
// out-of-band instead of returned — delivery is outside engine scope.
type ResetRequestResult struct {
	Result
	Token string `json:"token,omitempty"`
}

// SessionInfo is the caller-visible copy of the active session. Mutating it
// has no effect on stored state.
type SessionInfo struct {
	Token  string    `json:"token"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Expiry time.Time `json:"expiry"`
}
