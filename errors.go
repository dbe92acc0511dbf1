package authengine

import "errors"

var (
	// ErrDuplicateUser is an exported constant or variable used by the credential engine.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrWeakPassword is an exported constant or variable used by the credential engine.
	ErrWeakPassword = errors.New("password too short")
	// ErrInvalidCredentials is an exported constant or variable used by the credential engine.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidOrExpiredToken is an exported constant or variable used by the credential engine.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
	// ErrStorageUnavailable is an exported constant or variable used by the credential engine.
	ErrStorageUnavailable = errors.New("credential storage unavailable")
	// ErrEngineNotReady is an exported constant or variable used by the credential engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
