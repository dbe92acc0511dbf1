package authengine

import (
	"errors"
	"time"
)

// Config defines a public type used by authengine APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Password PasswordConfig
	Session  SessionConfig
	Reset    ResetConfig
	Store    StoreConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

/*
====================================
PASSWORD CONFIG
====================================
*/

// PasswordConfig defines a public type used by authengine APIs.
//
// PasswordConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PasswordConfig struct {
	// MinLength is the minimum accepted password length in bytes.
	MinLength int
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by authengine APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// Namespace is the kv key the single session slot lives under.
	Namespace string
	// Lifetime is how long an issued session stays valid.
	Lifetime time.Duration
}

/*
====================================
RESET CONFIG
====================================
*/

// ResetConfig defines a public type used by authengine APIs.
//
// ResetConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ResetConfig struct {
	// TokenTTL is how long an issued reset token stays redeemable.
	TokenTTL time.Duration
}

/*
====================================
STORE CONFIG
====================================
*/

// StoreConfig defines a public type used by authengine APIs.
//
// StoreConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StoreConfig struct {
	// Namespace is the kv key the credential collection lives under.
	Namespace string
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by authengine APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events instead of blocking when the buffer is full.
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by authengine APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

const (
	defaultMinPasswordLength = 8
	defaultSessionLifetime   = 24 * time.Hour
	defaultResetTokenTTL     = 15 * time.Minute
	defaultStoreNamespace    = "weatherly_auth"
	defaultSessionNamespace  = "weatherly_session"
)

// DefaultConfig returns the engine defaults: 8-byte minimum passwords,
// 24-hour sessions, 15-minute reset tokens, and the original deployment's
// storage namespaces.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Password: PasswordConfig{
			MinLength: defaultMinPasswordLength,
		},
		Session: SessionConfig{
			Namespace: defaultSessionNamespace,
			Lifetime:  defaultSessionLifetime,
		},
		Reset: ResetConfig{
			TokenTTL: defaultResetTokenTTL,
		},
		Store: StoreConfig{
			Namespace: defaultStoreNamespace,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// All fields are value types; a shallow copy is a full copy.
	return cfg
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c Config) Validate() error {
	if c.Password.MinLength < 1 {
		return errors.New("Password.MinLength must be at least 1")
	}
	if c.Session.Lifetime <= 0 {
		return errors.New("Session.Lifetime must be positive")
	}
	if c.Reset.TokenTTL <= 0 {
		return errors.New("Reset.TokenTTL must be positive")
	}
	if c.Store.Namespace == "" {
		return errors.New("Store.Namespace must not be empty")
	}
	if c.Session.Namespace == "" {
		return errors.New("Session.Namespace must not be empty")
	}
	if c.Store.Namespace == c.Session.Namespace {
		return errors.New("Store.Namespace and Session.Namespace must differ")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit.BufferSize must be positive when audit is enabled")
	}
	return nil
}
