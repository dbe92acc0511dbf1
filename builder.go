package authengine

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/weatherly/authengine/credential"
	"github.com/weatherly/authengine/kv"
	"github.com/weatherly/authengine/session"
)

// Builder defines a public type used by authengine APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	redis         *redis.Client
	credentialKV  kv.Store
	sessionKV     kv.Store
	clock         Clock
	auditSink     AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis wires both namespaces to the given Redis client. The credential
// collection and the session slot live under distinct keys, so one client
// serves both.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithStores injects explicit kv backends for the credential collection and
// the session slot. It takes precedence over [Builder.WithRedis].
func (b *Builder) WithStores(credentials, sessions kv.Store) *Builder {
	b.credentialKV = credentials
	b.sessionKV = sessions
	return b
}

// WithClock describes the withclock operation and its observable behavior.
//
// WithClock may return an error when input validation, dependency calls, or security checks fail.
// WithClock does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithClock(clock Clock) *Builder {
	b.clock = clock
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	credentialKV := b.credentialKV
	sessionKV := b.sessionKV
	if credentialKV == nil || sessionKV == nil {
		if b.redis == nil {
			return nil, errors.New("kv stores or redis client required")
		}
		backend := kv.NewRedis(b.redis)
		if credentialKV == nil {
			credentialKV = backend
		}
		if sessionKV == nil {
			sessionKV = backend
		}
	}

	clock := b.clock
	if clock == nil {
		clock = time.Now
	}

	engine := &Engine{
		config:      cfg,
		clock:       clock,
		credentials: credential.NewStore(credentialKV, cfg.Store.Namespace),
		sessions:    session.NewStore(sessionKV, cfg.Session.Namespace, func() time.Time { return clock() }),
		audit:       newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:     NewMetrics(cfg.Metrics),
	}

	b.built = true

	return engine, nil
}
