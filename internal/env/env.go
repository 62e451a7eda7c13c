// Package env provides the modeling environment handle shared by all views.
//
// Views never inspect or copy the environment: they pass the same *Env to
// every view derived from them. Element backends may use it to own their
// symbolic objects.
package env

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Config controls environment behavior.
type Config struct {
	Name   string       // Human-readable label used in logs.
	Checks bool         // Enable contract checks (bounds, scalar stride) on every access.
	Logger *slog.Logger // Structured logger; nil discards.
}

// DefaultConfig returns a configuration with checks disabled and logging discarded.
func DefaultConfig() Config {
	return Config{
		Name:   "grid",
		Checks: false,
		Logger: nil,
	}
}

// Option adjusts a Config.
type Option func(*Config)

// WithName sets the environment label.
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithChecks enables or disables contract checks.
func WithChecks(enabled bool) Option {
	return func(c *Config) { c.Checks = enabled }
}

// WithLogger routes environment logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// Env is an opaque environment handle. The zero value is not usable; a nil
// *Env behaves like an environment built from DefaultConfig.
type Env struct {
	id     uuid.UUID
	cfg    Config
	logger *slog.Logger
}

// New creates an environment from DefaultConfig adjusted by opts.
func New(opts ...Option) *Env {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return FromConfig(cfg)
}

// FromConfig creates an environment from an explicit configuration.
func FromConfig(cfg Config) *Env {
	e := &Env{id: uuid.New(), cfg: cfg}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e.logger = logger.With(slog.String("env", cfg.Name), slog.String("env_id", e.id.String()))
	return e
}

// ID returns the unique identity of the environment.
func (e *Env) ID() uuid.UUID {
	if e == nil {
		return uuid.Nil
	}
	return e.id
}

// Name returns the environment label.
func (e *Env) Name() string {
	if e == nil {
		return DefaultConfig().Name
	}
	return e.cfg.Name
}

// Checks reports whether contract checks are enabled.
func (e *Env) Checks() bool {
	return e != nil && e.cfg.Checks
}

// Logger returns the environment logger. It is never nil.
func (e *Env) Logger() *slog.Logger {
	if e == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.logger
}

// String returns a short description of the environment.
func (e *Env) String() string {
	return fmt.Sprintf("Env[%s %s]", e.Name(), e.ID())
}
