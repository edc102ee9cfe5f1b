// Package config holds the runtime-tunable knobs spec.md §6.4 assigns
// to the transport layer's deployment: clock-skew tolerance for fork
// resolution, timestamp drift bounds, and feature toggles. It follows
// the teacher's functional-options construction (chain.Option,
// massifs.ReaderOption) rather than a config-file loader — nothing in
// the teacher's or the wider pack's dependency graph reaches for
// viper/envconfig, so a struct-of-options built with With* funcs over
// a zero value is the idiom this corpus actually uses.
package config

import "time"

// Config holds the options of §6.4. The zero value is NOT ready to
// use — call Default() or apply enough Options to set the three
// duration fields explicitly.
type Config struct {
	// MaxClockSkew is the window within which two fork branch
	// timestamps are considered tied (default 5 minutes).
	MaxClockSkew time.Duration

	// MaxFutureDrift is how far beyond "now" a branch timestamp may
	// sit before it is rejected as FutureTimestamp (default 60s).
	MaxFutureDrift time.Duration

	// MaxPastAge is how far before "now" a branch timestamp may sit
	// before it is rejected as PastTimestamp (default 24h).
	MaxPastAge time.Duration

	// SovereignMass enables the sovereign primitive routes at the
	// transport layer when true.
	SovereignMass bool

	// DBPool is an opaque handle to a durable-store connection pool.
	// Its mere presence (non-nil) enables write-through from the
	// in-memory stores (§4.11); the core never inspects it further.
	DBPool any
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithMaxClockSkew overrides the fork-resolution clock skew window.
func WithMaxClockSkew(d time.Duration) Option {
	return func(c *Config) { c.MaxClockSkew = d }
}

// WithMaxFutureDrift overrides the maximum allowed future timestamp drift.
func WithMaxFutureDrift(d time.Duration) Option {
	return func(c *Config) { c.MaxFutureDrift = d }
}

// WithMaxPastAge overrides the maximum allowed timestamp backdating.
func WithMaxPastAge(d time.Duration) Option {
	return func(c *Config) { c.MaxPastAge = d }
}

// WithSovereignMass toggles the sovereign primitive routes.
func WithSovereignMass(enabled bool) Option {
	return func(c *Config) { c.SovereignMass = enabled }
}

// WithDBPool sets the durable-store pool handle, enabling write-through.
func WithDBPool(pool any) Option {
	return func(c *Config) { c.DBPool = pool }
}

// Default returns a Config set to spec.md §6.4's documented defaults,
// with opts applied on top.
func Default(opts ...Option) Config {
	c := Config{
		MaxClockSkew:   5 * time.Minute,
		MaxFutureDrift: 60 * time.Second,
		MaxPastAge:     24 * time.Hour,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// DurableWriteEnabled reports whether a DBPool has been configured,
// per §6.4's "db_pool presence" rule.
func (c Config) DurableWriteEnabled() bool {
	return c.DBPool != nil
}
