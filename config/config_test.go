package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppliesSpecDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, 5*time.Minute, c.MaxClockSkew)
	assert.Equal(t, 60*time.Second, c.MaxFutureDrift)
	assert.Equal(t, 24*time.Hour, c.MaxPastAge)
	assert.False(t, c.SovereignMass)
	assert.False(t, c.DurableWriteEnabled())
}

func TestOptionsOverrideDefaults(t *testing.T) {
	c := Default(
		WithMaxClockSkew(1*time.Minute),
		WithSovereignMass(true),
		WithDBPool(struct{}{}),
	)
	assert.Equal(t, 1*time.Minute, c.MaxClockSkew)
	assert.True(t, c.SovereignMass)
	assert.True(t, c.DurableWriteEnabled())
}
