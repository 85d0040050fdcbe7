package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/notifications/config"
)

func TestNotificationMetricsOnDefaultProvider(t *testing.T) {
	m, err := NewNotificationMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.Created(ctx, "nats", 3)
	m.Transition(ctx, "mark_all_as_read", 2)
	m.Email(ctx, true)
}

func TestFromCentralConfig(t *testing.T) {
	c := &config.Config{}
	c.Observability.ServiceName = "notifications"
	c.Server.Environment = "production"
	c.Observability.Tracing = config.TracingConfig{OTLPEndpoint: "otel:4318", SamplingRate: 0.5}

	got := FromCentralConfig(c)
	assert.Equal(t, "notifications", got.ServiceName)
	assert.Equal(t, "production", got.Environment)
	assert.Empty(t, got.OTLPEndpoint)

	c.Observability.Tracing.Enabled = true
	got = FromCentralConfig(c)
	assert.Equal(t, "otel:4318", got.OTLPEndpoint)
	assert.Equal(t, 0.5, got.SamplingRate)
}
