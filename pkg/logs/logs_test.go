package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/notifications/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var debug, warn bytes.Buffer
	h := fanOut(
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h).With("k", "v")

	log.Debug("quiet")
	log.Warn("loud")

	assert.Contains(t, debug.String(), "quiet")
	assert.Contains(t, debug.String(), "loud")
	assert.NotContains(t, warn.String(), "quiet")
	assert.Contains(t, warn.String(), "k=v")
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug-1))
}

func TestLokiWriterPushes(t *testing.T) {
	var got lokiPush
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/loki/api/v1/push", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "u", user)
		assert.Equal(t, "p", pass)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.Observability.ServiceName = "notifications"
	cfg.Server.Environment = "test"
	cfg.Logging.Output.Loki = config.LokiConfig{Enabled: true, Endpoint: srv.URL, Username: "u", Password: "p"}

	n, err := newLokiWriter(cfg).Write([]byte("{\"msg\":\"hi\"}\n"))
	require.NoError(t, err)
	assert.Equal(t, 13, n)

	require.Len(t, got.Streams, 1)
	assert.Equal(t, map[string]string{"service": "notifications", "env": "test"}, got.Streams[0].Stream)
	require.Len(t, got.Streams[0].Values, 1)
	assert.Equal(t, `{"msg":"hi"}`, got.Streams[0].Values[0][1])
}
