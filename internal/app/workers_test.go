package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/notifications/internal/service/dispatch"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/internal/service/resolve"
	"github.com/Alijeyrad/notifications/pkg/database/dbtest"
	"github.com/Alijeyrad/notifications/pkg/observability"
	"github.com/Alijeyrad/notifications/pkg/util/slug"
)

func newDispatcher(t *testing.T) *dispatch.Dispatcher {
	t.Helper()
	codec := slug.New(slug.DefaultOffset)
	metrics, err := observability.NewNotificationMetrics()
	require.NoError(t, err)
	svc := notification.New(dbtest.Open(t), notification.DeleteHard)
	return dispatch.New(svc, resolve.NewProjector(resolve.NewRegistry(), codec), nil, metrics, dispatch.Config{})
}

func TestHandleNotify(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		body    string
		created int
		failed  bool
	}{
		{
			name: "two recipients",
			body: `{"recipients":[{"id":"6f1c5b1e-1d1a-4c1b-9a51-0d2f3b1f7a10"},{"id":"0b7e3c52-8d55-4c57-b0a4-9e3b0b0e6a21"}],
				"actor":{"type":"user","id":"1"},"verb":"mentioned you","level":"warning"}`,
			created: 2,
		},
		{name: "not json", body: `{`, failed: true},
		{
			name:   "missing verb",
			body:   `{"recipients":[{"id":"6f1c5b1e-1d1a-4c1b-9a51-0d2f3b1f7a10"}],"actor":{"type":"user","id":"1"}}`,
			failed: true,
		},
		{
			name:   "bad level",
			body:   `{"recipients":[{"id":"6f1c5b1e-1d1a-4c1b-9a51-0d2f3b1f7a10"}],"actor":{"type":"user","id":"1"},"verb":"x","level":"loud"}`,
			failed: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := handleNotify(ctx, d, []byte(tt.body))
			assert.Equal(t, tt.created, reply.Created)
			assert.Equal(t, tt.failed, reply.Error != "")
		})
	}
}
