package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/notifications/internal/service/notification"
)

func TestSendFlagsMessage(t *testing.T) {
	f := sendFlags{
		recipients:  []string{"6f1c5b1e-1d1a-4c1b-9a51-0d2f3b1f7a10=alice@example.com", "0b7e3c52-8d55-4c57-b0a4-9e3b0b0e6a21"},
		actor:       "user:42",
		verb:        "commented on",
		target:      "post:7",
		description: "nice",
		data:        `{"k":"v"}`,
		email:       true,
	}
	m, err := f.message()
	require.NoError(t, err)

	require.Len(t, m.Recipients, 2)
	assert.Equal(t, "alice@example.com", m.Recipients[0].Email)
	assert.Empty(t, m.Recipients[1].Email)
	assert.Equal(t, notification.Ref{Type: "user", ID: "42"}, m.Actor)
	require.NotNil(t, m.Target)
	assert.Equal(t, "7", m.Target.ID)
	assert.Nil(t, m.ActionObject)
	require.NotNil(t, m.Description)
	assert.Equal(t, "nice", *m.Description)
	assert.Equal(t, "v", m.Data["k"])
	assert.True(t, m.Email)
}

func TestSendFlagsMessageErrors(t *testing.T) {
	base := sendFlags{recipients: []string{"6f1c5b1e-1d1a-4c1b-9a51-0d2f3b1f7a10"}, actor: "user:1", verb: "x"}

	tests := []struct {
		name   string
		modify func(*sendFlags)
	}{
		{"bad recipient", func(f *sendFlags) { f.recipients = []string{"nope"} }},
		{"bad actor", func(f *sendFlags) { f.actor = "user" }},
		{"bad target", func(f *sendFlags) { f.target = ":1" }},
		{"bad data", func(f *sendFlags) { f.data = "[1]" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base
			tt.modify(&f)
			_, err := f.message()
			assert.Error(t, err)
		})
	}
}
