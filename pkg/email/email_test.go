package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestBuildMessageValidation(t *testing.T) {
	ok := Message{To: []string{"a@example.com"}, Subject: "s", TextBody: "b"}

	tests := []struct {
		name string
		from string
		msg  Message
	}{
		{"no from", "", ok},
		{"no recipients", "n@example.com", Message{To: []string{" "}, Subject: "s", TextBody: "b"}},
		{"no subject", "n@example.com", Message{To: ok.To, TextBody: "b"}},
		{"no body", "n@example.com", Message{To: ok.To, Subject: "s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			var invalid ErrInvalidMessage
			assert.True(t, errors.As(err, &invalid))
		})
	}

	_, err := buildMessage("n@example.com", ok)
	assert.NoError(t, err)
}

func TestSend(t *testing.T) {
	var sent *gomail.Message
	c := New(Config{Enabled: true, From: "n@example.com", SMTPTimeout: time.Second})
	c.dial = func(m *gomail.Message) error {
		sent = m
		return nil
	}

	require.NoError(t, c.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "hi", TextBody: "b"}))
	require.NotNil(t, sent)
	assert.Equal(t, []string{"a@example.com"}, sent.GetHeader("To"))

	c.dial = func(*gomail.Message) error { return errors.New("refused") }
	err := c.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "hi", TextBody: "b"})
	var sendErr ErrSend
	assert.True(t, errors.As(err, &sendErr))
}

func TestSendDisabled(t *testing.T) {
	c := New(Config{From: "n@example.com"})
	err := c.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "s", TextBody: "b"})
	assert.ErrorAs(t, err, &ErrDisabled{})
	assert.False(t, c.Enabled())
}

func TestBuildNotificationEmail(t *testing.T) {
	m := BuildNotificationEmail(NotificationEmailData{
		To:      "bob@example.com",
		AppName: "Acme",
		Actor:   "alice",
		Verb:    "commented on",
		Target:  "<Post 1>",
		URL:     "https://acme.test/posts/1",
	})

	assert.Equal(t, []string{"bob@example.com"}, m.To)
	assert.Equal(t, "[Acme] alice commented on <Post 1>", m.Subject)
	assert.Contains(t, m.TextBody, "https://acme.test/posts/1")
	assert.Contains(t, m.HTMLBody, "&lt;Post 1&gt;")
	assert.NotContains(t, m.HTMLBody, "<Post 1>")
}
