package dispatch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/notifications/config"
	"github.com/Alijeyrad/notifications/internal/service/dispatch"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/internal/service/resolve"
	"github.com/Alijeyrad/notifications/pkg/database/dbtest"
	"github.com/Alijeyrad/notifications/pkg/email"
	"github.com/Alijeyrad/notifications/pkg/observability"
	"github.com/Alijeyrad/notifications/pkg/util/slug"
)

type recorder struct {
	sent []email.Message
	err  error
}

func (r *recorder) Send(_ context.Context, m email.Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, m)
	return nil
}

func setup(t *testing.T, mailer email.Sender) (*dispatch.Dispatcher, notification.Service) {
	t.Helper()
	svc := notification.New(dbtest.Open(t), notification.DeleteHard)

	codec := slug.New(slug.DefaultOffset)
	reg := resolve.NewRegistry()
	resolve.RegisterTemplates(reg, []config.ObjectTypeConfig{
		{Name: "user", Label: "User {id}"},
		{Name: "post", Label: "Post {id}", URL: "https://example.com/posts/{id}"},
	}, codec, nil)

	metrics, err := observability.NewNotificationMetrics()
	require.NoError(t, err)

	d := dispatch.New(svc, resolve.NewProjector(reg, codec), mailer, metrics, dispatch.Config{
		AppName:  "Example",
		InboxURL: "https://example.com/inbox/notifications/",
	})
	return d, svc
}

func TestDispatchStoresAndMails(t *testing.T) {
	ctx := context.Background()
	mailer := &recorder{}
	d, svc := setup(t, mailer)

	alice, bob := uuid.New(), uuid.New()
	n, err := d.Dispatch(ctx, dispatch.Message{
		Recipients: []dispatch.Recipient{{ID: alice, Email: "alice@example.com"}, {ID: bob}},
		Actor:      notification.Ref{Type: "user", ID: "7"},
		Verb:       "commented on",
		Target:     &notification.Ref{Type: "post", ID: "3"},
		Email:      true,
	}, "test")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, mailer.sent, 1)
	m := mailer.sent[0]
	assert.Equal(t, []string{"alice@example.com"}, m.To)
	assert.Contains(t, m.TextBody, "User 7 commented on Post 3")
	assert.Contains(t, m.TextBody, "https://example.com/posts/3")

	sent, err := svc.Count(ctx, alice, notification.ViewSent)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	unsent, err := svc.Count(ctx, bob, notification.ViewUnsent)
	require.NoError(t, err)
	assert.Equal(t, 1, unsent)
}

func TestDispatchMailFailureLeavesUnsent(t *testing.T) {
	ctx := context.Background()
	d, svc := setup(t, &recorder{err: errors.New("smtp down")})

	alice := uuid.New()
	_, err := d.Dispatch(ctx, dispatch.Message{
		Recipients: []dispatch.Recipient{{ID: alice, Email: "alice@example.com"}},
		Actor:      notification.Ref{Type: "user", ID: "7"},
		Verb:       "followed you",
		Email:      true,
	}, "test")
	require.NoError(t, err)

	unsent, err := svc.Count(ctx, alice, notification.ViewUnsent)
	require.NoError(t, err)
	assert.Equal(t, 1, unsent)
}

func TestDispatchWithoutMailer(t *testing.T) {
	d, _ := setup(t, nil)
	n, err := d.Dispatch(context.Background(), dispatch.Message{
		Recipients: []dispatch.Recipient{{ID: uuid.New(), Email: "a@example.com"}},
		Actor:      notification.Ref{Type: "user", ID: "1"},
		Verb:       "joined",
		Email:      true,
	}, "test")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDispatchRejectsInvalid(t *testing.T) {
	d, _ := setup(t, nil)
	_, err := d.Dispatch(context.Background(), dispatch.Message{
		Recipients: []dispatch.Recipient{{ID: uuid.New()}},
		Actor:      notification.Ref{Type: "user", ID: "1"},
	}, "test")
	assert.ErrorIs(t, err, notification.ErrInvalidRequest)

	_, err = d.Dispatch(context.Background(), dispatch.Message{
		Actor: notification.Ref{Type: "user", ID: "1"},
		Verb:  "joined",
	}, "test")
	assert.ErrorIs(t, err, notification.ErrInvalidRequest)
}

func TestParseRef(t *testing.T) {
	ref, err := dispatch.ParseRef("auth.user:42")
	require.NoError(t, err)
	assert.Equal(t, notification.Ref{Type: "auth.user", ID: "42"}, ref)

	ref, err = dispatch.ParseRef("urn:isbn:123")
	require.NoError(t, err)
	assert.Equal(t, "isbn:123", ref.ID)

	for _, bad := range []string{"", "user", "user:", ":42"} {
		_, err := dispatch.ParseRef(bad)
		assert.ErrorIs(t, err, dispatch.ErrBadRef, bad)
	}
}
