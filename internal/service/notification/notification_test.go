package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/notifications/internal/repo"
	entnotif "github.com/Alijeyrad/notifications/internal/repo/notification"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/pkg/database/dbtest"
)

var actor = notification.Ref{Type: "auth.user", ID: "1"}

func newService(t *testing.T, policy notification.DeletePolicy) (notification.Service, *repo.Client) {
	t.Helper()
	client := dbtest.Open(t)
	return notification.New(client, policy), client
}

func create(t *testing.T, svc notification.Service, recipient uuid.UUID, verb string) *repo.Notification {
	t.Helper()
	n, err := svc.Create(context.Background(), notification.CreateRequest{
		Recipient: recipient,
		Payload:   notification.Payload{Actor: actor, Verb: verb},
	})
	require.NoError(t, err)
	return n
}

func unread(t *testing.T, client *repo.Client, id int64) bool {
	t.Helper()
	n, err := client.Notification.Get(context.Background(), id)
	require.NoError(t, err)
	return n.Unread
}

func TestMarkAsReadIsIdempotent(t *testing.T) {
	svc, client := newService(t, notification.DeleteHard)
	ctx := context.Background()
	u := uuid.New()
	n := create(t, svc, u, "liked")

	require.NoError(t, svc.MarkAsRead(ctx, u, n.ID))
	assert.False(t, unread(t, client, n.ID))

	require.NoError(t, svc.MarkAsRead(ctx, u, n.ID))
	assert.False(t, unread(t, client, n.ID))
}

func TestMarkAsUnreadRoundTrip(t *testing.T) {
	svc, client := newService(t, notification.DeleteHard)
	ctx := context.Background()
	u := uuid.New()
	n := create(t, svc, u, "liked")

	require.NoError(t, svc.MarkAsRead(ctx, u, n.ID))
	require.NoError(t, svc.MarkAsUnread(ctx, u, n.ID))
	assert.True(t, unread(t, client, n.ID))

	require.NoError(t, svc.MarkAsUnread(ctx, u, n.ID))
	assert.True(t, unread(t, client, n.ID))
}

func TestForeignAndMissingRowsAreNotFound(t *testing.T) {
	svc, client := newService(t, notification.DeleteSoft)
	ctx := context.Background()
	owner, stranger := uuid.New(), uuid.New()
	n := create(t, svc, owner, "liked")

	ops := map[string]func(uuid.UUID, int64) error{
		"read":   func(u uuid.UUID, id int64) error { return svc.MarkAsRead(ctx, u, id) },
		"unread": func(u uuid.UUID, id int64) error { return svc.MarkAsUnread(ctx, u, id) },
		"sent":   func(u uuid.UUID, id int64) error { return svc.MarkAsSent(ctx, u, id) },
		"delete": func(u uuid.UUID, id int64) error { return svc.Delete(ctx, u, id) },
		"get": func(u uuid.UUID, id int64) error {
			_, err := svc.Get(ctx, u, id)
			return err
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, op(stranger, n.ID), notification.ErrNotFound)
			assert.ErrorIs(t, op(owner, n.ID+1000), notification.ErrNotFound)
		})
	}

	got, err := client.Notification.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, got.Unread)
	assert.False(t, got.Deleted)
	assert.False(t, got.Emailed)
}

func TestMarkAllAsRead(t *testing.T) {
	svc, _ := newService(t, notification.DeleteHard)
	ctx := context.Background()
	u, other := uuid.New(), uuid.New()

	for i := 0; i < 4; i++ {
		create(t, svc, u, "liked")
	}
	read := create(t, svc, u, "liked")
	require.NoError(t, svc.MarkAsRead(ctx, u, read.ID))
	create(t, svc, other, "liked")

	n, err := svc.MarkAllAsRead(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	count, err := svc.Count(ctx, u, notification.ViewUnread)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = svc.Count(ctx, other, notification.ViewUnread)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	n, err = svc.MarkAllAsRead(ctx, u)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMarkAllAsReadWithFilter(t *testing.T) {
	svc, _ := newService(t, notification.DeleteHard)
	ctx := context.Background()
	u := uuid.New()

	a := create(t, svc, u, "liked")
	create(t, svc, u, "liked")
	c := create(t, svc, u, "followed")

	n, err := svc.MarkAllAsRead(ctx, u, notification.Filter{Verb: "liked"}, notification.Filter{IDs: []int64{a.ID, c.ID}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.MarkAllAsRead(ctx, u, notification.Filter{IDs: []int64{}})
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := svc.Count(ctx, u, notification.ViewUnread)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSoftDelete(t *testing.T) {
	svc, _ := newService(t, notification.DeleteSoft)
	ctx := context.Background()
	u := uuid.New()
	kept := create(t, svc, u, "liked")
	gone := create(t, svc, u, "liked")

	require.NoError(t, svc.Delete(ctx, u, gone.ID))
	require.NoError(t, svc.Delete(ctx, u, gone.ID))

	got, err := svc.Get(ctx, u, gone.ID)
	require.NoError(t, err)
	assert.True(t, got.Deleted)
	assert.True(t, got.Unread)

	for _, view := range []notification.View{notification.ViewAll, notification.ViewActive, notification.ViewUnread} {
		items, err := svc.List(ctx, u, view, 0)
		require.NoError(t, err)
		require.Len(t, items, 1, view)
		assert.Equal(t, kept.ID, items[0].ID)
	}

	deleted, err := svc.List(ctx, u, notification.ViewDeleted, 0)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, gone.ID, deleted[0].ID)

	n, err := svc.MarkAllAsActive(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	count, err := svc.Count(ctx, u, notification.ViewAll)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestHardDelete(t *testing.T) {
	svc, client := newService(t, notification.DeleteHard)
	ctx := context.Background()
	u := uuid.New()
	n := create(t, svc, u, "liked")

	require.NoError(t, svc.Delete(ctx, u, n.ID))

	_, err := svc.Get(ctx, u, n.ID)
	assert.ErrorIs(t, err, notification.ErrNotFound)
	_, err = client.Notification.Get(ctx, n.ID)
	assert.True(t, repo.IsNotFound(err))

	assert.ErrorIs(t, svc.Delete(ctx, u, n.ID), notification.ErrNotFound)
}

func TestSoftDeleteOnlyOperations(t *testing.T) {
	svc, _ := newService(t, notification.DeleteHard)
	ctx := context.Background()
	u := uuid.New()

	_, err := svc.MarkAllAsDeleted(ctx, u)
	assert.ErrorIs(t, err, notification.ErrSoftDeleteDisabled)
	_, err = svc.MarkAllAsActive(ctx, u)
	assert.ErrorIs(t, err, notification.ErrSoftDeleteDisabled)
	_, err = svc.Count(ctx, u, notification.ViewDeleted)
	assert.ErrorIs(t, err, notification.ErrSoftDeleteDisabled)
	_, err = svc.Count(ctx, u, notification.View("archived"))
	assert.ErrorIs(t, err, notification.ErrInvalidView)
}

func TestViews(t *testing.T) {
	svc, _ := newService(t, notification.DeleteSoft)
	ctx := context.Background()
	u := uuid.New()

	for i := 0; i < 3; i++ {
		create(t, svc, u, "liked")
	}
	r1 := create(t, svc, u, "liked")
	r2 := create(t, svc, u, "liked")
	require.NoError(t, svc.MarkAsRead(ctx, u, r1.ID))
	require.NoError(t, svc.MarkAsRead(ctx, u, r2.ID))
	require.NoError(t, svc.MarkAsSent(ctx, u, r1.ID))

	tests := []struct {
		view notification.View
		want int
	}{
		{notification.ViewAll, 5},
		{notification.ViewUnread, 3},
		{notification.ViewRead, 2},
		{notification.ViewActive, 5},
		{notification.ViewDeleted, 0},
		{notification.ViewSent, 1},
		{notification.ViewUnsent, 4},
	}
	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			got, err := svc.Count(ctx, u, tt.view)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListNewestFirstWithLimit(t *testing.T) {
	svc, _ := newService(t, notification.DeleteHard)
	ctx := context.Background()
	u := uuid.New()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	var ids []int64
	for i := 0; i < 4; i++ {
		n, err := svc.Create(ctx, notification.CreateRequest{
			Recipient: u,
			Payload:   notification.Payload{Actor: actor, Verb: "liked", Timestamp: base.Add(time.Duration(i) * time.Minute)},
		})
		require.NoError(t, err)
		ids = append(ids, n.ID)
	}

	items, err := svc.List(ctx, u, notification.ViewAll, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, ids[3], items[0].ID)
	assert.Equal(t, ids[2], items[1].ID)
}

func TestPage(t *testing.T) {
	svc, _ := newService(t, notification.DeleteHard)
	ctx := context.Background()
	u := uuid.New()
	for i := 0; i < 5; i++ {
		create(t, svc, u, "liked")
	}

	p, err := svc.Page(ctx, u, notification.ViewAll, 1, 2)
	require.NoError(t, err)
	assert.Len(t, p.Items, 2)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, 5, p.Total)
	assert.True(t, p.HasNext())
	assert.False(t, p.HasPrevious())

	p, err = svc.Page(ctx, u, notification.ViewAll, notification.LastPage, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Number)
	assert.Len(t, p.Items, 1)
	assert.False(t, p.HasNext())

	_, err = svc.Page(ctx, u, notification.ViewAll, 4, 2)
	assert.ErrorIs(t, err, notification.ErrInvalidPage)
	_, err = svc.Page(ctx, u, notification.ViewAll, 0, 2)
	assert.ErrorIs(t, err, notification.ErrInvalidPage)

	empty, err := svc.Page(ctx, uuid.New(), notification.ViewUnread, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 1, empty.Pages)
}

func TestNotifyFansOut(t *testing.T) {
	svc, _ := newService(t, notification.DeleteHard)
	ctx := context.Background()
	recipients := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	target := &notification.Ref{Type: "blog.post", ID: "3"}

	created, err := svc.Notify(ctx, recipients, notification.Payload{
		Actor:  actor,
		Verb:   "published",
		Target: target,
		Level:  entnotif.LevelSuccess,
		Data:   map[string]any{"k": "v"},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	for i, r := range recipients {
		assert.Equal(t, r, created[i].RecipientID)
		items, err := svc.List(ctx, r, notification.ViewUnread, 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		got, ok := notification.TargetOf(items[0])
		require.True(t, ok)
		assert.Equal(t, *target, got)
		assert.Equal(t, entnotif.LevelSuccess, items[0].Level)
		assert.Equal(t, created[0].Timestamp.Unix(), items[0].Timestamp.Unix())
	}
}

func TestNotifyValidation(t *testing.T) {
	svc, client := newService(t, notification.DeleteHard)
	ctx := context.Background()
	one := []uuid.UUID{uuid.New()}

	tests := []struct {
		name       string
		recipients []uuid.UUID
		payload    notification.Payload
	}{
		{"no recipients", nil, notification.Payload{Actor: actor, Verb: "v"}},
		{"nil recipient", []uuid.UUID{uuid.New(), uuid.Nil}, notification.Payload{Actor: actor, Verb: "v"}},
		{"no actor", one, notification.Payload{Verb: "v"}},
		{"half actor", one, notification.Payload{Actor: notification.Ref{Type: "auth.user"}, Verb: "v"}},
		{"blank verb", one, notification.Payload{Actor: actor, Verb: "  "}},
		{"bad level", one, notification.Payload{Actor: actor, Verb: "v", Level: "fatal"}},
		{"half target", one, notification.Payload{Actor: actor, Verb: "v", Target: &notification.Ref{ID: "1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Notify(ctx, tt.recipients, tt.payload)
			assert.ErrorIs(t, err, notification.ErrInvalidRequest)
		})
	}

	count, err := client.Notification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMarkAllAsSent(t *testing.T) {
	svc, _ := newService(t, notification.DeleteHard)
	ctx := context.Background()
	u := uuid.New()
	a := create(t, svc, u, "liked")
	create(t, svc, u, "liked")

	n, err := svc.MarkAllAsSent(ctx, u, notification.Filter{IDs: []int64{a.ID}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	sent, err := svc.Count(ctx, u, notification.ViewSent)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	n, err = svc.MarkAllAsUnsent(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMarkAllAsUnread(t *testing.T) {
	svc, client := newService(t, notification.DeleteHard)
	ctx := context.Background()
	u, other := uuid.New(), uuid.New()
	a := create(t, svc, u, "liked")
	b := create(t, svc, u, "liked")
	c := create(t, svc, other, "liked")

	_, err := svc.MarkAllAsRead(ctx, u)
	require.NoError(t, err)
	require.NoError(t, svc.MarkAsRead(ctx, other, c.ID))

	n, err := svc.MarkAllAsUnread(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, unread(t, client, a.ID))
	assert.True(t, unread(t, client, b.ID))
	assert.False(t, unread(t, client, c.ID))

	n, err = svc.MarkAllAsUnread(ctx, u)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMarkAsUnsent(t *testing.T) {
	svc, client := newService(t, notification.DeleteHard)
	ctx := context.Background()
	u := uuid.New()
	n := create(t, svc, u, "liked")

	require.NoError(t, svc.MarkAsSent(ctx, u, n.ID))
	require.NoError(t, svc.MarkAsUnsent(ctx, u, n.ID))
	require.NoError(t, svc.MarkAsUnsent(ctx, u, n.ID))

	got, err := client.Notification.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.False(t, got.Emailed)
}

func TestPolicyFor(t *testing.T) {
	assert.Equal(t, notification.DeleteSoft, notification.PolicyFor(true))
	assert.Equal(t, notification.DeleteHard, notification.PolicyFor(false))
}
