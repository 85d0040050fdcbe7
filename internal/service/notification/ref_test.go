package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/notifications/internal/repo"
	entnotif "github.com/Alijeyrad/notifications/internal/repo/notification"
	"github.com/Alijeyrad/notifications/pkg/database/dbtest"
)

func TestRefAccessors(t *testing.T) {
	target, action := "blog.post", "42"
	n := &repo.Notification{
		ActorContentType:  "auth.user",
		ActorObjectID:     "7",
		TargetContentType: &target,
		TargetObjectID:    &action,
	}

	assert.Equal(t, Ref{Type: "auth.user", ID: "7"}, ActorOf(n))
	assert.Equal(t, "auth.user:7", ActorOf(n).String())

	got, ok := TargetOf(n)
	require.True(t, ok)
	assert.Equal(t, Ref{Type: "blog.post", ID: "42"}, got)

	_, ok = ActionObjectOf(n)
	assert.False(t, ok)
}

func TestNewestBreaksTiesByID(t *testing.T) {
	client := dbtest.Open(t)
	ctx := context.Background()
	recipient := uuid.New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	save := func(r uuid.UUID, ts time.Time) int64 {
		t.Helper()
		n, err := Payload{Actor: Ref{Type: "auth.user", ID: "7"}, Verb: "commented on", Timestamp: ts}.
			builder(client.Notification, r).
			Save(ctx)
		require.NoError(t, err)
		return n.ID
	}
	older := save(recipient, base)
	newer := save(recipient, base.Add(time.Hour))
	tie := save(recipient, base.Add(time.Hour))
	save(uuid.New(), base.Add(2*time.Hour))

	ids, err := client.Notification.Query().
		Where(entnotif.RecipientID(recipient)).
		Order(newest()...).
		IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{tie, newer, older}, ids)
}

func TestWithTxRollsBack(t *testing.T) {
	client := dbtest.Open(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := withTx(ctx, client, func(tx *repo.Tx) error {
		if _, err := (Payload{Actor: Ref{Type: "a", ID: "1"}, Verb: "v"}).
			builder(tx.Notification, uuid.New()).
			Save(ctx); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := client.Notification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestWithTxCommits(t *testing.T) {
	client := dbtest.Open(t)
	ctx := context.Background()

	err := withTx(ctx, client, func(tx *repo.Tx) error {
		_, err := (Payload{Actor: Ref{Type: "a", ID: "1"}, Verb: "v"}).
			builder(tx.Notification, uuid.New()).
			Save(ctx)
		return err
	})
	require.NoError(t, err)

	count, err := client.Notification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
