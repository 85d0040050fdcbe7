package schema_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/notifications/internal/repo"
	"github.com/Alijeyrad/notifications/internal/repo/notification"
	"github.com/Alijeyrad/notifications/pkg/database/dbtest"
)

func newBuilder(client *repo.Client, recipient uuid.UUID) *repo.NotificationCreate {
	return client.Notification.Create().
		SetRecipientID(recipient).
		SetActorContentType("auth.user").
		SetActorObjectID("7").
		SetVerb("commented on")
}

func TestCreateAppliesDefaults(t *testing.T) {
	client := dbtest.Open(t)
	ctx := context.Background()
	recipient := uuid.New()

	created, err := newBuilder(client, recipient).Save(ctx)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := client.Notification.Get(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, recipient, got.RecipientID)
	assert.Equal(t, notification.LevelInfo, got.Level)
	assert.True(t, got.Unread)
	assert.True(t, got.Public)
	assert.False(t, got.Deleted)
	assert.False(t, got.Emailed)
	assert.Equal(t, "auth.user", got.ActorContentType)
	assert.Equal(t, "7", got.ActorObjectID)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.TargetContentType)
	assert.Nil(t, got.TargetObjectID)
	assert.Nil(t, got.ActionObjectContentType)
	assert.Nil(t, got.ActionObjectObjectID)
	assert.Nil(t, got.Data)
	assert.False(t, got.Timestamp.IsZero())
}

func TestCreateStoresOptionalFields(t *testing.T) {
	client := dbtest.Open(t)
	ctx := context.Background()
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	created, err := newBuilder(client, uuid.New()).
		SetLevel(notification.LevelWarning).
		SetDescription("a longer text").
		SetTargetContentType("blog.post").
		SetTargetObjectID("42").
		SetActionObjectContentType("blog.comment").
		SetActionObjectObjectID("9").
		SetTimestamp(ts).
		SetPublic(false).
		SetData(map[string]any{"url": "/posts/42", "count": float64(3)}).
		Save(ctx)
	require.NoError(t, err)

	got, err := client.Notification.Get(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, notification.LevelWarning, got.Level)
	require.NotNil(t, got.Description)
	assert.Equal(t, "a longer text", *got.Description)
	assert.True(t, ts.Equal(got.Timestamp))
	assert.False(t, got.Public)
	assert.Equal(t, map[string]any{"url": "/posts/42", "count": float64(3)}, got.Data)

	require.NotNil(t, got.TargetContentType)
	require.NotNil(t, got.TargetObjectID)
	assert.Equal(t, "blog.post", *got.TargetContentType)
	assert.Equal(t, "42", *got.TargetObjectID)

	require.NotNil(t, got.ActionObjectContentType)
	require.NotNil(t, got.ActionObjectObjectID)
	assert.Equal(t, "blog.comment", *got.ActionObjectContentType)
	assert.Equal(t, "9", *got.ActionObjectObjectID)
}

func TestCreateValidation(t *testing.T) {
	client := dbtest.Open(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		builder func() *repo.NotificationCreate
		field   string
	}{
		{
			name: "missing recipient",
			builder: func() *repo.NotificationCreate {
				return client.Notification.Create().
					SetActorContentType("a").
					SetActorObjectID("1").
					SetVerb("v")
			},
			field: "recipient_id",
		},
		{
			name: "missing actor type",
			builder: func() *repo.NotificationCreate {
				return client.Notification.Create().
					SetRecipientID(uuid.New()).
					SetActorObjectID("1").
					SetVerb("v")
			},
			field: "actor_content_type",
		},
		{
			name: "empty actor type",
			builder: func() *repo.NotificationCreate {
				return newBuilder(client, uuid.New()).SetActorContentType("")
			},
			field: "actor_content_type",
		},
		{
			name: "empty actor id",
			builder: func() *repo.NotificationCreate {
				return newBuilder(client, uuid.New()).SetActorObjectID("")
			},
			field: "actor_object_id",
		},
		{
			name: "missing verb",
			builder: func() *repo.NotificationCreate {
				return client.Notification.Create().
					SetRecipientID(uuid.New()).
					SetActorContentType("a").
					SetActorObjectID("1")
			},
			field: "verb",
		},
		{
			name: "verb too long",
			builder: func() *repo.NotificationCreate {
				return newBuilder(client, uuid.New()).SetVerb(strings.Repeat("x", 256))
			},
			field: "verb",
		},
		{
			name: "target type too long",
			builder: func() *repo.NotificationCreate {
				return newBuilder(client, uuid.New()).SetTargetContentType(strings.Repeat("x", 256))
			},
			field: "target_content_type",
		},
		{
			name: "unknown level",
			builder: func() *repo.NotificationCreate {
				return newBuilder(client, uuid.New()).SetLevel(notification.Level("critical"))
			},
			field: "level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder().Save(ctx)
			require.Error(t, err)
			assert.True(t, repo.IsValidationError(err))

			var verr *repo.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Name)
		})
	}

	count, err := client.Notification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateBulk(t *testing.T) {
	client := dbtest.Open(t)
	ctx := context.Background()

	builders := make([]*repo.NotificationCreate, 3)
	for i := range builders {
		builders[i] = newBuilder(client, uuid.New())
	}
	nodes, err := client.Notification.CreateBulk(builders...).Save(ctx)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	seen := map[int64]bool{}
	for _, n := range nodes {
		assert.NotZero(t, n.ID)
		seen[n.ID] = true
	}
	assert.Len(t, seen, 3)

	count, err := client.Notification.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestUpdateAffectsOnlyMatchingRows(t *testing.T) {
	client := dbtest.Open(t)
	ctx := context.Background()
	recipient := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := newBuilder(client, recipient).Save(ctx)
		require.NoError(t, err)
	}
	other, err := newBuilder(client, uuid.New()).Save(ctx)
	require.NoError(t, err)

	n, err := client.Notification.Update().
		Where(notification.RecipientID(recipient), notification.Unread(true)).
		SetUnread(false).
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = client.Notification.Update().
		Where(notification.RecipientID(recipient), notification.Unread(true)).
		SetUnread(false).
		Save(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := client.Notification.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.True(t, got.Unread)
}

func TestDelete(t *testing.T) {
	client := dbtest.Open(t)
	ctx := context.Background()

	kept, err := newBuilder(client, uuid.New()).Save(ctx)
	require.NoError(t, err)
	gone, err := newBuilder(client, uuid.New()).Save(ctx)
	require.NoError(t, err)

	n, err := client.Notification.Delete().Where(notification.ID(gone.ID)).Exec(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = client.Notification.Get(ctx, gone.ID)
	assert.True(t, repo.IsNotFound(err))

	exists, err := client.Notification.Query().Where(notification.ID(kept.ID)).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}
