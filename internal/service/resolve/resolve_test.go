package resolve_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/notifications/config"
	"github.com/Alijeyrad/notifications/internal/repo"
	entnotif "github.com/Alijeyrad/notifications/internal/repo/notification"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/internal/service/resolve"
	"github.com/Alijeyrad/notifications/pkg/util/slug"
)

type user struct{ name string }

func (u user) Label() string { return u.name }

type post struct{ id string }

func (p post) Label() string { return "Post " + p.id }
func (p post) AbsoluteURL(context.Context) (string, bool) {
	return "/posts/" + p.id, true
}

type trackedPost struct{ post }

func (p trackedPost) NotificationURL(_ context.Context, n *repo.Notification, req resolve.Request) (string, bool) {
	return "https://" + req.Host + "/posts/" + p.id + "?via=" + n.Verb, true
}

func sample() *repo.Notification {
	target, targetID := "blog.post", "42"
	return &repo.Notification{
		ID:                1,
		RecipientID:       uuid.New(),
		Level:             entnotif.LevelInfo,
		Unread:            true,
		ActorContentType:  "auth.user",
		ActorObjectID:     "7",
		Verb:              "liked",
		TargetContentType: &target,
		TargetObjectID:    &targetID,
		Timestamp:         time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Public:            true,
	}
}

func TestDescribePrefersNotificationLink(t *testing.T) {
	ctx := context.Background()
	n := sample()
	req := resolve.Request{Scheme: "https", Host: "example.com"}

	tests := []struct {
		name     string
		resolver resolve.Resolver
		want     resolve.Described
	}{
		{
			name: "label only",
			resolver: resolve.ResolverFunc(func(context.Context, string) (resolve.Object, error) {
				return user{name: "alice"}, nil
			}),
			want: resolve.Described{Label: "alice"},
		},
		{
			name: "canonical url",
			resolver: resolve.ResolverFunc(func(_ context.Context, id string) (resolve.Object, error) {
				return post{id: id}, nil
			}),
			want: resolve.Described{Label: "Post 42", URL: "/posts/42"},
		},
		{
			name: "notification link wins",
			resolver: resolve.ResolverFunc(func(_ context.Context, id string) (resolve.Object, error) {
				return trackedPost{post{id: id}}, nil
			}),
			want: resolve.Described{Label: "Post 42", URL: "https://example.com/posts/42?via=liked"},
		},
		{
			name: "resolver failure falls back",
			resolver: resolve.ResolverFunc(func(context.Context, string) (resolve.Object, error) {
				return nil, errors.New("host unavailable")
			}),
			want: resolve.Described{Label: "blog.post:42"},
		},
		{
			name: "unknown object falls back",
			resolver: resolve.ResolverFunc(func(context.Context, string) (resolve.Object, error) {
				return nil, resolve.ErrUnknownObject
			}),
			want: resolve.Described{Label: "blog.post:42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resolve.NewRegistry()
			r.Register("blog.post", tt.resolver)
			got := r.Describe(ctx, notification.Ref{Type: "blog.post", ID: "42"}, n, req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribeUnregisteredType(t *testing.T) {
	r := resolve.NewRegistry()
	got := r.Describe(context.Background(), notification.Ref{Type: "shop.order", ID: "5"}, sample(), resolve.Request{})
	assert.Equal(t, resolve.Described{Label: "shop.order:5"}, got)
}

func TestTemplateResolver(t *testing.T) {
	ctx := context.Background()
	codec := slug.New(slug.DefaultOffset)
	n := sample()

	res := resolve.NewTemplateResolver(config.ObjectTypeConfig{
		Name:            "blog.post",
		Label:           "Post #{id}",
		URL:             "/posts/{id}/",
		NotificationURL: "/posts/{id}/?n={slug}",
	}, codec)

	obj, err := res.Resolve(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "Post #42", obj.Label())

	u, ok := obj.(resolve.AbsoluteURLer).AbsoluteURL(ctx)
	require.True(t, ok)
	assert.Equal(t, "/posts/42/", u)

	u, ok = obj.(resolve.NotificationLinker).NotificationURL(ctx, n, resolve.Request{})
	require.True(t, ok)
	assert.Equal(t, "/posts/42/?n="+codec.Encode(n.ID), u)

	bare := resolve.NewTemplateResolver(config.ObjectTypeConfig{Name: "auth.user"}, codec)
	obj, err = bare.Resolve(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "auth.user:7", obj.Label())
	_, ok = obj.(resolve.AbsoluteURLer).AbsoluteURL(ctx)
	assert.False(t, ok)

	_, err = bare.Resolve(ctx, "")
	assert.ErrorIs(t, err, resolve.ErrUnknownObject)
}

func TestCacheWrap(t *testing.T) {
	ctx := context.Background()
	calls := 0
	inner := resolve.ResolverFunc(func(_ context.Context, id string) (resolve.Object, error) {
		calls++
		if id == "missing" {
			return nil, resolve.ErrUnknownObject
		}
		return user{name: "user " + id}, nil
	})

	assert.Nil(t, resolve.NewCache(0))

	c := resolve.NewCache(time.Minute)
	res := c.Wrap("auth.user", inner)

	for i := 0; i < 3; i++ {
		obj, err := res.Resolve(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "user 1", obj.Label())
	}
	assert.Equal(t, 1, calls)

	for i := 0; i < 2; i++ {
		_, err := res.Resolve(ctx, "missing")
		assert.ErrorIs(t, err, resolve.ErrUnknownObject)
	}
	assert.Equal(t, 3, calls)

	_, err := res.Resolve(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestProject(t *testing.T) {
	ctx := context.Background()
	codec := slug.New(slug.DefaultOffset)
	r := resolve.NewRegistry()
	resolve.RegisterTemplates(r, []config.ObjectTypeConfig{
		{Name: "auth.user", Label: "User {id}", URL: "/users/{id}/"},
		{Name: "blog.post", Label: "Post {id}"},
	}, codec, resolve.NewCache(time.Minute))

	n := sample()
	n.Data = map[string]any{"k": "v"}
	item := resolve.NewProjector(r, codec).Project(ctx, n, resolve.Request{})

	assert.Equal(t, codec.Encode(n.ID), item.Slug)
	assert.Equal(t, "info", item.Level)
	assert.Equal(t, n.RecipientID, item.Recipient)
	assert.True(t, item.Unread)
	assert.Equal(t, "User 7", item.Actor)
	assert.Equal(t, "/users/7/", item.ActorURL)
	assert.Equal(t, "Post 42", item.Target)
	assert.Empty(t, item.TargetURL)
	assert.Empty(t, item.ActionObject)
	assert.Equal(t, map[string]any{"k": "v"}, item.Data)
}
