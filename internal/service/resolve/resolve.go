// Package resolve turns the type/id references stored on a notification into
// labels and links owned by the host application.
package resolve

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Alijeyrad/notifications/internal/repo"
	"github.com/Alijeyrad/notifications/internal/service/notification"
)

var ErrUnknownObject = errors.New("object not found")

// Object is a resolved host object.
type Object interface {
	Label() string
}

// AbsoluteURLer is implemented by objects that have a canonical URL.
type AbsoluteURLer interface {
	AbsoluteURL(ctx context.Context) (string, bool)
}

// NotificationLinker is implemented by objects that build a link specific to
// the notification being rendered, for example one that marks it read on
// click. It takes precedence over AbsoluteURLer.
type NotificationLinker interface {
	NotificationURL(ctx context.Context, n *repo.Notification, req Request) (string, bool)
}

// Request carries what a linker may need from the incoming HTTP request.
type Request struct {
	Scheme string
	Host   string
	User   uuid.UUID
}

// Resolver loads objects of one type by id.
type Resolver interface {
	Resolve(ctx context.Context, id string) (Object, error)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(ctx context.Context, id string) (Object, error)

func (f ResolverFunc) Resolve(ctx context.Context, id string) (Object, error) { return f(ctx, id) }

// Described is the presentable form of a reference.
type Described struct {
	Label string
	URL   string // empty when the object has no link
}

// Registry maps reference types to resolvers.
type Registry struct {
	mu        sync.RWMutex
	resolvers map[string]Resolver
}

func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[string]Resolver)}
}

// Register binds typ to r, replacing any previous resolver for typ.
func (r *Registry) Register(typ string, res Resolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolvers[typ] = res
}

func (r *Registry) lookup(typ string) (Resolver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resolvers[typ]
	return res, ok
}

// Describe resolves ref for display within n. References whose type has no
// resolver, or whose object cannot be loaded, are labelled "<type>:<id>"
// and carry no URL.
func (r *Registry) Describe(ctx context.Context, ref notification.Ref, n *repo.Notification, req Request) Described {
	fallback := Described{Label: ref.String()}

	res, ok := r.lookup(ref.Type)
	if !ok {
		return fallback
	}
	obj, err := res.Resolve(ctx, ref.ID)
	if err != nil {
		if !errors.Is(err, ErrUnknownObject) {
			slog.WarnContext(ctx, "resolve object", "type", ref.Type, "id", ref.ID, "error", err)
		}
		return fallback
	}

	d := Described{Label: obj.Label()}
	if l, ok := obj.(NotificationLinker); ok {
		if u, ok := l.NotificationURL(ctx, n, req); ok {
			d.URL = u
			return d
		}
	}
	if a, ok := obj.(AbsoluteURLer); ok {
		if u, ok := a.AbsoluteURL(ctx); ok {
			d.URL = u
		}
	}
	return d
}
