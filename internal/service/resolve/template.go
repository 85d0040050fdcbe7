package resolve

import (
	"context"
	"strings"

	"github.com/Alijeyrad/notifications/config"
	"github.com/Alijeyrad/notifications/internal/repo"
	"github.com/Alijeyrad/notifications/pkg/util/slug"
)

// TemplateResolver builds objects from configured text templates instead of
// calling back into the host application. Templates may reference {type}
// and {id}; the notification template may also use {slug}, the encoded id
// of the notification being rendered.
type TemplateResolver struct {
	typ             string
	label           string
	url             string
	notificationURL string
	codec           slug.Codec
}

func NewTemplateResolver(cfg config.ObjectTypeConfig, codec slug.Codec) *TemplateResolver {
	label := cfg.Label
	if label == "" {
		label = "{type}:{id}"
	}
	return &TemplateResolver{
		typ:             cfg.Name,
		label:           label,
		url:             cfg.URL,
		notificationURL: cfg.NotificationURL,
		codec:           codec,
	}
}

func (t *TemplateResolver) Resolve(_ context.Context, id string) (Object, error) {
	if id == "" {
		return nil, ErrUnknownObject
	}
	return &templateObject{tpl: t, id: id}, nil
}

type templateObject struct {
	tpl *TemplateResolver
	id  string
}

func (o *templateObject) expand(tpl, notifSlug string) string {
	return strings.NewReplacer(
		"{type}", o.tpl.typ,
		"{id}", o.id,
		"{slug}", notifSlug,
	).Replace(tpl)
}

func (o *templateObject) Label() string {
	return o.expand(o.tpl.label, "")
}

func (o *templateObject) AbsoluteURL(context.Context) (string, bool) {
	if o.tpl.url == "" {
		return "", false
	}
	return o.expand(o.tpl.url, ""), true
}

func (o *templateObject) NotificationURL(_ context.Context, n *repo.Notification, _ Request) (string, bool) {
	if o.tpl.notificationURL == "" || n == nil {
		return "", false
	}
	return o.expand(o.tpl.notificationURL, o.tpl.codec.Encode(n.ID)), true
}

// RegisterTemplates registers a TemplateResolver for every configured
// object type, memoized through cache when it is non-nil.
func RegisterTemplates(r *Registry, types []config.ObjectTypeConfig, codec slug.Codec, cache *Cache) {
	for _, ot := range types {
		var res Resolver = NewTemplateResolver(ot, codec)
		if cache != nil {
			res = cache.Wrap(ot.Name, res)
		}
		r.Register(ot.Name, res)
	}
}
