package resolve

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Alijeyrad/notifications/internal/repo"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/pkg/util/slug"
)

// Item is the client-facing form of a notification. The numeric id is never
// exposed; clients address notifications by Slug.
type Item struct {
	Slug                    string         `json:"slug"`
	Level                   string         `json:"level"`
	Recipient               uuid.UUID      `json:"recipient"`
	Unread                  bool           `json:"unread"`
	ActorContentType        string         `json:"actor_content_type"`
	ActorObjectID           string         `json:"actor_object_id"`
	Verb                    string         `json:"verb"`
	Description             *string        `json:"description,omitempty"`
	TargetContentType       *string        `json:"target_content_type,omitempty"`
	TargetObjectID          *string        `json:"target_object_id,omitempty"`
	ActionObjectContentType *string        `json:"action_object_content_type,omitempty"`
	ActionObjectObjectID    *string        `json:"action_object_object_id,omitempty"`
	Timestamp               time.Time      `json:"timestamp"`
	Public                  bool           `json:"public"`
	Deleted                 bool           `json:"deleted"`
	Emailed                 bool           `json:"emailed"`
	Actor                   string         `json:"actor"`
	ActorURL                string         `json:"actor_url,omitempty"`
	Target                  string         `json:"target,omitempty"`
	TargetURL               string         `json:"target_url,omitempty"`
	ActionObject            string         `json:"action_object,omitempty"`
	ActionObjectURL         string         `json:"action_object_url,omitempty"`
	Data                    map[string]any `json:"data,omitempty"`
}

// Projector renders notifications for clients.
type Projector struct {
	registry *Registry
	codec    slug.Codec
}

func NewProjector(registry *Registry, codec slug.Codec) *Projector {
	return &Projector{registry: registry, codec: codec}
}

func (p *Projector) Codec() slug.Codec { return p.codec }

func (p *Projector) Project(ctx context.Context, n *repo.Notification, req Request) Item {
	item := Item{
		Slug:                    p.codec.Encode(n.ID),
		Level:                   n.Level.String(),
		Recipient:               n.RecipientID,
		Unread:                  n.Unread,
		ActorContentType:        n.ActorContentType,
		ActorObjectID:           n.ActorObjectID,
		Verb:                    n.Verb,
		Description:             n.Description,
		TargetContentType:       n.TargetContentType,
		TargetObjectID:          n.TargetObjectID,
		ActionObjectContentType: n.ActionObjectContentType,
		ActionObjectObjectID:    n.ActionObjectObjectID,
		Timestamp:               n.Timestamp,
		Public:                  n.Public,
		Deleted:                 n.Deleted,
		Emailed:                 n.Emailed,
		Data:                    n.Data,
	}

	actor := p.registry.Describe(ctx, notification.ActorOf(n), n, req)
	item.Actor, item.ActorURL = actor.Label, actor.URL

	if ref, ok := notification.TargetOf(n); ok {
		d := p.registry.Describe(ctx, ref, n, req)
		item.Target, item.TargetURL = d.Label, d.URL
	}
	if ref, ok := notification.ActionObjectOf(n); ok {
		d := p.registry.Describe(ctx, ref, n, req)
		item.ActionObject, item.ActionObjectURL = d.Label, d.URL
	}
	return item
}

func (p *Projector) ProjectAll(ctx context.Context, ns []*repo.Notification, req Request) []Item {
	items := make([]Item, 0, len(ns))
	for _, n := range ns {
		items = append(items, p.Project(ctx, n, req))
	}
	return items
}
