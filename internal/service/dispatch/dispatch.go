// Package dispatch turns producer messages, from NATS or the CLI, into
// stored notifications and optional emails.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Alijeyrad/notifications/internal/repo"
	entnotif "github.com/Alijeyrad/notifications/internal/repo/notification"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/internal/service/resolve"
	"github.com/Alijeyrad/notifications/pkg/email"
	"github.com/Alijeyrad/notifications/pkg/observability"
)

var ErrBadRef = errors.New("reference must look like type:id")

type Recipient struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email,omitempty"`
}

// Message is the body of a notify request.
type Message struct {
	Recipients   []Recipient       `json:"recipients"`
	Actor        notification.Ref  `json:"actor"`
	Verb         string            `json:"verb"`
	Target       *notification.Ref `json:"target,omitempty"`
	ActionObject *notification.Ref `json:"action_object,omitempty"`
	Level        string            `json:"level,omitempty"`
	Description  *string           `json:"description,omitempty"`
	Public       *bool             `json:"public,omitempty"`
	Data         map[string]any    `json:"data,omitempty"`
	// Email asks for a mail to every recipient that has an address.
	Email bool `json:"email,omitempty"`
}

type Config struct {
	AppName string
	// InboxURL is linked from mails about objects that have no URL of their own.
	InboxURL string
}

type Dispatcher struct {
	svc       notification.Service
	projector *resolve.Projector
	mailer    email.Sender
	metrics   *observability.NotificationMetrics
	cfg       Config
}

// New returns a Dispatcher. mailer may be nil, in which case Email requests
// only store the notifications.
func New(
	svc notification.Service,
	projector *resolve.Projector,
	mailer email.Sender,
	metrics *observability.NotificationMetrics,
	cfg Config,
) *Dispatcher {
	return &Dispatcher{svc: svc, projector: projector, mailer: mailer, metrics: metrics, cfg: cfg}
}

// Dispatch stores one notification per recipient and returns how many were
// created. Mail failures are logged and leave the notification unsent.
func (d *Dispatcher) Dispatch(ctx context.Context, m Message, source string) (int, error) {
	ids := make([]uuid.UUID, len(m.Recipients))
	addrs := make(map[uuid.UUID]string, len(m.Recipients))
	for i, r := range m.Recipients {
		ids[i] = r.ID
		if r.Email != "" {
			addrs[r.ID] = r.Email
		}
	}

	created, err := d.svc.Notify(ctx, ids, notification.Payload{
		Actor:        m.Actor,
		Verb:         m.Verb,
		Target:       m.Target,
		ActionObject: m.ActionObject,
		Level:        entnotif.Level(m.Level),
		Description:  m.Description,
		Public:       m.Public,
		Data:         m.Data,
	})
	if err != nil {
		return 0, err
	}
	d.metrics.Created(ctx, source, len(created))

	if m.Email && d.mailer != nil {
		for _, n := range created {
			if to, ok := addrs[n.RecipientID]; ok {
				d.mail(ctx, n, to)
			}
		}
	}
	return len(created), nil
}

func (d *Dispatcher) mail(ctx context.Context, n *repo.Notification, to string) {
	item := d.projector.Project(ctx, n, resolve.Request{User: n.RecipientID})

	link := d.cfg.InboxURL
	switch {
	case item.TargetURL != "":
		link = item.TargetURL
	case item.ActionObjectURL != "":
		link = item.ActionObjectURL
	}
	var desc string
	if n.Description != nil {
		desc = *n.Description
	}

	err := d.mailer.Send(ctx, email.BuildNotificationEmail(email.NotificationEmailData{
		To:          to,
		AppName:     d.cfg.AppName,
		Actor:       item.Actor,
		Verb:        item.Verb,
		Target:      item.Target,
		Description: desc,
		URL:         link,
	}))
	d.metrics.Email(ctx, err == nil)
	if err != nil {
		slog.WarnContext(ctx, "notification email failed", "slug", item.Slug, "error", err)
		return
	}

	if err := d.svc.MarkAsSent(ctx, n.RecipientID, n.ID); err != nil {
		slog.WarnContext(ctx, "mark notification sent", "slug", item.Slug, "error", err)
	}
}

// ParseRef parses "type:id". The id may itself contain colons.
func ParseRef(s string) (notification.Ref, error) {
	typ, id, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(typ) == "" || strings.TrimSpace(id) == "" {
		return notification.Ref{}, fmt.Errorf("%w: %q", ErrBadRef, s)
	}
	return notification.Ref{Type: typ, ID: id}, nil
}
