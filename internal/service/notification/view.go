package notification

import (
	"time"

	entnotif "github.com/Alijeyrad/notifications/internal/repo/notification"
	"github.com/Alijeyrad/notifications/internal/repo/predicate"
)

// View names a recipient-scoped subset of notifications.
type View string

const (
	ViewAll     View = "all"
	ViewUnread  View = "unread"
	ViewRead    View = "read"
	ViewActive  View = "active"
	ViewDeleted View = "deleted"
	ViewSent    View = "sent"
	ViewUnsent  View = "unsent"
)

// DeletePolicy decides what Delete does to a row. It is resolved once from
// configuration and never varies per request.
type DeletePolicy int

const (
	// DeleteHard removes rows.
	DeleteHard DeletePolicy = iota
	// DeleteSoft flags rows as deleted and hides them from the regular views.
	DeleteSoft
)

// PolicyFor maps the notifications.soft_delete setting to a DeletePolicy.
func PolicyFor(softDelete bool) DeletePolicy {
	if softDelete {
		return DeleteSoft
	}
	return DeleteHard
}

func (p DeletePolicy) String() string {
	if p == DeleteSoft {
		return "soft"
	}
	return "hard"
}

// predicates returns the conditions selecting v under policy p.
func (p DeletePolicy) predicates(v View) ([]predicate.Notification, error) {
	var ps []predicate.Notification
	switch v {
	case ViewAll:
	case ViewUnread:
		ps = append(ps, entnotif.Unread(true))
	case ViewRead:
		ps = append(ps, entnotif.Unread(false))
	case ViewActive:
		return []predicate.Notification{entnotif.Deleted(false)}, nil
	case ViewDeleted:
		if p != DeleteSoft {
			return nil, ErrSoftDeleteDisabled
		}
		return []predicate.Notification{entnotif.Deleted(true)}, nil
	case ViewSent:
		ps = append(ps, entnotif.Emailed(true))
	case ViewUnsent:
		ps = append(ps, entnotif.Emailed(false))
	default:
		return nil, ErrInvalidView
	}
	if p == DeleteSoft {
		ps = append(ps, entnotif.Deleted(false))
	}
	return ps, nil
}

// Filter narrows bulk operations. Zero-valued fields are ignored and
// multiple filters passed to one call are combined with AND.
type Filter struct {
	IDs          []int64
	Level        entnotif.Level
	Verb         string
	Actor        Ref
	Target       Ref
	ActionObject Ref
	Since        time.Time
	Before       time.Time
}

func (f Filter) predicates() []predicate.Notification {
	var ps []predicate.Notification
	if f.IDs != nil {
		ps = append(ps, entnotif.IDIn(f.IDs...))
	}
	if f.Level != "" {
		ps = append(ps, entnotif.LevelEQ(f.Level))
	}
	if f.Verb != "" {
		ps = append(ps, entnotif.Verb(f.Verb))
	}
	if f.Actor.Type != "" {
		ps = append(ps, entnotif.ActorContentType(f.Actor.Type))
	}
	if f.Actor.ID != "" {
		ps = append(ps, entnotif.ActorObjectID(f.Actor.ID))
	}
	if f.Target.Type != "" {
		ps = append(ps, entnotif.TargetContentType(f.Target.Type))
	}
	if f.Target.ID != "" {
		ps = append(ps, entnotif.TargetObjectID(f.Target.ID))
	}
	if f.ActionObject.Type != "" {
		ps = append(ps, entnotif.ActionObjectContentType(f.ActionObject.Type))
	}
	if f.ActionObject.ID != "" {
		ps = append(ps, entnotif.ActionObjectObjectID(f.ActionObject.ID))
	}
	if !f.Since.IsZero() {
		ps = append(ps, entnotif.TimestampGTE(f.Since))
	}
	if !f.Before.IsZero() {
		ps = append(ps, entnotif.TimestampLT(f.Before))
	}
	return ps
}
