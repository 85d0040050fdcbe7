package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Alijeyrad/notifications/internal/repo"
	entnotif "github.com/Alijeyrad/notifications/internal/repo/notification"
	"github.com/Alijeyrad/notifications/internal/repo/predicate"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Payload is everything a producer says about an event, minus who receives it.
type Payload struct {
	Actor        Ref
	Verb         string
	Target       *Ref
	ActionObject *Ref
	Level        entnotif.Level
	Description  *string
	Public       *bool
	Timestamp    time.Time
	Data         map[string]any
}

type CreateRequest struct {
	Recipient uuid.UUID
	Payload
}

// Page is one page of a paginated view. Number is 1-based.
type Page struct {
	Items  []*repo.Notification
	Number int
	Size   int
	Total  int
	Pages  int
}

func (p *Page) HasPrevious() bool { return p.Number > 1 }
func (p *Page) HasNext() bool     { return p.Number < p.Pages }

// LastPage asks Page for the final page of a view.
const LastPage = -1

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Policy() DeletePolicy

	Create(ctx context.Context, req CreateRequest) (*repo.Notification, error)
	Notify(ctx context.Context, recipients []uuid.UUID, p Payload) ([]*repo.Notification, error)

	Get(ctx context.Context, recipient uuid.UUID, id int64) (*repo.Notification, error)
	List(ctx context.Context, recipient uuid.UUID, view View, limit int) ([]*repo.Notification, error)
	Page(ctx context.Context, recipient uuid.UUID, view View, number, size int) (*Page, error)
	Count(ctx context.Context, recipient uuid.UUID, view View) (int, error)

	MarkAsRead(ctx context.Context, recipient uuid.UUID, id int64) error
	MarkAsUnread(ctx context.Context, recipient uuid.UUID, id int64) error
	MarkAsSent(ctx context.Context, recipient uuid.UUID, id int64) error
	MarkAsUnsent(ctx context.Context, recipient uuid.UUID, id int64) error
	Delete(ctx context.Context, recipient uuid.UUID, id int64) error

	MarkAllAsRead(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error)
	MarkAllAsUnread(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error)
	MarkAllAsSent(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error)
	MarkAllAsUnsent(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error)
	MarkAllAsDeleted(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error)
	MarkAllAsActive(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db     *repo.Client
	policy DeletePolicy
}

func New(db *repo.Client, policy DeletePolicy) Service {
	return &notificationService{db: db, policy: policy}
}

func (s *notificationService) Policy() DeletePolicy { return s.policy }

func (s *notificationService) Create(ctx context.Context, req CreateRequest) (*repo.Notification, error) {
	if req.Recipient == uuid.Nil {
		return nil, fmt.Errorf("%w: recipient is required", ErrInvalidRequest)
	}
	if err := req.Payload.validate(); err != nil {
		return nil, err
	}

	n, err := req.Payload.builder(s.db.Notification, req.Recipient).Save(ctx)
	if err != nil {
		return nil, createError(err)
	}
	return n, nil
}

// Notify creates one notification per recipient. Either all of them are
// stored or none is.
func (s *notificationService) Notify(ctx context.Context, recipients []uuid.UUID, p Payload) ([]*repo.Notification, error) {
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: at least one recipient is required", ErrInvalidRequest)
	}
	for _, r := range recipients {
		if r == uuid.Nil {
			return nil, fmt.Errorf("%w: recipient is required", ErrInvalidRequest)
		}
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now().UTC()
	}

	var created []*repo.Notification
	err := withTx(ctx, s.db, func(tx *repo.Tx) error {
		builders := make([]*repo.NotificationCreate, len(recipients))
		for i, r := range recipients {
			builders[i] = p.builder(tx.Notification, r)
		}
		nodes, err := tx.Notification.CreateBulk(builders...).Save(ctx)
		if err != nil {
			return err
		}
		created = nodes
		return nil
	})
	if err != nil {
		return nil, createError(err)
	}
	return created, nil
}

func (s *notificationService) Get(ctx context.Context, recipient uuid.UUID, id int64) (*repo.Notification, error) {
	n, err := s.db.Notification.Query().
		Where(entnotif.ID(id), entnotif.RecipientID(recipient)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context, recipient uuid.UUID, view View, limit int) ([]*repo.Notification, error) {
	q, err := s.query(recipient, view)
	if err != nil {
		return nil, err
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	notifs, err := q.Order(newest()...).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifs, nil
}

// Page returns page number of view. An empty first page is valid; any
// other page outside the view is ErrInvalidPage. LastPage selects the
// final page.
func (s *notificationService) Page(ctx context.Context, recipient uuid.UUID, view View, number, size int) (*Page, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: page size must be positive", ErrInvalidPage)
	}
	q, err := s.query(recipient, view)
	if err != nil {
		return nil, err
	}
	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if number == LastPage {
		number = pages
	}
	if number < 1 || number > pages {
		return nil, ErrInvalidPage
	}

	items, err := q.
		Order(newest()...).
		Offset((number - 1) * size).
		Limit(size).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return &Page{Items: items, Number: number, Size: size, Total: total, Pages: pages}, nil
}

func (s *notificationService) Count(ctx context.Context, recipient uuid.UUID, view View) (int, error) {
	q, err := s.query(recipient, view)
	if err != nil {
		return 0, err
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count notifications: %w", err)
	}
	return n, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, recipient uuid.UUID, id int64) error {
	return s.setOne(ctx, recipient, id, entnotif.Unread(true), func(u *repo.NotificationUpdate) { u.SetUnread(false) })
}

func (s *notificationService) MarkAsUnread(ctx context.Context, recipient uuid.UUID, id int64) error {
	return s.setOne(ctx, recipient, id, entnotif.Unread(false), func(u *repo.NotificationUpdate) { u.SetUnread(true) })
}

func (s *notificationService) MarkAsSent(ctx context.Context, recipient uuid.UUID, id int64) error {
	return s.setOne(ctx, recipient, id, entnotif.Emailed(false), func(u *repo.NotificationUpdate) { u.SetEmailed(true) })
}

func (s *notificationService) MarkAsUnsent(ctx context.Context, recipient uuid.UUID, id int64) error {
	return s.setOne(ctx, recipient, id, entnotif.Emailed(true), func(u *repo.NotificationUpdate) { u.SetEmailed(false) })
}

// Delete flags the row as deleted under DeleteSoft and removes it under
// DeleteHard.
func (s *notificationService) Delete(ctx context.Context, recipient uuid.UUID, id int64) error {
	if s.policy == DeleteSoft {
		return s.setOne(ctx, recipient, id, entnotif.Deleted(false), func(u *repo.NotificationUpdate) { u.SetDeleted(true) })
	}

	n, err := s.db.Notification.Delete().
		Where(entnotif.ID(id), entnotif.RecipientID(recipient)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error) {
	return s.setAll(ctx, recipient, entnotif.Unread(true), filters, func(u *repo.NotificationUpdate) { u.SetUnread(false) })
}

func (s *notificationService) MarkAllAsUnread(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error) {
	return s.setAll(ctx, recipient, entnotif.Unread(false), filters, func(u *repo.NotificationUpdate) { u.SetUnread(true) })
}

func (s *notificationService) MarkAllAsSent(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error) {
	return s.setAll(ctx, recipient, entnotif.Emailed(false), filters, func(u *repo.NotificationUpdate) { u.SetEmailed(true) })
}

func (s *notificationService) MarkAllAsUnsent(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error) {
	return s.setAll(ctx, recipient, entnotif.Emailed(true), filters, func(u *repo.NotificationUpdate) { u.SetEmailed(false) })
}

func (s *notificationService) MarkAllAsDeleted(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error) {
	if s.policy != DeleteSoft {
		return 0, ErrSoftDeleteDisabled
	}
	return s.setAll(ctx, recipient, entnotif.Deleted(false), filters, func(u *repo.NotificationUpdate) { u.SetDeleted(true) })
}

func (s *notificationService) MarkAllAsActive(ctx context.Context, recipient uuid.UUID, filters ...Filter) (int, error) {
	if s.policy != DeleteSoft {
		return 0, ErrSoftDeleteDisabled
	}
	return s.setAll(ctx, recipient, entnotif.Deleted(true), filters, func(u *repo.NotificationUpdate) { u.SetDeleted(false) })
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *notificationService) query(recipient uuid.UUID, view View) (*repo.NotificationQuery, error) {
	ps, err := s.policy.predicates(view)
	if err != nil {
		return nil, err
	}
	return s.db.Notification.Query().
		Where(entnotif.RecipientID(recipient)).
		Where(ps...), nil
}

// setOne updates a single row owned by recipient, but only when it is in
// state from. A row already in the target state is left alone and counts
// as success; a missing or foreign row is ErrNotFound.
func (s *notificationService) setOne(ctx context.Context, recipient uuid.UUID, id int64, from predicate.Notification, apply func(*repo.NotificationUpdate)) error {
	u := s.db.Notification.Update().
		Where(entnotif.ID(id), entnotif.RecipientID(recipient), from)
	apply(u)
	n, err := u.Save(ctx)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	if n > 0 {
		return nil
	}

	exists, err := s.db.Notification.Query().
		Where(entnotif.ID(id), entnotif.RecipientID(recipient)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("get notification: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// setAll runs one UPDATE over every row of recipient in state from that
// matches filters and returns the number of rows changed.
func (s *notificationService) setAll(ctx context.Context, recipient uuid.UUID, from predicate.Notification, filters []Filter, apply func(*repo.NotificationUpdate)) (int, error) {
	u := s.db.Notification.Update().
		Where(entnotif.RecipientID(recipient), from)
	for _, f := range filters {
		u.Where(f.predicates()...)
	}
	apply(u)
	n, err := u.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update notifications: %w", err)
	}
	return n, nil
}

func (p Payload) validate() error {
	var problems []string
	if strings.TrimSpace(p.Actor.Type) == "" || strings.TrimSpace(p.Actor.ID) == "" {
		problems = append(problems, "actor type and id are required")
	}
	if strings.TrimSpace(p.Verb) == "" {
		problems = append(problems, "verb is required")
	}
	if p.Level != "" {
		if err := entnotif.LevelValidator(p.Level); err != nil {
			problems = append(problems, fmt.Sprintf("level %q is not valid", p.Level))
		}
	}
	if p.Target != nil && (p.Target.Type == "" || p.Target.ID == "") {
		problems = append(problems, "target needs both type and id")
	}
	if p.ActionObject != nil && (p.ActionObject.Type == "" || p.ActionObject.ID == "") {
		problems = append(problems, "action object needs both type and id")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(problems, "; "))
	}
	return nil
}

func (p Payload) builder(c *repo.NotificationClient, recipient uuid.UUID) *repo.NotificationCreate {
	b := c.Create().
		SetRecipientID(recipient).
		SetActorContentType(p.Actor.Type).
		SetActorObjectID(p.Actor.ID).
		SetVerb(p.Verb).
		SetNillableDescription(p.Description).
		SetNillablePublic(p.Public)
	if t := p.Target; t != nil {
		b.SetTargetContentType(t.Type).SetTargetObjectID(t.ID)
	}
	if a := p.ActionObject; a != nil {
		b.SetActionObjectContentType(a.Type).SetActionObjectObjectID(a.ID)
	}
	if p.Level != "" {
		b.SetLevel(p.Level)
	}
	if !p.Timestamp.IsZero() {
		b.SetTimestamp(p.Timestamp)
	}
	if p.Data != nil {
		b.SetData(p.Data)
	}
	return b
}

func createError(err error) error {
	if repo.IsValidationError(err) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return fmt.Errorf("create notification: %w", err)
}
