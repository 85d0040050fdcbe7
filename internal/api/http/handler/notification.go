package handler

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Alijeyrad/notifications/config"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/internal/service/resolve"
	"github.com/Alijeyrad/notifications/pkg/observability"
	"github.com/Alijeyrad/notifications/pkg/reqctx"
	"github.com/Alijeyrad/notifications/pkg/util/safeurl"
)

// maxFetch bounds the ?max= parameter of the live lists.
const maxFetch = 100

type NotificationHandler struct {
	svc       notification.Service
	projector *resolve.Projector
	metrics   *observability.NotificationMetrics

	basePath     string
	paginateBy   int
	numToFetch   int
	allowedHosts []string
	requireHTTPS bool
}

func NewNotificationHandler(
	svc notification.Service,
	projector *resolve.Projector,
	metrics *observability.NotificationMetrics,
	cfg *config.Config,
) *NotificationHandler {
	return &NotificationHandler{
		svc:          svc,
		projector:    projector,
		metrics:      metrics,
		basePath:     strings.TrimRight(cfg.Server.BasePath, "/"),
		paginateBy:   cfg.Notifications.PaginateBy,
		numToFetch:   cfg.Notifications.NumToFetch,
		allowedHosts: cfg.Server.AllowedHosts,
		requireHTTPS: cfg.Server.RequireHTTPS,
	}
}

// mapNotificationError answers JSON requests.
func mapNotificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, notification.ErrSoftDeleteDisabled):
		return conflict(c, err.Error())
	default:
		slog.ErrorContext(c.Context(), "notification request failed", "path", c.Path(), "error", err)
		return internalError(c)
	}
}

// pageError answers browser requests; the default error handler renders it.
func pageError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound), errors.Is(err, notification.ErrInvalidPage):
		return fiber.ErrNotFound
	case errors.Is(err, notification.ErrSoftDeleteDisabled):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		slog.ErrorContext(c.Context(), "notification request failed", "path", c.Path(), "error", err)
		return fiber.ErrInternalServerError
	}
}

// ---------------------------------------------------------------------------
// Pages (login required)
// ---------------------------------------------------------------------------

// GET {base}/
func (h *NotificationHandler) AllPage(c fiber.Ctx) error {
	return h.page(c, notification.ViewAll, "All notifications")
}

// GET {base}/unread/
func (h *NotificationHandler) UnreadPage(c fiber.Ctx) error {
	return h.page(c, notification.ViewUnread, "Unread notifications")
}

func (h *NotificationHandler) page(c fiber.Ctx, view notification.View, title string) error {
	user := currentUser(c)
	ctx := c.Context()

	number, err := parsePage(c.Query("page"))
	if err != nil {
		return fiber.ErrNotFound
	}
	p, err := h.svc.Page(ctx, user, view, number, h.paginateBy)
	if err != nil {
		return pageError(c, err)
	}

	return c.Render("list", fiber.Map{
		"Title":    title,
		"View":     string(view),
		"BasePath": h.basePath,
		"Self":     c.OriginalURL(),
		"Items":    h.projector.ProjectAll(ctx, p.Items, h.request(c, user)),
		"Page":     p,
		"Previous": p.Number - 1,
		"Next":     p.Number + 1,
	})
}

// GET {base}/mark-all-as-read/
func (h *NotificationHandler) MarkAllAsRead(c fiber.Ctx) error {
	ctx := c.Context()
	n, err := h.svc.MarkAllAsRead(ctx, currentUser(c))
	if err != nil {
		return pageError(c, err)
	}
	h.metrics.Transition(ctx, "mark_all_as_read", n)
	return h.redirect(c, h.basePath+"/unread/")
}

// GET {base}/mark-as-read/:slug/
func (h *NotificationHandler) MarkAsRead(c fiber.Ctx) error {
	return h.transition(c, "mark_as_read", h.svc.MarkAsRead, h.basePath+"/unread/")
}

// GET {base}/mark-as-unread/:slug/
func (h *NotificationHandler) MarkAsUnread(c fiber.Ctx) error {
	return h.transition(c, "mark_as_unread", h.svc.MarkAsUnread, h.basePath+"/unread/")
}

// GET {base}/delete/:slug/
func (h *NotificationHandler) Delete(c fiber.Ctx) error {
	return h.transition(c, "delete", h.svc.Delete, h.basePath+"/")
}

func (h *NotificationHandler) transition(
	c fiber.Ctx,
	op string,
	apply func(ctx context.Context, recipient uuid.UUID, id int64) error,
	fallback string,
) error {
	id, err := h.projector.Codec().Decode(c.Params("slug"))
	if err != nil {
		return fiber.ErrNotFound
	}

	ctx := c.Context()
	if err := apply(ctx, currentUser(c), id); err != nil {
		return pageError(c, err)
	}
	h.metrics.Transition(ctx, op, 1)
	return h.redirect(c, fallback)
}

// redirect follows ?next= when it stays on an allowed host, else fallback.
func (h *NotificationHandler) redirect(c fiber.Ctx, fallback string) error {
	to := fallback
	if next := c.Query("next"); next != "" && safeurl.Allowed(next, h.allowedHosts, h.requireHTTPS) {
		to = next
	}
	return c.Redirect().Status(fiber.StatusFound).To(to)
}

// ---------------------------------------------------------------------------
// Live JSON endpoints (anonymous callers get zeroed payloads)
// ---------------------------------------------------------------------------

// GET {base}/api/unread_count/
func (h *NotificationHandler) UnreadCount(c fiber.Ctx) error {
	return h.liveCount(c, notification.ViewUnread, "unread_count")
}

// GET {base}/api/all_count/
func (h *NotificationHandler) AllCount(c fiber.Ctx) error {
	return h.liveCount(c, notification.ViewAll, "all_count")
}

// GET {base}/api/unread_list/
func (h *NotificationHandler) UnreadList(c fiber.Ctx) error {
	return h.liveList(c, notification.ViewUnread, "unread_count", "unread_list")
}

// GET {base}/api/all_list/
func (h *NotificationHandler) AllList(c fiber.Ctx) error {
	return h.liveList(c, notification.ViewAll, "all_count", "all_list")
}

func (h *NotificationHandler) liveCount(c fiber.Ctx, view notification.View, key string) error {
	user, ok := reqctx.UserIDFromContext(c.Context())
	if !ok {
		return c.JSON(fiber.Map{key: 0})
	}
	n, err := h.svc.Count(c.Context(), user, view)
	if err != nil {
		return mapNotificationError(c, err)
	}
	return c.JSON(fiber.Map{key: n})
}

func (h *NotificationHandler) liveList(c fiber.Ctx, view notification.View, countKey, listKey string) error {
	ctx := c.Context()
	user, ok := reqctx.UserIDFromContext(ctx)
	if !ok {
		return c.JSON(fiber.Map{countKey: 0, listKey: []resolve.Item{}})
	}

	ns, err := h.svc.List(ctx, user, view, h.fetchSize(c))
	if err != nil {
		return mapNotificationError(c, err)
	}
	items := h.projector.ProjectAll(ctx, ns, h.request(c, user))

	// Items are projected first, so they still show the state the caller saw.
	if truthy(c.Query("mark_as_read")) && len(ns) > 0 {
		ids := make([]int64, len(ns))
		for i, n := range ns {
			ids[i] = n.ID
		}
		marked, err := h.svc.MarkAllAsRead(ctx, user, notification.Filter{IDs: ids})
		if err != nil {
			return mapNotificationError(c, err)
		}
		h.metrics.Transition(ctx, "mark_as_read", marked)
	}

	count, err := h.svc.Count(ctx, user, view)
	if err != nil {
		return mapNotificationError(c, err)
	}
	return c.JSON(fiber.Map{countKey: count, listKey: items})
}

// fetchSize reads ?max=, falling back to the configured default when it is
// missing, malformed or outside 1..maxFetch.
func (h *NotificationHandler) fetchSize(c fiber.Ctx) int {
	n, err := strconv.Atoi(c.Query("max"))
	if err != nil || n < 1 || n > maxFetch {
		return h.numToFetch
	}
	return n
}

func (h *NotificationHandler) request(c fiber.Ctx, user uuid.UUID) resolve.Request {
	return resolve.Request{Scheme: c.Scheme(), Host: c.Host(), User: user}
}

// currentUser is only valid behind LoginRequired.
func currentUser(c fiber.Ctx) uuid.UUID {
	user, _ := reqctx.UserIDFromContext(c.Context())
	return user
}

func parsePage(s string) (int, error) {
	switch s {
	case "":
		return 1, nil
	case "last":
		return notification.LastPage, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, notification.ErrInvalidPage
	}
	return n, nil
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}
