package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/notifications/internal/api/http/handler"
	"github.com/Alijeyrad/notifications/internal/api/http/middleware"
)

func (r *Router) registerNotificationRoutes(
	notifs fiber.Router,
	nh *handler.NotificationHandler,
	loginRequired fiber.Handler,
) {
	// A Group with handlers would Use them on its whole prefix, so the
	// login check is attached per route.
	notifs.Get("/", loginRequired, nh.AllPage)
	notifs.Get("/unread/", loginRequired, nh.UnreadPage)
	notifs.Get("/mark-all-as-read/", loginRequired, nh.MarkAllAsRead)
	notifs.Get("/mark-as-read/:slug/", loginRequired, nh.MarkAsRead)
	notifs.Get("/mark-as-unread/:slug/", loginRequired, nh.MarkAsUnread)
	notifs.Get("/delete/:slug/", loginRequired, nh.Delete)

	api := notifs.Group("/api", middleware.NeverCache())
	api.Get("/unread_count/", nh.UnreadCount)
	api.Get("/unread_list/", nh.UnreadList)
	api.Get("/all_count/", nh.AllCount)
	api.Get("/all_list/", nh.AllList)
}
