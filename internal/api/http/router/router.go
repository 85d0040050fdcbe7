package router

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/notifications/config"
	"github.com/Alijeyrad/notifications/internal/api/http/handler"
	"github.com/Alijeyrad/notifications/internal/api/http/middleware"
	"github.com/Alijeyrad/notifications/internal/repo"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/internal/service/resolve"
	"github.com/Alijeyrad/notifications/internal/service/session"
	"github.com/Alijeyrad/notifications/pkg/observability"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	DB              *repo.Client
	Redis           *redis.Client `optional:"true"`
	NotificationSvc notification.Service
	Projector       *resolve.Projector
	Authenticator   session.Authenticator
	Metrics         *observability.NotificationMetrics
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authenticate := middleware.Authenticate(r.p.Authenticator, r.p.Cfg.Authentication.CookieName)
	loginRequired := middleware.LoginRequired(r.p.Cfg.Server.LoginURL)

	// 3. Initialize Handlers
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc, r.p.Projector, r.p.Metrics, r.p.Cfg)

	base := strings.TrimRight(r.p.Cfg.Server.BasePath, "/")
	r.registerNotificationRoutes(app.Group(base, authenticate), notificationH, loginRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: r.ready,
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

// ready reports whether the database, and Redis when configured, answer.
func (r *Router) ready(c fiber.Ctx) bool {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if _, err := r.p.DB.Notification.Query().Exist(ctx); err != nil {
		return false
	}
	if r.p.Redis != nil {
		if err := r.p.Redis.Ping(ctx).Err(); err != nil {
			return false
		}
	}
	return true
}
