package app

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/notifications/config"
	"github.com/Alijeyrad/notifications/internal/repo"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/internal/service/resolve"
	"github.com/Alijeyrad/notifications/internal/service/session"
	pasetotoken "github.com/Alijeyrad/notifications/pkg/paseto"
	"github.com/Alijeyrad/notifications/pkg/util/slug"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideNotificationService,
		ProvideSlugCodec,
		ProvideResolverCache,
		ProvideRegistry,
		ProvideProjector,
		ProvideSessionStore,
		ProvideAuthenticator,
	),
)

func ProvideNotificationService(db *repo.Client, cfg *config.Config) notification.Service {
	return notification.New(db, notification.PolicyFor(cfg.Notifications.SoftDelete))
}

func ProvideSlugCodec(cfg *config.Config) slug.Codec {
	return slug.New(cfg.Notifications.SlugOffset)
}

// ProvideResolverCache returns nil when caching is switched off.
func ProvideResolverCache(cfg *config.Config) *resolve.Cache {
	return resolve.NewCache(time.Duration(cfg.Notifications.ResolverCacheTTLSeconds) * time.Second)
}

// ProvideRegistry registers a template resolver for each configured object
// type. Types left out of the config fall back to "type:id" labels.
func ProvideRegistry(cfg *config.Config, codec slug.Codec, cache *resolve.Cache) *resolve.Registry {
	r := resolve.NewRegistry()
	resolve.RegisterTemplates(r, cfg.Notifications.ObjectTypes, codec, cache)
	return r
}

func ProvideProjector(r *resolve.Registry, codec slug.Codec) *resolve.Projector {
	return resolve.NewProjector(r, codec)
}

// ProvideSessionStore returns nil without Redis.
func ProvideSessionStore(rdb *redis.Client) session.Store {
	if rdb == nil {
		return nil
	}
	return session.NewRedisStore(rdb)
}

func ProvideAuthenticator(tokens *pasetotoken.Manager, sessions session.Store) session.Authenticator {
	return session.NewAuthenticator(tokens, sessions)
}
