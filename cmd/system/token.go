package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Alijeyrad/notifications/config"
	"github.com/Alijeyrad/notifications/internal/service/session"
	pasetotoken "github.com/Alijeyrad/notifications/pkg/paseto"
	redispkg "github.com/Alijeyrad/notifications/pkg/redis"
)

// NewTokenCommand mints an access token the way the host application would,
// for local development and smoke tests.
func NewTokenCommand() *cobra.Command {
	var (
		userID      string
		withSession bool
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development access token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			user, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			mgr, err := pasetotoken.NewPasetoManager(cfg)
			if err != nil {
				return err
			}

			var sid *uuid.UUID
			if withSession {
				if !cfg.Redis.Enabled {
					return fmt.Errorf("--session needs redis.enabled")
				}
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				rdb, err := redispkg.NewRedisFromCentral(ctx, cfg.Redis)
				if err != nil {
					return err
				}
				defer rdb.Close()

				id := uuid.New()
				ttl := time.Duration(cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
				if err := session.NewRedisStore(rdb).Create(ctx, id, user, ttl); err != nil {
					return err
				}
				sid = &id
			}

			tok, err := mgr.Issue(user, sid)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Println(tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "recipient id (UUID)")
	cmd.Flags().BoolVar(&withSession, "session", false, "also create a Redis session for the token")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
