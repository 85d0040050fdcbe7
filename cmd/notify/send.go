package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/Alijeyrad/notifications/config"
	"github.com/Alijeyrad/notifications/internal/service/dispatch"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/internal/service/resolve"
	"github.com/Alijeyrad/notifications/pkg/database"
	"github.com/Alijeyrad/notifications/pkg/email"
	"github.com/Alijeyrad/notifications/pkg/logs"
	"github.com/Alijeyrad/notifications/pkg/observability"
	"github.com/Alijeyrad/notifications/pkg/util/slug"
)

type sendFlags struct {
	recipients   []string
	actor        string
	verb         string
	target       string
	actionObject string
	level        string
	description  string
	data         string
	email        bool
	viaNATS      bool
}

func NewSendCommand() *cobra.Command {
	var f sendFlags

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Create a notification for one or more recipients",
		Example: `  notifications notify send --recipient 6f1c5b1e-1d1a-4c1b-9a51-0d2f3b1f7a10 \
    --actor user:42 --verb "commented on" --target post:7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			slog.SetDefault(logs.New(cfg))

			msg, err := f.message()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Server.TimeoutSeconds)*time.Second)
			defer cancel()

			var created int
			if f.viaNATS {
				created, err = publish(ctx, cfg, msg)
			} else {
				created, err = store(ctx, cfg, msg)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Created %d notification(s).\n", created)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&f.recipients, "recipient", nil, "recipient id, repeatable; append =email to also mail them")
	cmd.Flags().StringVar(&f.actor, "actor", "", "actor as type:id")
	cmd.Flags().StringVar(&f.verb, "verb", "", "what the actor did")
	cmd.Flags().StringVar(&f.target, "target", "", "target as type:id")
	cmd.Flags().StringVar(&f.actionObject, "action-object", "", "action object as type:id")
	cmd.Flags().StringVar(&f.level, "level", "", "success, info, warning or error")
	cmd.Flags().StringVar(&f.description, "description", "", "free text")
	cmd.Flags().StringVar(&f.data, "data", "", "JSON object stored with the notification")
	cmd.Flags().BoolVar(&f.email, "email", false, "mail recipients that have an address")
	cmd.Flags().BoolVar(&f.viaNATS, "nats", false, "publish to the notify subject instead of writing to the database")
	_ = cmd.MarkFlagRequired("recipient")
	_ = cmd.MarkFlagRequired("actor")
	_ = cmd.MarkFlagRequired("verb")

	return cmd
}

func (f sendFlags) message() (dispatch.Message, error) {
	m := dispatch.Message{Verb: f.verb, Level: f.level, Email: f.email}

	for _, r := range f.recipients {
		idStr, addr, _ := strings.Cut(r, "=")
		id, err := uuid.Parse(strings.TrimSpace(idStr))
		if err != nil {
			return m, fmt.Errorf("invalid --recipient %q: %w", r, err)
		}
		m.Recipients = append(m.Recipients, dispatch.Recipient{ID: id, Email: strings.TrimSpace(addr)})
	}

	var err error
	if m.Actor, err = dispatch.ParseRef(f.actor); err != nil {
		return m, fmt.Errorf("--actor: %w", err)
	}
	if m.Target, err = optionalRef(f.target); err != nil {
		return m, fmt.Errorf("--target: %w", err)
	}
	if m.ActionObject, err = optionalRef(f.actionObject); err != nil {
		return m, fmt.Errorf("--action-object: %w", err)
	}
	if f.description != "" {
		m.Description = &f.description
	}
	if f.data != "" {
		if err := json.Unmarshal([]byte(f.data), &m.Data); err != nil {
			return m, fmt.Errorf("--data must be a JSON object: %w", err)
		}
	}
	return m, nil
}

func optionalRef(s string) (*notification.Ref, error) {
	if s == "" {
		return nil, nil
	}
	ref, err := dispatch.ParseRef(s)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func store(ctx context.Context, cfg *config.Config, m dispatch.Message) (int, error) {
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return 0, fmt.Errorf("failed to create ent client: %w", err)
	}
	defer client.Close()

	codec := slug.New(cfg.Notifications.SlugOffset)
	reg := resolve.NewRegistry()
	resolve.RegisterTemplates(reg, cfg.Notifications.ObjectTypes, codec, nil)

	metrics, err := observability.NewNotificationMetrics()
	if err != nil {
		return 0, err
	}

	var mailer email.Sender
	if mc := email.NewFromCentral(cfg.Email); mc.Enabled() {
		mailer = mc
	}

	d := dispatch.New(
		notification.New(client, notification.PolicyFor(cfg.Notifications.SoftDelete)),
		resolve.NewProjector(reg, codec),
		mailer,
		metrics,
		dispatch.Config{
			AppName:  cfg.Observability.ServiceName,
			InboxURL: cfg.InboxURL(),
		},
	)
	return d.Dispatch(ctx, m, "cli")
}

func publish(ctx context.Context, cfg *config.Config, m dispatch.Message) (int, error) {
	nc, err := nats.Connect(cfg.Nats.URL)
	if err != nil {
		return 0, fmt.Errorf("connect to NATS: %w", err)
	}
	defer nc.Close()

	body, err := json.Marshal(m)
	if err != nil {
		return 0, err
	}
	msg, err := nc.RequestWithContext(ctx, cfg.Nats.NotifySubject, body)
	if err != nil {
		return 0, fmt.Errorf("notify request: %w", err)
	}

	var reply struct {
		Created int    `json:"created"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return 0, fmt.Errorf("decode reply: %w", err)
	}
	if reply.Error != "" {
		return 0, fmt.Errorf("worker rejected notification: %s", reply.Error)
	}
	return reply.Created, nil
}
