package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/notifications/config"
	"github.com/Alijeyrad/notifications/internal/service/dispatch"
	"github.com/Alijeyrad/notifications/internal/service/notification"
	"github.com/Alijeyrad/notifications/internal/service/resolve"
	"github.com/Alijeyrad/notifications/pkg/email"
	"github.com/Alijeyrad/notifications/pkg/observability"
	"github.com/Alijeyrad/notifications/pkg/reqctx"
)

// WorkerModule registers the NATS notify worker.
var WorkerModule = fx.Module("workers",
	fx.Provide(ProvideDispatcher),
	fx.Invoke(RegisterWorkers),
)

// ProvideDispatcher mails only when the email client is enabled.
func ProvideDispatcher(
	cfg *config.Config,
	svc notification.Service,
	projector *resolve.Projector,
	mail *email.Client,
	metrics *observability.NotificationMetrics,
) *dispatch.Dispatcher {
	var mailer email.Sender
	if mail.Enabled() {
		mailer = mail
	}
	return dispatch.New(svc, projector, mailer, metrics, dispatch.Config{
		AppName:  cfg.Observability.ServiceName,
		InboxURL: cfg.InboxURL(),
	})
}

type WorkerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	NC         *nats.Conn
	Dispatcher *dispatch.Dispatcher
}

func RegisterWorkers(p WorkerParams) {
	if p.NC == nil {
		slog.Info("notify_worker: NATS disabled, not subscribing")
		return
	}

	var sub *nats.Subscription
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			sub, err = startNotifyWorker(p.NC, p.Cfg.Nats, p.Dispatcher)
			return err
		},
		OnStop: func(ctx context.Context) error {
			// The connection itself is drained by ProvideNatsClient.
			if sub != nil {
				return sub.Unsubscribe()
			}
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// notify_worker
// ---------------------------------------------------------------------------

type notifyReply struct {
	Created int    `json:"created"`
	Error   string `json:"error,omitempty"`
}

func startNotifyWorker(nc *nats.Conn, cfg config.NatsConfig, d *dispatch.Dispatcher) (*nats.Subscription, error) {
	sub, err := nc.QueueSubscribe(cfg.NotifySubject, cfg.QueueGroup, func(msg *nats.Msg) {
		reply := handleNotify(context.Background(), d, msg.Data)
		if msg.Reply == "" {
			return
		}
		body, _ := json.Marshal(reply)
		if err := msg.Respond(body); err != nil {
			slog.Warn("notify_worker: reply failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notify_worker: subscribe failed", "subject", cfg.NotifySubject, "err", err)
		return nil, err
	}
	slog.Info("notify_worker: started", "subject", cfg.NotifySubject, "queue", cfg.QueueGroup)
	return sub, nil
}

func handleNotify(ctx context.Context, d *dispatch.Dispatcher, data []byte) notifyReply {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{ClientIP: "nats", RequestedAt: time.Now()})

	var m dispatch.Message
	if err := json.Unmarshal(data, &m); err != nil {
		slog.Warn("notify_worker: bad payload", "err", err)
		return notifyReply{Error: "malformed message"}
	}

	n, err := d.Dispatch(ctx, m, "nats")
	if err != nil {
		slog.Warn("notify_worker: dispatch failed", "verb", m.Verb, "recipients", len(m.Recipients), "err", err)
		return notifyReply{Error: err.Error()}
	}
	slog.Debug("notify_worker: stored notifications", "verb", m.Verb, "created", n)
	return notifyReply{Created: n}
}
