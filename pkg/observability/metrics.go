package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// NotificationMetrics counts notification traffic. The zero value is not
// usable; build one with NewNotificationMetrics.
type NotificationMetrics struct {
	created     metric.Int64Counter
	transitions metric.Int64Counter
	emails      metric.Int64Counter
}

// NewNotificationMetrics registers the counters on the global meter provider,
// so it must run after InitTelemetry to be exported.
func NewNotificationMetrics() (*NotificationMetrics, error) {
	meter := otel.Meter(instrumentationName)

	created, err := meter.Int64Counter(
		"notifications_created_total",
		metric.WithDescription("Notifications stored"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}
	transitions, err := meter.Int64Counter(
		"notifications_transitions_total",
		metric.WithDescription("Rows changed by state transitions"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}
	emails, err := meter.Int64Counter(
		"notifications_emails_total",
		metric.WithDescription("Notification emails attempted"),
		metric.WithUnit("{email}"),
	)
	if err != nil {
		return nil, err
	}
	return &NotificationMetrics{created: created, transitions: transitions, emails: emails}, nil
}

func (m *NotificationMetrics) Created(ctx context.Context, source string, n int) {
	m.created.Add(ctx, int64(n), metric.WithAttributes(attribute.String("source", source)))
}

func (m *NotificationMetrics) Transition(ctx context.Context, op string, n int) {
	m.transitions.Add(ctx, int64(n), metric.WithAttributes(attribute.String("op", op)))
}

func (m *NotificationMetrics) Email(ctx context.Context, ok bool) {
	m.emails.Add(ctx, 1, metric.WithAttributes(attribute.Bool("ok", ok)))
}
