package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Notification records that an actor did something (verb), optionally
// through an action object and optionally to a target, for one recipient.
// Actor, target and action object are polymorphic references owned by the
// host application: a type discriminator plus an opaque object id.
type Notification struct {
	ent.Schema
}

func (Notification) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "notifications"},
	}
}

func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		Int64IDMixin{},
	}
}

func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("recipient_id", uuid.UUID{}).
			Comment("Host user the notification is addressed to"),

		field.Enum("level").
			Values("success", "info", "warning", "error").
			Default("info"),

		field.Bool("unread").
			Default(true),

		field.String("actor_content_type").
			NotEmpty().
			MaxLen(255),

		field.String("actor_object_id").
			NotEmpty().
			MaxLen(255),

		field.String("verb").
			NotEmpty().
			MaxLen(255),

		field.Text("description").
			Optional().
			Nillable(),

		field.String("target_content_type").
			MaxLen(255).
			Optional().
			Nillable(),

		field.String("target_object_id").
			MaxLen(255).
			Optional().
			Nillable(),

		field.String("action_object_content_type").
			MaxLen(255).
			Optional().
			Nillable(),

		field.String("action_object_object_id").
			MaxLen(255).
			Optional().
			Nillable(),

		field.Time("timestamp").
			Default(timeNow).
			Immutable(),

		field.Bool("public").
			Default(true),

		field.Bool("deleted").
			Default(false),

		field.Bool("emailed").
			Default(false).
			Comment("Whether the notification was delivered by email"),

		field.JSON("data", map[string]any{}).
			Optional().
			Comment("Opaque producer payload"),
	}
}

func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "unread"),
		index.Fields("timestamp"),
		index.Fields("unread"),
		index.Fields("deleted"),
		index.Fields("public"),
		index.Fields("emailed"),
	}
}
