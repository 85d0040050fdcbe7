package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

func timeNow() time.Time { return time.Now().UTC() }

// Int64IDMixin provides an auto-increment int64 primary key.
type Int64IDMixin struct {
	mixin.Schema
}

func (Int64IDMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Positive().
			Immutable(),
	}
}
