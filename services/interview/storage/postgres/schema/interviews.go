package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/apriori/backend/pkg/gen"
	"github.com/google/uuid"
)

type Interview struct {
	ent.Schema
}

func (Interview) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default((func() uuid.UUID)(gen.UUID())),
		field.String("conversation_id").Unique(),
		field.String("agent_id").Optional(),
		field.String("employee_id").Optional(),
		field.Text("transcript"),
		field.Int("transcript_length"),
		field.Int("duration_seconds").Optional(),
		field.String("audio_url").Optional(),
		field.String("organization_id"),
		field.Enum("status").
			Values("received", "scored", "scoring_failed").
			Default("received"),
		field.Time("received_at").Default(time.Now),
	}
}

func (Interview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("analysis", Analysis.Type).Unique(),
	}
}

func (Interview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "received_at"),
		index.Fields("employee_id"),
	}
}
