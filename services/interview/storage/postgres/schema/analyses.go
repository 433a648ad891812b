package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/apriori/backend/pkg/gen"
	"github.com/google/uuid"
)

type Analysis struct {
	ent.Schema
}

func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default((func() uuid.UUID)(gen.UUID())),
		field.Float("satisfaction_score").
			Min(1.0).
			Max(5.0),
		field.Enum("sentiment").
			Values("Positive", "Neutral", "Negative"),
		field.Enum("retention_risk").
			Values("Low", "Medium", "High"),
		field.Text("summary"),
		field.String("model_used").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Analysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("interview", Interview.Type).
			Ref("analysis").
			Unique().
			Required(),
	}
}
