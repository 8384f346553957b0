package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// QuickExamSeed stores the ad-hoc quick-exam question list, pre-seeded
// outside the normal catalog. Payload is the backend's raw question shape
// serialized to JSON; at most one seed is kept.
type QuickExamSeed struct {
	ent.Schema
}

func (QuickExamSeed) Fields() []ent.Field {
	return []ent.Field{
		field.Bytes("payload").
			NotEmpty().
			Comment("JSON array of raw questions"),
		field.Time("seeded_at").
			Default(time.Now).
			Comment("When the seed was written"),
	}
}
