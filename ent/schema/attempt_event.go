package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one finished exam attempt for the history view.
// Abandoned sessions never write one.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("UUID for this attempt"),
		field.Int("set_number").
			Comment("Catalog set number; 0 for the quick exam"),
		field.String("quiz_title").
			NotEmpty(),
		field.Int("total_questions"),
		field.Int("correct_count"),
		field.Int("score").
			Comment("Percent, 0-100"),
		field.Bool("passed"),
		field.Int("duration_secs").
			Comment("Time spent, in seconds"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time the attempt finished"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("set_number"),
	}
}
