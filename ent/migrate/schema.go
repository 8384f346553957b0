// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "set_number", Type: field.TypeInt},
		{Name: "quiz_title", Type: field.TypeString},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "duration_secs", Type: field.TypeInt},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[9]},
			},
			{
				Name:    "attemptevent_set_number",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
		},
	}
	// CredentialsColumns holds the columns for the "credentials" table.
	CredentialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "token", Type: field.TypeString},
		{Name: "saved_at", Type: field.TypeTime},
	}
	// CredentialsTable holds the schema information for the "credentials" table.
	CredentialsTable = &schema.Table{
		Name:       "credentials",
		Columns:    CredentialsColumns,
		PrimaryKey: []*schema.Column{CredentialsColumns[0]},
	}
	// QuickExamSeedsColumns holds the columns for the "quick_exam_seeds" table.
	QuickExamSeedsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "seeded_at", Type: field.TypeTime},
	}
	// QuickExamSeedsTable holds the schema information for the "quick_exam_seeds" table.
	QuickExamSeedsTable = &schema.Table{
		Name:       "quick_exam_seeds",
		Columns:    QuickExamSeedsColumns,
		PrimaryKey: []*schema.Column{QuickExamSeedsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		CredentialsTable,
		QuickExamSeedsTable,
	}
)

func init() {
}
