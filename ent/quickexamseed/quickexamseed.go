// Code generated by ent, DO NOT EDIT.

package quickexamseed

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quickexamseed type in the database.
	Label = "quick_exam_seed"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldSeededAt holds the string denoting the seeded_at field in the database.
	FieldSeededAt = "seeded_at"
	// Table holds the table name of the quickexamseed in the database.
	Table = "quick_exam_seeds"
)

// Columns holds all SQL columns for quickexamseed fields.
var Columns = []string{
	FieldID,
	FieldPayload,
	FieldSeededAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PayloadValidator is a validator for the "payload" field. It is called by the builders before save.
	PayloadValidator func([]byte) error
	// DefaultSeededAt holds the default value on creation for the "seeded_at" field.
	DefaultSeededAt func() time.Time
)

// OrderOption defines the ordering options for the QuickExamSeed queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySeededAt orders the results by the seeded_at field.
func BySeededAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeededAt, opts...).ToFunc()
}
