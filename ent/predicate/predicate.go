// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// Credential is the predicate function for credential builders.
type Credential func(*sql.Selector)

// QuickExamSeed is the predicate function for quickexamseed builders.
type QuickExamSeed func(*sql.Selector)
