// Code generated by ent, DO NOT EDIT.

package quickexamseed

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/roadprep/roadprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldLTE(FieldID, id))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v []byte) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldEQ(FieldPayload, v))
}

// SeededAt applies equality check predicate on the "seeded_at" field. It's identical to SeededAtEQ.
func SeededAt(v time.Time) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldEQ(FieldSeededAt, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v []byte) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v []byte) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...[]byte) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...[]byte) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v []byte) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v []byte) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v []byte) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v []byte) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldLTE(FieldPayload, v))
}

// SeededAtEQ applies the EQ predicate on the "seeded_at" field.
func SeededAtEQ(v time.Time) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldEQ(FieldSeededAt, v))
}

// SeededAtNEQ applies the NEQ predicate on the "seeded_at" field.
func SeededAtNEQ(v time.Time) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldNEQ(FieldSeededAt, v))
}

// SeededAtIn applies the In predicate on the "seeded_at" field.
func SeededAtIn(vs ...time.Time) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldIn(FieldSeededAt, vs...))
}

// SeededAtNotIn applies the NotIn predicate on the "seeded_at" field.
func SeededAtNotIn(vs ...time.Time) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldNotIn(FieldSeededAt, vs...))
}

// SeededAtGT applies the GT predicate on the "seeded_at" field.
func SeededAtGT(v time.Time) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldGT(FieldSeededAt, v))
}

// SeededAtGTE applies the GTE predicate on the "seeded_at" field.
func SeededAtGTE(v time.Time) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldGTE(FieldSeededAt, v))
}

// SeededAtLT applies the LT predicate on the "seeded_at" field.
func SeededAtLT(v time.Time) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldLT(FieldSeededAt, v))
}

// SeededAtLTE applies the LTE predicate on the "seeded_at" field.
func SeededAtLTE(v time.Time) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.FieldLTE(FieldSeededAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuickExamSeed) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuickExamSeed) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuickExamSeed) predicate.QuickExamSeed {
	return predicate.QuickExamSeed(sql.NotPredicates(p))
}
