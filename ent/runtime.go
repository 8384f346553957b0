// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/roadprep/roadprep/ent/attemptevent"
	"github.com/roadprep/roadprep/ent/credential"
	"github.com/roadprep/roadprep/ent/quickexamseed"
	"github.com/roadprep/roadprep/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescQuizTitle is the schema descriptor for quiz_title field.
	attempteventDescQuizTitle := attempteventFields[2].Descriptor()
	// attemptevent.QuizTitleValidator is a validator for the "quiz_title" field. It is called by the builders before save.
	attemptevent.QuizTitleValidator = attempteventDescQuizTitle.Validators[0].(func(string) error)
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventFields[8].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	credentialFields := schema.Credential{}.Fields()
	_ = credentialFields
	// credentialDescToken is the schema descriptor for token field.
	credentialDescToken := credentialFields[0].Descriptor()
	// credential.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	credential.TokenValidator = credentialDescToken.Validators[0].(func(string) error)
	// credentialDescSavedAt is the schema descriptor for saved_at field.
	credentialDescSavedAt := credentialFields[1].Descriptor()
	// credential.DefaultSavedAt holds the default value on creation for the saved_at field.
	credential.DefaultSavedAt = credentialDescSavedAt.Default.(func() time.Time)
	quickexamseedFields := schema.QuickExamSeed{}.Fields()
	_ = quickexamseedFields
	// quickexamseedDescPayload is the schema descriptor for payload field.
	quickexamseedDescPayload := quickexamseedFields[0].Descriptor()
	// quickexamseed.PayloadValidator is a validator for the "payload" field. It is called by the builders before save.
	quickexamseed.PayloadValidator = quickexamseedDescPayload.Validators[0].(func([]byte) error)
	// quickexamseedDescSeededAt is the schema descriptor for seeded_at field.
	quickexamseedDescSeededAt := quickexamseedFields[1].Descriptor()
	// quickexamseed.DefaultSeededAt holds the default value on creation for the seeded_at field.
	quickexamseed.DefaultSeededAt = quickexamseedDescSeededAt.Default.(func() time.Time)
}
