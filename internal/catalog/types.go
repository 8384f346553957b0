package catalog

import "fmt"

// Choice is a single answer option. ID is the positional letter label
// (A, B, C, ...) derived from the choice's ordinal in the source list.
type Choice struct {
	ID        string
	Text      string
	IsCorrect bool
}

// Question is a normalized quiz question. Choice order matters: it
// determines the letter labels.
type Question struct {
	ID          int
	Text        string
	ImageURL    string
	Explanation string
	Choices     []Choice
}

// CorrectChoiceID returns the ID of the choice marked correct, or "" when
// none is (out-of-range answer index in the source data; fail closed).
func (q Question) CorrectChoiceID() string {
	for _, c := range q.Choices {
		if c.IsCorrect {
			return c.ID
		}
	}
	return ""
}

// Difficulty buckets question sets for display.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyExam         Difficulty = "exam"
)

// QuestionSet is a normalized question set. IsPremium, RequiresLogin,
// DurationMinutes and Difficulty are filled in by the access resolver,
// not by the loader.
type QuestionSet struct {
	SetNumber int
	Questions []Question

	IsPremium       bool
	RequiresLogin   bool
	DurationMinutes int
	Difficulty      Difficulty
}

// Title returns the display name for the set.
func (s QuestionSet) Title() string {
	if s.SetNumber == QuickExamSetNumber {
		return "Quick exam"
	}
	return fmt.Sprintf("Exam set %d", s.SetNumber)
}
