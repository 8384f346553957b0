package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/roadprep/roadprep/internal/catalog"
	"github.com/roadprep/roadprep/internal/exam"
)

func testResult() *exam.Result {
	questions := []catalog.Question{
		{ID: 1, Text: "first", Choices: []catalog.Choice{
			{ID: "A", Text: "a", IsCorrect: true},
			{ID: "B", Text: "b"},
		}, Explanation: "because"},
		{ID: 2, Text: "second", Choices: []catalog.Choice{
			{ID: "A", Text: "a"},
			{ID: "B", Text: "b", IsCorrect: true},
		}},
		{ID: 3, Text: "third", Choices: []catalog.Choice{
			{ID: "A", Text: "a", IsCorrect: true},
			{ID: "B", Text: "b"},
		}},
	}
	return &exam.Result{
		QuizTitle:        "Exam set 2",
		TotalQuestions:   3,
		CorrectCount:     2,
		Score:            67,
		Passed:           false,
		TimeSpentSeconds: 95,
		Questions:        questions,
		Answers: map[int]exam.Answer{
			0: {ChoiceID: "A", IsCorrect: true},
			1: {ChoiceID: "B", IsCorrect: true},
			// question 3 left unanswered
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSummaryShowsScoreAndVerdict(t *testing.T) {
	s := New(testResult())

	view := s.View(80, 24)
	for _, want := range []string{"Exam set 2", "Score  67", "NOT PASSED", "2 of 3", "1:35"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestPassedVerdict(t *testing.T) {
	r := testResult()
	r.Score = 100
	r.Passed = true
	s := New(r)

	view := s.View(80, 24)
	if !strings.Contains(view, "PASSED") || strings.Contains(view, "NOT PASSED") {
		t.Error("expected a PASSED verdict")
	}
}

func TestReviewToggleAndNavigation(t *testing.T) {
	s := New(testResult())

	s.Update(keyPress('r'))
	if !s.reviewing {
		t.Fatal("R must open the review")
	}
	if !strings.Contains(s.View(80, 24), "Review 1 of 3") {
		t.Error("review must start at the first question")
	}

	// Down twice lands on the last question and stops there.
	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	if s.cursor != 2 {
		t.Errorf("cursor = %d, want clamped to 2", s.cursor)
	}
	if !strings.Contains(s.View(80, 24), "Not answered.") {
		t.Error("unanswered question must say so")
	}

	// R returns to the summary and resets the cursor.
	s.Update(keyPress('r'))
	if s.reviewing || s.cursor != 0 {
		t.Error("R must return to the summary")
	}
}

func TestReviewShowsExplanation(t *testing.T) {
	s := New(testResult())
	s.Update(keyPress('r'))

	if !strings.Contains(s.View(80, 24), "because") {
		t.Error("review must surface the explanation")
	}
	if !strings.Contains(s.View(80, 24), "You answered correctly.") {
		t.Error("review must show the verdict for answered questions")
	}
}
