package exam

import (
	"errors"
	"testing"

	"github.com/roadprep/roadprep/internal/catalog"
)

// testSet builds a normalized set where question i's correct choice is the
// one at correctIdx[i]. An index of -1 marks no choice correct (bad source
// data path).
func testSet(setNumber int, correctIdx ...int) catalog.QuestionSet {
	set := catalog.QuestionSet{
		SetNumber:       setNumber,
		DurationMinutes: catalog.DurationMinutes(len(correctIdx)),
	}
	letters := []string{"A", "B", "C", "D"}
	for qi, correct := range correctIdx {
		q := catalog.Question{ID: qi + 1, Text: "question"}
		for ci, letter := range letters {
			q.Choices = append(q.Choices, catalog.Choice{
				ID:        letter,
				Text:      "choice " + letter,
				IsCorrect: ci == correct,
			})
		}
		set.Questions = append(set.Questions, q)
	}
	return set
}

func startedSession(t *testing.T, set catalog.QuestionSet) *Session {
	t.Helper()
	s := NewSession()
	if err := s.SelectSet(set, nil); err != nil {
		t.Fatalf("SelectSet: %v", err)
	}
	if err := s.ConfirmStart(); err != nil {
		t.Fatalf("ConfirmStart: %v", err)
	}
	return s
}

func TestSelectSet_DeniedStaysListing(t *testing.T) {
	denied := errors.New("locked")
	s := NewSession()
	err := s.SelectSet(testSet(3, 0), func(catalog.QuestionSet) error { return denied })
	if !errors.Is(err, denied) {
		t.Fatalf("err = %v, want %v", err, denied)
	}
	if s.Mode() != ModeListing {
		t.Errorf("mode = %v, want listing", s.Mode())
	}
}

func TestSelectSet_QuickExamBypassesChecker(t *testing.T) {
	s := NewSession()
	err := s.SelectSet(testSet(catalog.QuickExamSetNumber, 0), func(catalog.QuestionSet) error {
		t.Fatal("checker must not run for the quick exam")
		return nil
	})
	if err != nil {
		t.Fatalf("SelectSet: %v", err)
	}
	if s.Mode() != ModeConfirming {
		t.Errorf("mode = %v, want confirming", s.Mode())
	}
	if !s.ImmediateFeedback() {
		t.Error("quick exam should enable immediate feedback")
	}
}

func TestImmediateFeedback_OnlyForFreeSet(t *testing.T) {
	for _, tc := range []struct {
		setNumber int
		want      bool
	}{
		{1, true},
		{2, false},
		{3, false},
		{catalog.QuickExamSetNumber, true},
	} {
		s := NewSession()
		if err := s.SelectSet(testSet(tc.setNumber, 0), nil); err != nil {
			t.Fatalf("set %d: %v", tc.setNumber, err)
		}
		if got := s.ImmediateFeedback(); got != tc.want {
			t.Errorf("set %d: immediate feedback = %v, want %v", tc.setNumber, got, tc.want)
		}
	}
}

func TestConfirmStart_ArmsCountdown(t *testing.T) {
	s := startedSession(t, testSet(1, 0, 0, 0, 0, 0))
	if s.Mode() != ModeInProgress {
		t.Fatalf("mode = %v, want in-progress", s.Mode())
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("currentIndex = %d, want 0", s.CurrentIndex())
	}
	if got := s.RemainingSeconds(); got != 60 {
		t.Errorf("remainingSeconds = %d, want 60", got)
	}
	if s.AnsweredCount() != 0 {
		t.Errorf("answers not reset")
	}
}

func TestCancel_ReturnsToListing(t *testing.T) {
	s := NewSession()
	if err := s.SelectSet(testSet(1, 0), nil); err != nil {
		t.Fatal(err)
	}
	if err := s.Cancel(); err != nil {
		t.Fatal(err)
	}
	if s.Mode() != ModeListing {
		t.Errorf("mode = %v, want listing", s.Mode())
	}
}

func TestSelectChoice_RecordsCorrectness(t *testing.T) {
	s := startedSession(t, testSet(2, 1, 0))

	if err := s.SelectChoice("B"); err != nil {
		t.Fatal(err)
	}
	a, ok := s.AnswerFor(0)
	if !ok || !a.IsCorrect || a.ChoiceID != "B" {
		t.Errorf("answer = %+v ok=%v, want correct B", a, ok)
	}

	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectChoice("B"); err != nil {
		t.Fatal(err)
	}
	a, _ = s.AnswerFor(1)
	if a.IsCorrect {
		t.Error("B should be wrong for question 1")
	}
}

func TestSelectChoice_ChangingMindAllowedWithoutFeedback(t *testing.T) {
	s := startedSession(t, testSet(2, 1))
	if err := s.SelectChoice("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectChoice("B"); err != nil {
		t.Fatal(err)
	}
	a, _ := s.AnswerFor(0)
	if a.ChoiceID != "B" || !a.IsCorrect {
		t.Errorf("answer = %+v, want revised to correct B", a)
	}
}

func TestSelectChoice_ImmediateFeedbackLocksFirstAnswer(t *testing.T) {
	s := startedSession(t, testSet(1, 1))
	if err := s.SelectChoice("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectChoice("B"); err != nil {
		t.Fatal(err)
	}
	a, _ := s.AnswerFor(0)
	if a.ChoiceID != "A" {
		t.Errorf("answer = %+v, want locked-in A", a)
	}
}

func TestSelectChoice_NoCorrectChoiceScoresFalse(t *testing.T) {
	s := startedSession(t, testSet(2, -1))
	if err := s.SelectChoice("A"); err != nil {
		t.Fatal(err)
	}
	a, _ := s.AnswerFor(0)
	if a.IsCorrect {
		t.Error("question without a correct choice must score false")
	}
}

func TestSelectChoice_UnknownChoiceIgnored(t *testing.T) {
	s := startedSession(t, testSet(2, 0))
	if err := s.SelectChoice("Z"); err != nil {
		t.Fatal(err)
	}
	if s.AnsweredCount() != 0 {
		t.Error("unknown choice id must not be recorded")
	}
}

func TestSelectChoice_InvalidInListing(t *testing.T) {
	s := NewSession()
	err := s.SelectChoice("A")
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("err = %v, want InvalidTransitionError", err)
	}
	if s.Mode() != ModeListing {
		t.Error("state must not change on invalid transition")
	}
}

func TestNavigation(t *testing.T) {
	s := startedSession(t, testSet(2, 0, 0, 0))

	if err := s.Retreat(); err != nil {
		t.Fatal(err)
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("retreat at 0 moved to %d", s.CurrentIndex())
	}

	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	if s.CurrentIndex() != 1 {
		t.Errorf("currentIndex = %d, want 1", s.CurrentIndex())
	}

	if err := s.JumpTo(2); err != nil {
		t.Fatal(err)
	}
	if s.CurrentIndex() != 2 {
		t.Errorf("currentIndex = %d, want 2", s.CurrentIndex())
	}

	if err := s.JumpTo(99); err != nil {
		t.Fatal(err)
	}
	if s.CurrentIndex() != 2 {
		t.Error("out-of-range jump must be ignored")
	}
	if err := s.JumpTo(-1); err != nil {
		t.Fatal(err)
	}
	if s.CurrentIndex() != 2 {
		t.Error("negative jump must be ignored")
	}
}

func TestAdvance_OnLastQuestionFinishes(t *testing.T) {
	s := startedSession(t, testSet(2, 0, 0))
	if err := s.JumpTo(1); err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	if s.Mode() != ModeFinished {
		t.Errorf("mode = %v, want finished", s.Mode())
	}
	if s.Result() == nil {
		t.Error("finish must produce a result")
	}
}

func TestFinish_Idempotent(t *testing.T) {
	s := startedSession(t, testSet(2, 0))
	if err := s.SelectChoice("A"); err != nil {
		t.Fatal(err)
	}
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}
	first := s.Result()

	// Simulates the timer firing just after a manual submit.
	s.Tick()
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}

	if s.Result() != first {
		t.Error("second finish must not produce a new result")
	}
	if s.Result().CorrectCount != 1 {
		t.Errorf("correctCount = %d, want 1", s.Result().CorrectCount)
	}
}

func TestNoAnswersAfterFinish(t *testing.T) {
	s := startedSession(t, testSet(2, 0, 0))
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectChoice("A"); err == nil {
		t.Error("selectChoice after finish must be rejected")
	}
	if s.Result().CorrectCount != 0 {
		t.Error("answers must reflect state at finish time only")
	}
}

func TestTick_TimeoutFinishesOnce(t *testing.T) {
	set := testSet(2, 0, 0, 0, 0, 0) // 5 questions → 1 minute
	s := startedSession(t, set)

	for i := 0; i < 59; i++ {
		s.Tick()
	}
	if s.Mode() != ModeInProgress {
		t.Fatalf("mode after 59 ticks = %v, want in-progress", s.Mode())
	}

	s.Tick()
	if s.Mode() != ModeFinished {
		t.Fatalf("mode after 60 ticks = %v, want finished", s.Mode())
	}

	r := s.Result()
	if r == nil {
		t.Fatal("timeout must produce a result")
	}
	if r.Score != 0 || r.CorrectCount != 0 {
		t.Errorf("score = %d correct = %d, want 0/0", r.Score, r.CorrectCount)
	}
	if r.TimeSpentSeconds != 60 {
		t.Errorf("timeSpent = %d, want full duration 60", r.TimeSpentSeconds)
	}

	// Extra ticks after the timeout change nothing.
	s.Tick()
	if s.Result() != r {
		t.Error("tick after finish produced a new result")
	}
}

func TestAbandon_DiscardsWithoutResult(t *testing.T) {
	s := startedSession(t, testSet(2, 0, 0))
	if err := s.SelectChoice("A"); err != nil {
		t.Fatal(err)
	}
	s.Abandon()

	if s.Mode() != ModeListing {
		t.Errorf("mode = %v, want listing", s.Mode())
	}
	if s.Result() != nil {
		t.Error("abandon must not produce a result")
	}
}

func TestTimerIsolation_StaleTickCannotTouchNewSession(t *testing.T) {
	s1 := startedSession(t, testSet(2, 0, 0, 0, 0, 0))
	s1.Abandon()

	s2 := startedSession(t, testSet(2, 0, 0, 0, 0, 0))
	if err := s2.SelectChoice("A"); err != nil {
		t.Fatal(err)
	}

	// A lingering tick from the abandoned session fires.
	s1.Tick()

	if got := s2.RemainingSeconds(); got != 60 {
		t.Errorf("s2 remainingSeconds = %d, want 60", got)
	}
	if s2.AnsweredCount() != 1 {
		t.Errorf("s2 answers changed by stale tick")
	}
	if s1.Mode() != ModeListing {
		t.Errorf("stale tick revived abandoned session: %v", s1.Mode())
	}
}

func TestGuestScenario_SetOneThreeOfFive(t *testing.T) {
	// Guest runs the free set: five questions, three answered correctly.
	set := testSet(1, 0, 1, 0, 1, 0)
	s := startedSession(t, set)

	picks := []string{"A", "B", "A", "A", "B"} // right, right, right, wrong, wrong
	for i, pick := range picks {
		if err := s.JumpTo(i); err != nil {
			t.Fatal(err)
		}
		if err := s.SelectChoice(pick); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.JumpTo(len(picks) - 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}

	r := s.Result()
	if r.CorrectCount != 3 {
		t.Errorf("correctCount = %d, want 3", r.CorrectCount)
	}
	if r.Score != 60 {
		t.Errorf("score = %d, want 60", r.Score)
	}
	if r.Passed {
		t.Error("60 must not pass")
	}
}
