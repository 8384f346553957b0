package examrun

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/roadprep/roadprep/internal/catalog"
	"github.com/roadprep/roadprep/internal/exam"
	"github.com/roadprep/roadprep/internal/router"
	"github.com/roadprep/roadprep/internal/screens/results"
	"github.com/roadprep/roadprep/internal/store"
)

type fakeAttempts struct {
	rows []store.AttemptData
}

func (f *fakeAttempts) AppendAttempt(ctx context.Context, data store.AttemptData) error {
	f.rows = append(f.rows, data)
	return nil
}

func (f *fakeAttempts) RecentAttempts(ctx context.Context, limit int) ([]store.Attempt, error) {
	return nil, nil
}

func (f *fakeAttempts) ClearAttempts(ctx context.Context) error {
	return nil
}

type memSeeds struct {
	raw []byte
}

func (m *memSeeds) QuickExamSeed(ctx context.Context) ([]byte, error) {
	return m.raw, nil
}

func (m *memSeeds) SaveQuickExamSeed(ctx context.Context, payload []byte) error {
	m.raw = payload
	return nil
}

// testSet builds a set of n questions where choice A is always correct.
func testSet(setNumber, n int) catalog.QuestionSet {
	questions := make([]catalog.Question, n)
	for i := range questions {
		questions[i] = catalog.Question{
			ID:   i + 1,
			Text: "What does this sign mean?",
			Choices: []catalog.Choice{
				{ID: "A", Text: "Stop", IsCorrect: true},
				{ID: "B", Text: "Yield"},
			},
		}
	}
	return catalog.QuestionSet{
		SetNumber:       setNumber,
		Questions:       questions,
		DurationMinutes: catalog.DurationMinutes(n),
	}
}

func newTestScreen(t *testing.T, set catalog.QuestionSet, attempts *fakeAttempts) *RunScreen {
	t.Helper()
	sess := exam.NewSession()
	if err := sess.SelectSet(set, nil); err != nil {
		t.Fatalf("select set: %v", err)
	}
	r := New(sess, Deps{
		Log:      slog.New(slog.DiscardHandler),
		Attempts: attempts,
	})
	t.Cleanup(func() {
		if r.countdown != nil {
			r.countdown.Stop()
		}
	})
	return r
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// drain executes a command tree and collects the produced messages.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestConfirmViewShowsSetDetails(t *testing.T) {
	r := newTestScreen(t, testSet(3, 20), &fakeAttempts{})

	view := r.View(80, 24)
	for _, want := range []string{"Exam set 3", "20", "1 min"} {
		if !strings.Contains(view, want) {
			t.Errorf("confirm view missing %q", want)
		}
	}
}

func TestEnterBeginsExam(t *testing.T) {
	r := newTestScreen(t, testSet(2, 5), &fakeAttempts{})

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if r.sess.Mode() != exam.ModeInProgress {
		t.Fatalf("mode = %v, want in-progress", r.sess.Mode())
	}
	if cmd == nil {
		t.Error("expected a tick-wait command after starting")
	}
}

func TestImmediateFeedbackLocksFirstAnswer(t *testing.T) {
	r := newTestScreen(t, testSet(1, 3), &fakeAttempts{})
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	// Answer A on the first question.
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	a, ok := r.sess.AnswerFor(0)
	if !ok || a.ChoiceID != "A" || !a.IsCorrect {
		t.Fatalf("answer = %+v ok=%v, want correct A", a, ok)
	}

	// Trying to switch to B changes nothing.
	r.Update(keyPress('j'))
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	a, _ = r.sess.AnswerFor(0)
	if a.ChoiceID != "A" {
		t.Errorf("answer revised to %q, want locked A", a.ChoiceID)
	}

	view := r.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Error("expected feedback banner after answering")
	}
}

func TestAdvancePastLastQuestionFinishes(t *testing.T) {
	attempts := &fakeAttempts{}
	r := newTestScreen(t, testSet(2, 1), attempts)
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // answer A
	_, cmd := r.Update(keyPress('n'))             // advance on last question

	if r.sess.Mode() != exam.ModeFinished {
		t.Fatalf("mode = %v, want finished", r.sess.Mode())
	}

	msgs := drain(t, cmd)
	var replaced bool
	for _, msg := range msgs {
		if rep, ok := msg.(router.ReplaceScreenMsg); ok {
			if _, ok := rep.Screen.(*results.ResultScreen); !ok {
				t.Errorf("replacement screen is %T, want results", rep.Screen)
			}
			replaced = true
		}
	}
	if !replaced {
		t.Error("expected a ReplaceScreenMsg to the results screen")
	}

	if len(attempts.rows) != 1 {
		t.Fatalf("attempts recorded = %d, want 1", len(attempts.rows))
	}
	if attempts.rows[0].Score != 100 || !attempts.rows[0].Passed {
		t.Errorf("attempt = %+v, want score 100 passed", attempts.rows[0])
	}
}

func TestSubmitRecordsPartialScore(t *testing.T) {
	attempts := &fakeAttempts{}
	r := newTestScreen(t, testSet(3, 4), attempts)
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	// Answer only the first question, then submit.
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd := r.Update(keyPress('s'))

	if r.sess.Mode() != exam.ModeFinished {
		t.Fatalf("mode = %v, want finished", r.sess.Mode())
	}
	drain(t, cmd)

	if len(attempts.rows) != 1 {
		t.Fatalf("attempts recorded = %d, want 1", len(attempts.rows))
	}
	if got := attempts.rows[0].Score; got != 25 {
		t.Errorf("score = %d, want 25", got)
	}
	if attempts.rows[0].Passed {
		t.Error("25%% must not pass")
	}
}

func TestTimeoutFinishesOnce(t *testing.T) {
	attempts := &fakeAttempts{}
	r := newTestScreen(t, testSet(2, 1), attempts) // 1 question → 60 seconds
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	for i := 0; i < 59; i++ {
		r.Update(tickMsg{})
	}
	if r.sess.Mode() != exam.ModeInProgress {
		t.Fatalf("mode after 59 ticks = %v, want in-progress", r.sess.Mode())
	}

	_, cmd := r.Update(tickMsg{})
	if r.sess.Mode() != exam.ModeFinished {
		t.Fatalf("mode after 60 ticks = %v, want finished", r.sess.Mode())
	}
	drain(t, cmd)

	if got := r.sess.Result().TimeSpentSeconds; got != 60 {
		t.Errorf("time spent = %d, want full 60", got)
	}
	if len(attempts.rows) != 1 {
		t.Fatalf("attempts recorded = %d, want 1", len(attempts.rows))
	}

	// A late tick after finish changes nothing.
	before := r.sess.Result()
	r.Update(tickMsg{})
	if r.sess.Result() != before {
		t.Error("late tick rebuilt the result")
	}
	if len(attempts.rows) != 1 {
		t.Errorf("late tick recorded another attempt: %d rows", len(attempts.rows))
	}
}

func TestAbandonNeedsConfirmation(t *testing.T) {
	attempts := &fakeAttempts{}
	r := newTestScreen(t, testSet(2, 3), attempts)
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !r.HandlesEsc() {
		t.Fatal("a running exam must own the esc key")
	}

	r.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !r.confirmAbandon {
		t.Fatal("expected abandon confirmation")
	}

	// N keeps the exam running.
	r.Update(keyPress('n'))
	if r.confirmAbandon || r.sess.Mode() != exam.ModeInProgress {
		t.Fatal("N should resume the exam")
	}

	// Y abandons: no result, no attempt, screen pops.
	r.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := r.Update(keyPress('y'))
	msgs := drain(t, cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if _, ok := msgs[0].(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", msgs[0])
	}
	if r.sess.Result() != nil {
		t.Error("abandoned session must not carry a result")
	}
	if len(attempts.rows) != 0 {
		t.Error("abandoned session must not be recorded")
	}
}

func TestQuickExamLoadsFromSeed(t *testing.T) {
	seed := `[{"title": "Who yields?", "choice": ["You", "They"], "choiceAnswer": 0}]`
	src := catalog.NewQuickExamSource(&memSeeds{raw: []byte(seed)}, nil, slog.New(slog.DiscardHandler))

	r := NewQuick(Deps{
		Log:        slog.New(slog.DiscardHandler),
		QuickExams: src,
		Attempts:   &fakeAttempts{},
	})
	t.Cleanup(func() {
		if r.countdown != nil {
			r.countdown.Stop()
		}
	})

	cmd := r.Init()
	if cmd == nil {
		t.Fatal("quick exam must load in Init")
	}
	r.Update(cmd())

	if r.sess.Mode() != exam.ModeConfirming {
		t.Fatalf("mode = %v, want confirming", r.sess.Mode())
	}
	if !r.sess.ImmediateFeedback() {
		t.Error("quick exam must run with immediate feedback")
	}
	if r.Title() != "Quick exam" {
		t.Errorf("title = %q", r.Title())
	}
}

func TestQuickExamMissingSeed(t *testing.T) {
	src := catalog.NewQuickExamSource(&memSeeds{}, nil, slog.New(slog.DiscardHandler))
	r := NewQuick(Deps{
		Log:        slog.New(slog.DiscardHandler),
		QuickExams: src,
		Attempts:   &fakeAttempts{},
	})

	cmd := r.Init()
	r.Update(cmd())

	view := r.View(80, 24)
	if !strings.Contains(view, "No quick exam") {
		t.Error("expected a missing-quick-exam message")
	}
}
