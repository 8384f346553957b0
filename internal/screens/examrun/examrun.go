package examrun

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/roadprep/roadprep/internal/catalog"
	"github.com/roadprep/roadprep/internal/exam"
	"github.com/roadprep/roadprep/internal/router"
	"github.com/roadprep/roadprep/internal/screen"
	"github.com/roadprep/roadprep/internal/screens/results"
	"github.com/roadprep/roadprep/internal/store"
	"github.com/roadprep/roadprep/internal/ui/components"
	"github.com/roadprep/roadprep/internal/ui/layout"
)

// Deps bundles the services the exam screen needs.
type Deps struct {
	Log        *slog.Logger
	QuickExams *catalog.QuickExamSource
	Attempts   store.AttemptRepo
}

// RunScreen drives one exam session from confirmation to finish. It owns the
// session state machine and its countdown; the countdown is stopped on every
// exit path so a discarded timer can never fire into a later session.
type RunScreen struct {
	deps Deps
	sess *exam.Session

	countdown *exam.Countdown
	choices   components.ChoiceList

	quick   bool
	loading bool
	loadErr error

	confirmAbandon bool
}

var _ screen.Screen = (*RunScreen)(nil)
var _ screen.KeyHintProvider = (*RunScreen)(nil)
var _ screen.EscHandler = (*RunScreen)(nil)

// New creates the screen for a session that has already selected its set
// (the listing ran the access check through SelectSet).
func New(sess *exam.Session, deps Deps) *RunScreen {
	return &RunScreen{deps: deps, sess: sess}
}

// NewQuick creates the screen for the quick exam. The set is built in Init
// from the local seed (or the backend on a cold start) and bypasses the
// access table.
func NewQuick(deps Deps) *RunScreen {
	return &RunScreen{
		deps:    deps,
		sess:    exam.NewSession(),
		quick:   true,
		loading: true,
	}
}

func (r *RunScreen) Init() tea.Cmd {
	if !r.quick {
		return nil
	}
	src := r.deps.QuickExams
	return func() tea.Msg {
		set, err := src.Set(context.Background())
		return quickReadyMsg{Set: set, Err: err}
	}
}

func (r *RunScreen) Title() string {
	if title := r.sess.Set().Title(); r.sess.Mode() != exam.ModeListing && title != "" {
		return title
	}
	return "Exam"
}

// HandlesEsc keeps the global esc-pops-screen shortcut away from a running
// exam: confirming cancels through the state machine, in-progress goes
// through the abandon confirmation.
func (r *RunScreen) HandlesEsc() bool {
	mode := r.sess.Mode()
	return mode == exam.ModeInProgress || mode == exam.ModeConfirming
}

func (r *RunScreen) KeyHints() []layout.KeyHint {
	if r.confirmAbandon {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch r.sess.Mode() {
	case exam.ModeConfirming:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case exam.ModeInProgress:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "S", Description: "Submit exam"},
			{Key: "Esc", Description: "Abandon"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (r *RunScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quickReadyMsg:
		return r.handleQuickReady(msg)

	case tickMsg:
		return r.handleTick()

	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	return r, nil
}

func (r *RunScreen) handleQuickReady(msg quickReadyMsg) (screen.Screen, tea.Cmd) {
	r.loading = false
	if msg.Err != nil {
		r.loadErr = msg.Err
		return r, nil
	}
	// nil checker: the quick exam is exempt from the access table.
	if err := r.sess.SelectSet(msg.Set, nil); err != nil {
		r.loadErr = err
		return r, nil
	}
	return r, nil
}

func (r *RunScreen) handleTick() (screen.Screen, tea.Cmd) {
	r.sess.Tick()
	if r.sess.Mode() == exam.ModeFinished {
		return r.finish()
	}
	return r, r.waitForTick()
}

func (r *RunScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if r.confirmAbandon {
		switch msg.String() {
		case "y", "Y":
			r.countdown.Stop()
			r.sess.Abandon()
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			r.confirmAbandon = false
		}
		return r, nil
	}

	switch r.sess.Mode() {
	case exam.ModeConfirming:
		return r.handleConfirmingKey(msg)
	case exam.ModeInProgress:
		return r.handleInProgressKey(msg)
	}
	return r, nil
}

func (r *RunScreen) handleConfirmingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := r.sess.ConfirmStart(); err != nil {
			return r, nil
		}
		r.countdown = exam.NewCountdown(0)
		r.countdown.Start()
		r.syncChoices()
		return r, r.waitForTick()
	case "esc":
		_ = r.sess.Cancel()
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *RunScreen) handleInProgressKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc":
		r.confirmAbandon = true

	case "up", "k", "down", "j":
		var cmd tea.Cmd
		r.choices, cmd = r.choices.Update(msg)
		return r, cmd

	case "enter":
		_ = r.sess.SelectChoice(r.choices.CursorChoiceID())
		r.syncChoices()

	case "left", "h", "p":
		_ = r.sess.Retreat()
		r.syncChoices()

	case "right", "l", "n":
		_ = r.sess.Advance()
		if r.sess.Mode() == exam.ModeFinished {
			return r.finish()
		}
		r.syncChoices()

	case "s":
		_ = r.sess.Finish()
		if r.sess.Mode() == exam.ModeFinished {
			return r.finish()
		}

	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			_ = r.sess.JumpTo(int(key[0] - '1'))
			r.syncChoices()
		}
	}
	return r, nil
}

// finish tears down the countdown, records the attempt, and swaps in the
// results screen. Losing the attempt write costs a history row, not the
// result on screen.
func (r *RunScreen) finish() (screen.Screen, tea.Cmd) {
	if r.countdown != nil {
		r.countdown.Stop()
	}
	result := r.sess.Result()
	setNumber := r.sess.Set().SetNumber

	return r, tea.Batch(
		r.saveAttempt(result, setNumber),
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(result)}
		},
	)
}

func (r *RunScreen) saveAttempt(result *exam.Result, setNumber int) tea.Cmd {
	repo := r.deps.Attempts
	log := r.deps.Log
	return func() tea.Msg {
		if repo == nil || result == nil {
			return nil
		}
		err := repo.AppendAttempt(context.Background(), store.AttemptData{
			AttemptID:      uuid.NewString(),
			SetNumber:      setNumber,
			QuizTitle:      result.QuizTitle,
			TotalQuestions: result.TotalQuestions,
			CorrectCount:   result.CorrectCount,
			Score:          result.Score,
			Passed:         result.Passed,
			DurationSecs:   result.TimeSpentSeconds,
		})
		if err != nil && log != nil {
			log.Warn("attempt not recorded", "err", err)
		}
		return nil
	}
}

// waitForTick blocks on the countdown channel and converts one delivery into
// a tickMsg. A closed channel (Stop) produces no message.
func (r *RunScreen) waitForTick() tea.Cmd {
	c := r.countdown.C()
	return func() tea.Msg {
		if _, ok := <-c; !ok {
			return nil
		}
		return tickMsg{}
	}
}

// syncChoices rebuilds the choice list for the current question, restoring
// any recorded answer and revealing feedback when the session is in
// immediate-feedback mode.
func (r *RunScreen) syncChoices() {
	q := r.sess.CurrentQuestion()
	if q == nil {
		r.choices = components.ChoiceList{}
		return
	}
	answeredID := ""
	revealed := false
	if a, ok := r.sess.AnswerFor(r.sess.CurrentIndex()); ok {
		answeredID = a.ChoiceID
		revealed = r.sess.ImmediateFeedback()
	}
	r.choices = components.NewChoiceList(q.Choices, answeredID, revealed)
}
