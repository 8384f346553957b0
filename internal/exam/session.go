package exam

import (
	"github.com/roadprep/roadprep/internal/catalog"
)

// SelectSet moves listing → confirming if the checker permits the set.
// The quick-exam set bypasses the checker: it is always permitted.
// On denial the session stays in listing mode and the checker's error is
// returned for the UI to turn into a login or upgrade prompt.
func (s *Session) SelectSet(set catalog.QuestionSet, check AccessChecker) error {
	if s.mode != ModeListing {
		return &InvalidTransitionError{Op: "select set", Mode: s.mode}
	}
	if set.SetNumber != catalog.QuickExamSetNumber && check != nil {
		if err := check(set); err != nil {
			return err
		}
	}
	s.set = set
	s.mode = ModeConfirming
	s.immediateFeedback = set.SetNumber == 1 || set.SetNumber == catalog.QuickExamSetNumber
	return nil
}

// ConfirmStart moves confirming → in-progress: answers reset, the pointer
// returns to the first question, and the countdown value is armed. The
// caller owns actually driving Tick (via a Countdown or otherwise).
func (s *Session) ConfirmStart() error {
	if s.mode != ModeConfirming {
		return &InvalidTransitionError{Op: "confirm start", Mode: s.mode}
	}
	s.mode = ModeInProgress
	s.answers = make(map[int]Answer)
	s.currentIndex = 0
	s.totalSeconds = s.set.DurationMinutes * 60
	s.remainingSeconds = s.totalSeconds
	s.elapsedSeconds = 0
	return nil
}

// Cancel moves confirming → listing. No exam state was created.
func (s *Session) Cancel() error {
	if s.mode != ModeConfirming {
		return &InvalidTransitionError{Op: "cancel", Mode: s.mode}
	}
	s.mode = ModeListing
	s.set = catalog.QuestionSet{}
	s.immediateFeedback = false
	return nil
}

// SelectChoice records choiceID as the answer to the current question.
// With immediate feedback on, the first recorded answer is locked in and
// later calls for the same question are no-ops. Unknown choice ids are
// ignored: they indicate a caller bug, not a user condition.
func (s *Session) SelectChoice(choiceID string) error {
	if s.mode != ModeInProgress {
		return &InvalidTransitionError{Op: "select choice", Mode: s.mode}
	}
	q := s.CurrentQuestion()
	if q == nil {
		return nil
	}
	if s.immediateFeedback {
		if _, answered := s.answers[s.currentIndex]; answered {
			return nil
		}
	}
	if !hasChoice(q, choiceID) {
		return nil
	}
	correctID := q.CorrectChoiceID()
	s.answers[s.currentIndex] = Answer{
		ChoiceID: choiceID,
		// correctID is "" when no choice is marked correct (bad source
		// data); then every answer scores false.
		IsCorrect: correctID != "" && choiceID == correctID,
	}
	return nil
}

// Advance moves to the next question; on the last question it finishes the
// session instead.
func (s *Session) Advance() error {
	if s.mode != ModeInProgress {
		return &InvalidTransitionError{Op: "advance", Mode: s.mode}
	}
	if s.currentIndex >= len(s.set.Questions)-1 {
		s.finish(false)
		return nil
	}
	s.currentIndex++
	return nil
}

// Retreat moves to the previous question; no-op on the first.
func (s *Session) Retreat() error {
	if s.mode != ModeInProgress {
		return &InvalidTransitionError{Op: "retreat", Mode: s.mode}
	}
	if s.currentIndex > 0 {
		s.currentIndex--
	}
	return nil
}

// JumpTo sets the question pointer directly. Out-of-range targets are
// ignored. Any previously recorded answer for the target is visible again
// through AnswerFor.
func (s *Session) JumpTo(index int) error {
	if s.mode != ModeInProgress {
		return &InvalidTransitionError{Op: "jump", Mode: s.mode}
	}
	if index < 0 || index >= len(s.set.Questions) {
		return nil
	}
	s.currentIndex = index
	return nil
}

// Tick consumes one second of the countdown. At zero the session finishes
// as a timeout, at most once. Ticks outside in-progress mode are no-ops,
// which is what keeps a stale timer from a discarded session harmless.
func (s *Session) Tick() {
	if s.mode != ModeInProgress {
		return
	}
	if s.remainingSeconds > 0 {
		s.remainingSeconds--
	}
	if s.remainingSeconds <= 0 {
		s.finish(true)
	}
}

// Finish ends the session by user action. Idempotent: once finished, later
// calls (for example a timer racing a manual submit) change nothing.
func (s *Session) Finish() error {
	if s.mode == ModeFinished {
		return nil
	}
	if s.mode != ModeInProgress {
		return &InvalidTransitionError{Op: "finish", Mode: s.mode}
	}
	s.finish(false)
	return nil
}

// Abandon discards an in-progress or confirming session without producing a
// result. No partial score is recorded anywhere.
func (s *Session) Abandon() {
	if s.mode == ModeFinished || s.mode == ModeListing {
		return
	}
	s.mode = ModeListing
	s.set = catalog.QuestionSet{}
	s.answers = nil
	s.remainingSeconds = 0
	s.immediateFeedback = false
}

// finish is the single exit into finished mode. timeout finishes count the
// full duration as elapsed; manual finishes count duration minus remaining.
func (s *Session) finish(timeout bool) {
	if s.finished {
		return
	}
	s.finished = true
	s.mode = ModeFinished
	if timeout {
		s.elapsedSeconds = s.totalSeconds
	} else {
		s.elapsedSeconds = s.totalSeconds - s.remainingSeconds
	}
	r := BuildResult(s)
	s.result = &r
}

func hasChoice(q *catalog.Question, choiceID string) bool {
	for _, c := range q.Choices {
		if c.ID == choiceID {
			return true
		}
	}
	return false
}
