package exam

import "github.com/roadprep/roadprep/internal/catalog"

// ViewMode is the session's lifecycle state.
type ViewMode int

const (
	// ModeListing: no set selected, nothing running.
	ModeListing ViewMode = iota
	// ModeConfirming: a set is selected, waiting for the viewer to start.
	ModeConfirming
	// ModeInProgress: the countdown is running and answers are recorded.
	ModeInProgress
	// ModeFinished: terminal for this session instance.
	ModeFinished
)

func (m ViewMode) String() string {
	switch m {
	case ModeConfirming:
		return "confirming"
	case ModeInProgress:
		return "in-progress"
	case ModeFinished:
		return "finished"
	default:
		return "listing"
	}
}

// Answer records one choice made during the session.
type Answer struct {
	ChoiceID  string
	IsCorrect bool
}

// AccessChecker decides whether the viewer may start a set. A nil return
// permits; a *access.DeniedError (or any error) keeps the session in
// listing mode.
type AccessChecker func(set catalog.QuestionSet) error

// Session is the live exam state machine. It is not safe for concurrent use;
// all mutation is expected to happen on the UI event loop. The active set is
// shared, never mutated.
type Session struct {
	set  catalog.QuestionSet
	mode ViewMode

	currentIndex     int
	answers          map[int]Answer
	remainingSeconds int
	totalSeconds     int
	elapsedSeconds   int

	// immediateFeedback locks in the first answer per question and reveals
	// correctness right away. On for the free set and the quick exam.
	immediateFeedback bool

	finished bool
	result   *Result
}

// NewSession creates a session in listing mode.
func NewSession() *Session {
	return &Session{mode: ModeListing}
}

// Mode returns the current view mode.
func (s *Session) Mode() ViewMode { return s.mode }

// Set returns the active question set.
func (s *Session) Set() catalog.QuestionSet { return s.set }

// CurrentIndex returns the zero-based index of the question on screen.
func (s *Session) CurrentIndex() int { return s.currentIndex }

// CurrentQuestion returns the question at the current index, or nil when no
// set is active.
func (s *Session) CurrentQuestion() *catalog.Question {
	if s.currentIndex < 0 || s.currentIndex >= len(s.set.Questions) {
		return nil
	}
	return &s.set.Questions[s.currentIndex]
}

// QuestionCount returns the number of questions in the active set.
func (s *Session) QuestionCount() int { return len(s.set.Questions) }

// RemainingSeconds returns the countdown value.
func (s *Session) RemainingSeconds() int { return s.remainingSeconds }

// ImmediateFeedback reports whether correctness is revealed per answer.
func (s *Session) ImmediateFeedback() bool { return s.immediateFeedback }

// AnswerFor returns the recorded answer for a question index, if any.
func (s *Session) AnswerFor(index int) (Answer, bool) {
	a, ok := s.answers[index]
	return a, ok
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// Result returns the result built at finish, nil before then.
func (s *Session) Result() *Result { return s.result }
