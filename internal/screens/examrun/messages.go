package examrun

import "github.com/roadprep/roadprep/internal/catalog"

// quickReadyMsg is sent when the quick-exam set has been built.
type quickReadyMsg struct {
	Set catalog.QuestionSet
	Err error
}

// tickMsg is sent for every second the countdown delivers.
type tickMsg struct{}
