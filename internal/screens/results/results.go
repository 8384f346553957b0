package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roadprep/roadprep/internal/exam"
	"github.com/roadprep/roadprep/internal/screen"
	"github.com/roadprep/roadprep/internal/ui/components"
	"github.com/roadprep/roadprep/internal/ui/layout"
	"github.com/roadprep/roadprep/internal/ui/theme"
)

// ResultScreen shows the finished exam's score and a per-question review.
type ResultScreen struct {
	result *exam.Result

	reviewing bool
	cursor    int
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the results screen for one finished session.
func New(result *exam.Result) *ResultScreen {
	return &ResultScreen{result: result}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Results"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	if s.reviewing {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Question"},
			{Key: "R", Description: "Summary"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Review answers"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r":
		s.reviewing = !s.reviewing
		s.cursor = 0
	case "up", "k":
		if s.reviewing && s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.reviewing && s.cursor < len(s.result.Questions)-1 {
			s.cursor++
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	if s.result == nil {
		return ""
	}
	if s.reviewing {
		return s.renderReview(width, height)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.renderSummary(width))
}

func (s *ResultScreen) renderSummary(width int) string {
	r := s.result

	verdict := theme.Incorrect.Render("NOT PASSED")
	if r.Passed {
		verdict = theme.Correct.Render("PASSED")
	}

	bar := components.NewProgressBar("", float64(r.Score)/100, true, min(width-20, 48))

	var b strings.Builder
	b.WriteString(theme.Title.Render(r.QuizTitle))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("Score  %d", r.Score)))
	b.WriteString("   ")
	b.WriteString(verdict)
	b.WriteString("\n\n")
	b.WriteString(bar.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Correct     %d of %d", r.CorrectCount, r.TotalQuestions)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("Time spent  " + layout.FormatClock(r.TimeSpentSeconds)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press R to review each question."))

	return theme.Card.Render(b.String())
}

func (s *ResultScreen) renderReview(width, height int) string {
	if s.cursor < 0 || s.cursor >= len(s.result.Questions) {
		return ""
	}
	q := s.result.Questions[s.cursor]
	answer, answered := s.result.Answers[s.cursor]

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Review %d of %d", s.cursor+1, len(s.result.Questions))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 8).
		Render(q.Text))
	b.WriteString("\n\n")

	answeredID := ""
	if answered {
		answeredID = answer.ChoiceID
	}
	choices := components.NewChoiceList(q.Choices, answeredID, true)
	b.WriteString(choices.View())

	b.WriteString("\n")
	switch {
	case !answered:
		b.WriteString(theme.Hint.Render("Not answered."))
	case answer.IsCorrect:
		b.WriteString(theme.Correct.Render("You answered correctly."))
	default:
		b.WriteString(theme.Incorrect.Render("Your answer was wrong."))
	}

	if q.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width - 8).Render(q.Explanation))
	}

	content := lipgloss.NewStyle().Padding(1, 4).Render(b.String())
	return lipgloss.NewStyle().Height(height).Render(content)
}
