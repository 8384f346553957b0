package examrun

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/roadprep/roadprep/internal/catalog"
	"github.com/roadprep/roadprep/internal/exam"
	"github.com/roadprep/roadprep/internal/ui/layout"
	"github.com/roadprep/roadprep/internal/ui/theme"
)

func (r *RunScreen) View(width, height int) string {
	if r.loading {
		return centered(width, height, theme.Hint.Render("Preparing quick exam..."))
	}
	if r.loadErr != nil {
		return centered(width, height, renderLoadError(r.loadErr))
	}
	if r.confirmAbandon {
		return centered(width, height, renderAbandonConfirm())
	}

	switch r.sess.Mode() {
	case exam.ModeConfirming:
		return centered(width, height, r.renderConfirm())
	case exam.ModeInProgress:
		return r.renderQuestion(width, height)
	default:
		return ""
	}
}

func (r *RunScreen) renderConfirm() string {
	set := r.sess.Set()

	var b strings.Builder
	b.WriteString(theme.Title.Render(set.Title()))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Questions   %d", len(set.Questions))))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Time limit  %d min", set.DurationMinutes)))
	if set.Difficulty != "" {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Level       %s", set.Difficulty)))
	}
	b.WriteString("\n\n")
	if r.sess.ImmediateFeedback() {
		b.WriteString(theme.Hint.Render("Answers are checked as you go and cannot be changed."))
	} else {
		b.WriteString(theme.Hint.Render("You can revise answers until you submit."))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.ButtonActive.Render("  ▸ Begin "))

	return theme.Card.Render(b.String())
}

func (r *RunScreen) renderQuestion(width, height int) string {
	q := r.sess.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(r.renderStatusLine(width))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 8).
		Render(fmt.Sprintf("%d. %s", q.ID, q.Text))
	b.WriteString(question)
	b.WriteString("\n")

	if q.ImageURL != "" {
		b.WriteString(theme.Hint.Render("Figure: " + q.ImageURL))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(r.choices.View())

	if a, ok := r.sess.AnswerFor(r.sess.CurrentIndex()); ok && r.sess.ImmediateFeedback() {
		b.WriteString("\n")
		if a.IsCorrect {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
		}
		if q.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(theme.Hint.Width(width - 8).Render(q.Explanation))
		}
	}

	content := lipgloss.NewStyle().Padding(1, 4).Render(b.String())
	return lipgloss.NewStyle().Height(height).Render(content)
}

func (r *RunScreen) renderStatusLine(width int) string {
	remaining := r.sess.RemainingSeconds()
	clock := layout.FormatClock(remaining)
	timerStyle := theme.TimerNormal
	if remaining <= 30 {
		timerStyle = theme.TimerLow
	}

	left := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d of %d · answered %d",
			r.sess.CurrentIndex()+1, r.sess.QuestionCount(), r.sess.AnsweredCount()))
	right := timerStyle.Render("⏱ " + clock)

	gap := width - 8 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderAbandonConfirm() string {
	return theme.Card.Render(
		theme.Body.Bold(true).Render("Abandon this exam?") + "\n\n" +
			theme.Hint.Render("Your progress will be discarded and nothing is recorded.") + "\n\n" +
			theme.Body.Render("[Y] Abandon    [N] Keep going"),
	)
}

func renderLoadError(err error) string {
	if errors.Is(err, catalog.ErrNoQuickExam) {
		return theme.Incorrect.Render("No quick exam available right now.") + "\n" +
			theme.Hint.Render("Connect once so a quick exam can be fetched.")
	}
	return theme.Incorrect.Render("Could not prepare the exam.") + "\n" +
		theme.Hint.Render(err.Error())
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
