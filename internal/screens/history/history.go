package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roadprep/roadprep/internal/screen"
	"github.com/roadprep/roadprep/internal/store"
	"github.com/roadprep/roadprep/internal/ui/theme"
)

// defaultLimit caps how many attempts the screen lists.
const defaultLimit = 20

// attemptsLoadedMsg is sent when the attempt query completes.
type attemptsLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// HistoryScreen lists recent exam attempts from the local store.
type HistoryScreen struct {
	attempts store.AttemptRepo

	loading bool
	loadErr error
	rows    []store.Attempt
}

var _ screen.Screen = (*HistoryScreen)(nil)

// New creates the history screen.
func New(attempts store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{attempts: attempts, loading: true}
}

func (h *HistoryScreen) Init() tea.Cmd {
	repo := h.attempts
	return func() tea.Msg {
		attempts, err := repo.RecentAttempts(context.Background(), defaultLimit)
		return attemptsLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(attemptsLoadedMsg); ok {
		h.loading = false
		h.loadErr = m.Err
		h.rows = m.Attempts
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	if h.loading {
		return centered(width, height, theme.Hint.Render("Loading history..."))
	}
	if h.loadErr != nil {
		return centered(width, height, theme.Incorrect.Render("Could not read local history."))
	}
	if len(h.rows) == 0 {
		return centered(width, height, theme.Hint.Render("No attempts yet. Finish an exam to see it here."))
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render("Your recent attempts"))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-12s %-16s %7s %8s %10s", "DATE", "EXAM", "SCORE", "RESULT", "TIME")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")

	for _, a := range h.rows {
		verdict := theme.Incorrect.Render("  failed")
		if a.Passed {
			verdict = theme.Correct.Render("  passed")
		}
		row := fmt.Sprintf("  %-12s %-16s %6d%%  %s %8s",
			a.Timestamp.Format("Jan 2 15:04"),
			a.QuizTitle,
			a.Score,
			verdict,
			formatDuration(a.DurationSecs),
		)
		b.WriteString(theme.Body.Render(row))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
