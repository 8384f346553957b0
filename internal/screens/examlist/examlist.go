package examlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roadprep/roadprep/internal/access"
	"github.com/roadprep/roadprep/internal/account"
	"github.com/roadprep/roadprep/internal/api"
	"github.com/roadprep/roadprep/internal/catalog"
	"github.com/roadprep/roadprep/internal/exam"
	"github.com/roadprep/roadprep/internal/router"
	"github.com/roadprep/roadprep/internal/screen"
	"github.com/roadprep/roadprep/internal/screens/examrun"
	"github.com/roadprep/roadprep/internal/screens/login"
	"github.com/roadprep/roadprep/internal/store"
	"github.com/roadprep/roadprep/internal/ui/layout"
	"github.com/roadprep/roadprep/internal/ui/theme"
)

// Deps bundles the services the listing needs.
type Deps struct {
	Log        *slog.Logger
	Accounts   *account.Service
	Loader     *catalog.Loader
	QuickExams *catalog.QuickExamSource
	Resolver   *access.Resolver
	Attempts   store.AttemptRepo
	Backend    *api.Client
}

// setsLoadedMsg is sent when the catalog fetch completes.
type setsLoadedMsg struct {
	Sets []catalog.QuestionSet
	Err  error
}

// ListScreen shows the exam sets with lock state and lets the viewer pick
// one to start.
type ListScreen struct {
	deps   Deps
	viewer account.Viewer

	loading bool
	loadErr error
	// base holds the sets as loaded; annotated is rebuilt from base whenever
	// the viewer changes.
	base      []catalog.QuestionSet
	annotated []catalog.QuestionSet

	cursor int
	notice string
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the exam listing screen.
func New(deps Deps) *ListScreen {
	return &ListScreen{
		deps:    deps,
		viewer:  account.Guest(),
		loading: true,
	}
}

func (l *ListScreen) Init() tea.Cmd {
	return l.load()
}

func (l *ListScreen) Title() string {
	return "Practice exams"
}

func (l *ListScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "R", Description: "Refresh"},
	}
	if l.viewer.Identity != account.IdentityAuthenticated {
		hints = append(hints, layout.KeyHint{Key: "L", Description: "Sign in"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (l *ListScreen) load() tea.Cmd {
	loader := l.deps.Loader
	return func() tea.Msg {
		sets, err := loader.Sets(context.Background())
		return setsLoadedMsg{Sets: sets, Err: err}
	}
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setsLoadedMsg:
		l.loading = false
		l.loadErr = msg.Err
		l.base = msg.Sets
		l.reannotate()
		return l, nil

	case screen.ViewerChangedMsg:
		l.viewer = msg.Viewer
		l.notice = ""
		l.reannotate()
		return l, nil

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	return l, nil
}

func (l *ListScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
		l.notice = ""
	case "down", "j":
		if l.cursor < len(l.annotated)-1 {
			l.cursor++
		}
		l.notice = ""
	case "r":
		l.deps.Loader.Refresh()
		l.loading = true
		l.loadErr = nil
		l.notice = ""
		return l, l.load()
	case "l":
		if l.viewer.Identity != account.IdentityAuthenticated {
			return l, func() tea.Msg {
				return router.PushScreenMsg{Screen: login.New(l.deps.Accounts, l.deps.Log)}
			}
		}
	case "enter":
		return l.startSelected()
	}
	return l, nil
}

// startSelected runs the listing → confirming transition through the session
// state machine, so denial semantics live in one place.
func (l *ListScreen) startSelected() (screen.Screen, tea.Cmd) {
	if l.cursor < 0 || l.cursor >= len(l.annotated) {
		return l, nil
	}
	set := l.annotated[l.cursor]

	sess := exam.NewSession()
	check := func(s catalog.QuestionSet) error {
		return l.deps.Resolver.Check(s, l.viewer)
	}
	if err := sess.SelectSet(set, check); err != nil {
		var denied *access.DeniedError
		if errors.As(err, &denied) {
			switch denied.Reason {
			case access.ReasonLoginRequired:
				l.notice = "This set needs an account. Press L to sign in."
			case access.ReasonUpgradeRequired:
				l.notice = "This set is not part of your plan. Upgrade to unlock it."
			}
			return l, nil
		}
		l.notice = err.Error()
		return l, nil
	}

	return l, func() tea.Msg {
		return router.PushScreenMsg{Screen: examrun.New(sess, examrun.Deps{
			Log:        l.deps.Log,
			QuickExams: l.deps.QuickExams,
			Attempts:   l.deps.Attempts,
		})}
	}
}

func (l *ListScreen) reannotate() {
	if l.base == nil {
		l.annotated = nil
		return
	}
	annotated := l.deps.Resolver.Annotate(l.base, l.viewer)
	l.annotated = l.deps.Resolver.FilterVisible(annotated, l.viewer)
	if l.cursor >= len(l.annotated) {
		l.cursor = 0
	}
}

func (l *ListScreen) View(width, height int) string {
	if l.loading {
		return centered(width, height, theme.Hint.Render("Loading exam sets..."))
	}
	if l.loadErr != nil {
		return centered(width, height, renderLoadError(l.loadErr))
	}
	if len(l.annotated) == 0 {
		return centered(width, height, theme.Hint.Render("No exam sets available."))
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render("Choose a set to practice"))
	b.WriteString("\n\n")

	for i, set := range l.annotated {
		b.WriteString(renderRow(set, i == l.cursor))
		b.WriteString("\n")
	}

	if l.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Width(width).
			Align(lipgloss.Center).
			Render(l.notice))
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}

func renderRow(set catalog.QuestionSet, selected bool) string {
	detail := fmt.Sprintf("%s · %d questions · %d min",
		set.Difficulty, len(set.Questions), set.DurationMinutes)

	prefix := "    "
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = "  ▸ "
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	row := labelStyle.Render(prefix+set.Title()) + "  " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)

	if set.IsPremium {
		row += "  " + theme.LockedItem.Render("locked")
	}
	return row
}

func renderLoadError(err error) string {
	var netErr *api.ErrNetwork
	if errors.As(err, &netErr) {
		return theme.Incorrect.Render("Could not reach the server.") + "\n" +
			theme.Hint.Render("Check your connection and press R to retry.")
	}
	return theme.Incorrect.Render("The server sent an unexpected response.") + "\n" +
		theme.Hint.Render("Press R to retry.")
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
