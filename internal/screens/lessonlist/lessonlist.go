package lessonlist

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roadprep/roadprep/internal/api"
	"github.com/roadprep/roadprep/internal/screen"
	"github.com/roadprep/roadprep/internal/ui/layout"
	"github.com/roadprep/roadprep/internal/ui/theme"
)

// lessonsLoadedMsg is sent when the lesson fetch completes.
type lessonsLoadedMsg struct {
	Lessons []api.Lesson
	Err     error
}

// LessonScreen lists study lessons and shows one at a time. Read-only.
type LessonScreen struct {
	backend *api.Client
	log     *slog.Logger

	loading bool
	loadErr error
	lessons []api.Lesson

	cursor  int
	reading bool
	scroll  int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.EscHandler = (*LessonScreen)(nil)

// New creates the lessons screen.
func New(backend *api.Client, log *slog.Logger) *LessonScreen {
	return &LessonScreen{backend: backend, log: log, loading: true}
}

func (l *LessonScreen) Init() tea.Cmd {
	backend := l.backend
	return func() tea.Msg {
		lessons, err := backend.Lessons(context.Background())
		return lessonsLoadedMsg{Lessons: lessons, Err: err}
	}
}

func (l *LessonScreen) Title() string {
	if l.reading && l.cursor < len(l.lessons) {
		return l.lessons[l.cursor].Title
	}
	return "Lessons"
}

// HandlesEsc: esc in the reading view goes back to the list, not off the
// screen.
func (l *LessonScreen) HandlesEsc() bool {
	return l.reading
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	if l.reading {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Lesson list"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonsLoadedMsg:
		l.loading = false
		l.loadErr = msg.Err
		l.lessons = msg.Lessons
		return l, nil

	case tea.KeyMsg:
		l.handleKey(msg)
	}
	return l, nil
}

func (l *LessonScreen) handleKey(msg tea.KeyMsg) {
	if l.reading {
		switch msg.String() {
		case "up", "k":
			if l.scroll > 0 {
				l.scroll--
			}
		case "down", "j":
			l.scroll++
		case "esc":
			l.reading = false
			l.scroll = 0
		}
		return
	}

	switch msg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.lessons)-1 {
			l.cursor++
		}
	case "enter":
		if l.cursor < len(l.lessons) {
			l.reading = true
			l.scroll = 0
		}
	}
}

func (l *LessonScreen) View(width, height int) string {
	if l.loading {
		return centered(width, height, theme.Hint.Render("Loading lessons..."))
	}
	if l.loadErr != nil {
		return centered(width, height, renderLoadError(l.loadErr))
	}
	if len(l.lessons) == 0 {
		return centered(width, height, theme.Hint.Render("No lessons published yet."))
	}
	if l.reading {
		return l.renderLesson(width, height)
	}
	return l.renderList(width, height)
}

func (l *LessonScreen) renderList(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render("Study before you practice"))
	b.WriteString("\n\n")

	for i, lesson := range l.lessons {
		if i == l.cursor {
			b.WriteString(theme.Selected.Render("  ▸ " + lesson.Title))
		} else {
			b.WriteString(theme.Unselected.Render("    " + lesson.Title))
		}
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().Height(height).Render(b.String())
}

func (l *LessonScreen) renderLesson(width, height int) string {
	lesson := l.lessons[l.cursor]

	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 8).
		Render(lesson.Body)

	lines := strings.Split(body, "\n")
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	if l.scroll > len(lines)-1 {
		l.scroll = len(lines) - 1
	}
	end := l.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(lesson.Title))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines[l.scroll:end], "\n"))

	content := lipgloss.NewStyle().Padding(1, 4).Render(b.String())
	return lipgloss.NewStyle().Height(height).Render(content)
}

func renderLoadError(err error) string {
	var netErr *api.ErrNetwork
	if errors.As(err, &netErr) {
		return theme.Incorrect.Render("Could not reach the server.") + "\n" +
			theme.Hint.Render("Check your connection and try again.")
	}
	return theme.Incorrect.Render("The server sent an unexpected response.")
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
