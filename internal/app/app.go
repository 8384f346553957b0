package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roadprep/roadprep/internal/access"
	"github.com/roadprep/roadprep/internal/account"
	"github.com/roadprep/roadprep/internal/api"
	"github.com/roadprep/roadprep/internal/catalog"
	"github.com/roadprep/roadprep/internal/router"
	"github.com/roadprep/roadprep/internal/screen"
	"github.com/roadprep/roadprep/internal/screens/examlist"
	"github.com/roadprep/roadprep/internal/screens/home"
	"github.com/roadprep/roadprep/internal/store"
	"github.com/roadprep/roadprep/internal/ui/layout"
)

// Options carries the wired services the screens depend on.
type Options struct {
	Log        *slog.Logger
	Accounts   *account.Service
	Loader     *catalog.Loader
	QuickExams *catalog.QuickExamSource
	Resolver   *access.Resolver
	Attempts   store.AttemptRepo
	Backend    *api.Client

	// StartAtExams opens the exam listing on top of home (the `exam`
	// subcommand uses this).
	StartAtExams bool
}

func (o Options) deps() home.Deps {
	return home.Deps{
		Log:        o.Log,
		Accounts:   o.Accounts,
		Loader:     o.Loader,
		QuickExams: o.QuickExams,
		Resolver:   o.Resolver,
		Attempts:   o.Attempts,
		Backend:    o.Backend,
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	viewer account.Viewer
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	r := router.New(home.New(opts.deps()))
	if opts.StartAtExams {
		r.Push(examlist.New(examlist.Deps(opts.deps())))
	}
	return AppModel{
		opts:   opts,
		router: r,
		viewer: account.Guest(),
	}
}

func (m AppModel) Init() tea.Cmd {
	accounts := m.opts.Accounts
	log := m.opts.Log
	return func() tea.Msg {
		viewer, err := accounts.Resolve(context.Background())
		if err != nil && log != nil {
			log.Warn("viewer resolution failed", "err", err)
		}
		return screen.ViewerChangedMsg{Viewer: viewer}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.ViewerChangedMsg:
		m.viewer = msg.Viewer
		return m, m.router.Update(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, accountStatus(m.viewer), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func accountStatus(v account.Viewer) string {
	if v.Identity != account.IdentityAuthenticated {
		return "guest  "
	}
	if name := v.PlanName(); name != "" {
		return name + "  "
	}
	return "signed in  "
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
