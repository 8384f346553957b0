package home

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roadprep/roadprep/internal/access"
	"github.com/roadprep/roadprep/internal/account"
	accountscreen "github.com/roadprep/roadprep/internal/screens/accountinfo"
	"github.com/roadprep/roadprep/internal/screens/examlist"
	"github.com/roadprep/roadprep/internal/screens/examrun"
	"github.com/roadprep/roadprep/internal/screens/history"
	"github.com/roadprep/roadprep/internal/screens/lessonlist"

	"github.com/roadprep/roadprep/internal/api"
	"github.com/roadprep/roadprep/internal/catalog"
	"github.com/roadprep/roadprep/internal/router"
	"github.com/roadprep/roadprep/internal/screen"
	"github.com/roadprep/roadprep/internal/store"
	"github.com/roadprep/roadprep/internal/ui/components"
	"github.com/roadprep/roadprep/internal/ui/theme"
)

// Deps bundles the services the home screen hands to the screens it opens.
type Deps struct {
	Log        *slog.Logger
	Accounts   *account.Service
	Loader     *catalog.Loader
	QuickExams *catalog.QuickExamSource
	Resolver   *access.Resolver
	Attempts   store.AttemptRepo
	Backend    *api.Client
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps   Deps
	menu   components.Menu
	viewer account.Viewer
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps, viewer: account.Guest()}

	items := []components.MenuItem{
		{Label: "PRACTICE EXAMS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: examlist.New(examlist.Deps(deps))}
			}
		}},
		{Label: "QUICK EXAM", Detail: "instant feedback", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: examrun.NewQuick(examrun.Deps{
					Log:        deps.Log,
					QuickExams: deps.QuickExams,
					Attempts:   deps.Attempts,
				})}
			}
		}},
		{Label: "LESSONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessonlist.New(deps.Backend, deps.Log)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Attempts)}
			}
		}},
		{Label: "ACCOUNT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: accountscreen.New(deps.Accounts, deps.Log)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if v, ok := msg.(screen.ViewerChangedMsg); ok {
		h.viewer = v.Viewer
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	banner := theme.Title.Width(width).Render(strings.Join([]string{
		"",
		"┬─┐┌─┐┌─┐┌┬┐┌─┐┬─┐┌─┐┌─┐",
		"├┬┘│ │├─┤ ││├─┘├┬┘├┤ ├─┘",
		"┴└─└─┘┴ ┴─┴┘┴  ┴└─└─┘┴  ",
		"",
	}, "\n"))

	tagline := theme.Subtitle.Width(width).Render("Pass your theory test from the terminal")

	greeting := ""
	if h.viewer.Identity == account.IdentityAuthenticated {
		if name := h.viewer.PlanName(); name != "" {
			greeting = theme.Subtitle.Width(width).Render("Plan: " + name)
		} else {
			greeting = theme.Subtitle.Width(width).Render("Signed in")
		}
	} else {
		greeting = theme.Subtitle.Width(width).Render("Browsing as guest · set 1 is free")
	}

	menuBox := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		theme.Card.Render(h.menu.View()),
	)

	content := strings.Join([]string{banner, tagline, "", greeting, "", menuBox}, "\n")

	return lipgloss.NewStyle().Height(height).Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
