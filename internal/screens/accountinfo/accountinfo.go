package accountinfo

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roadprep/roadprep/internal/access"
	"github.com/roadprep/roadprep/internal/account"
	"github.com/roadprep/roadprep/internal/router"
	"github.com/roadprep/roadprep/internal/screen"
	"github.com/roadprep/roadprep/internal/screens/login"
	"github.com/roadprep/roadprep/internal/ui/layout"
	"github.com/roadprep/roadprep/internal/ui/theme"
)

// infoMsg carries the resolved viewer and token expiry.
type infoMsg struct {
	Viewer account.Viewer
	Expiry time.Time
}

// AccountScreen shows who the viewer is and lets them sign in or out.
type AccountScreen struct {
	accounts *account.Service
	log      *slog.Logger

	loading bool
	viewer  account.Viewer
	expiry  time.Time
}

var _ screen.Screen = (*AccountScreen)(nil)
var _ screen.KeyHintProvider = (*AccountScreen)(nil)

// New creates the account screen.
func New(accounts *account.Service, log *slog.Logger) *AccountScreen {
	return &AccountScreen{accounts: accounts, log: log, loading: true}
}

func (a *AccountScreen) Init() tea.Cmd {
	return a.resolve()
}

func (a *AccountScreen) resolve() tea.Cmd {
	accounts := a.accounts
	log := a.log
	return func() tea.Msg {
		viewer, err := accounts.Resolve(context.Background())
		if err != nil && log != nil {
			log.Warn("viewer resolution failed", "err", err)
		}
		return infoMsg{Viewer: viewer, Expiry: accounts.TokenExpiry(context.Background())}
	}
}

func (a *AccountScreen) Title() string {
	return "Account"
}

func (a *AccountScreen) KeyHints() []layout.KeyHint {
	if a.viewer.Identity == account.IdentityAuthenticated {
		return []layout.KeyHint{
			{Key: "O", Description: "Sign out"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "L", Description: "Sign in"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AccountScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case infoMsg:
		a.loading = false
		a.viewer = msg.Viewer
		a.expiry = msg.Expiry
		return a, nil

	case screen.ViewerChangedMsg:
		a.viewer = msg.Viewer
		return a, a.resolve()

	case tea.KeyMsg:
		switch msg.String() {
		case "l":
			if a.viewer.Identity != account.IdentityAuthenticated {
				return a, func() tea.Msg {
					return router.PushScreenMsg{Screen: login.New(a.accounts, a.log)}
				}
			}
		case "o":
			if a.viewer.Identity == account.IdentityAuthenticated {
				return a, a.signOut()
			}
		}
	}
	return a, nil
}

func (a *AccountScreen) signOut() tea.Cmd {
	accounts := a.accounts
	log := a.log
	return func() tea.Msg {
		if err := accounts.Logout(context.Background()); err != nil && log != nil {
			log.Warn("sign out failed", "err", err)
		}
		return screen.ViewerChangedMsg{Viewer: account.Guest()}
	}
}

func (a *AccountScreen) View(width, height int) string {
	if a.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Checking your account..."))
	}

	var b strings.Builder
	if a.viewer.Identity == account.IdentityAuthenticated {
		b.WriteString(theme.Title.Render("Signed in"))
		b.WriteString("\n\n")

		plan := a.viewer.PlanName()
		if plan == "" {
			plan = "none"
		}
		b.WriteString(theme.Body.Render("Plan    " + plan))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Access  " + tierLabel(a.viewer)))
		if !a.expiry.IsZero() {
			b.WriteString("\n")
			b.WriteString(theme.Body.Render("Session valid until " + a.expiry.Format("Jan 2, 2006 15:04")))
		}
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press O to sign out."))
	} else {
		b.WriteString(theme.Title.Render("Guest"))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Exam set 1 and the quick exam are free."))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Sign in to unlock the rest of the catalog."))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press L to sign in."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}

func tierLabel(v account.Viewer) string {
	switch access.ViewerTier(v, nil) {
	case access.TierFull:
		return "all exam sets"
	case access.TierBasic:
		return "sets 1 and 2"
	default:
		return "set 1 only"
	}
}
