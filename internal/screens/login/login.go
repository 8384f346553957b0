package login

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roadprep/roadprep/internal/account"
	"github.com/roadprep/roadprep/internal/api"
	"github.com/roadprep/roadprep/internal/router"
	"github.com/roadprep/roadprep/internal/screen"
	"github.com/roadprep/roadprep/internal/ui/components"
	"github.com/roadprep/roadprep/internal/ui/layout"
	"github.com/roadprep/roadprep/internal/ui/theme"
)

// loginDoneMsg is sent when the login attempt completes.
type loginDoneMsg struct {
	Viewer account.Viewer
	Err    error
}

const (
	fieldEmail = iota
	fieldPassword
)

// LoginScreen posts credentials to the backend and persists the issued
// token.
type LoginScreen struct {
	accounts *account.Service
	log      *slog.Logger

	email    components.TextInput
	password components.TextInput
	focused  int

	submitting bool
	errMsg     string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen.
func New(accounts *account.Service, log *slog.Logger) *LoginScreen {
	return &LoginScreen{
		accounts: accounts,
		log:      log,
		email:    components.NewTextInput("you@example.com", false, 64),
		password: components.NewTextInput("password", true, 64),
	}
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.email.Focus()
}

func (l *LoginScreen) Title() string {
	return "Sign in"
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Sign in"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		return l.handleDone(msg)

	case tea.KeyMsg:
		if l.submitting {
			return l, nil
		}
		switch msg.String() {
		case "tab", "shift+tab":
			return l, l.toggleFocus()
		case "enter":
			if l.focused == fieldEmail {
				return l, l.toggleFocus()
			}
			return l.submit()
		}
	}

	var cmd tea.Cmd
	if l.focused == fieldEmail {
		l.email, cmd = l.email.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *LoginScreen) toggleFocus() tea.Cmd {
	if l.focused == fieldEmail {
		l.focused = fieldPassword
		l.email.Blur()
		return l.password.Focus()
	}
	l.focused = fieldEmail
	l.password.Blur()
	return l.email.Focus()
}

func (l *LoginScreen) submit() (screen.Screen, tea.Cmd) {
	email := strings.TrimSpace(l.email.Value())
	password := l.password.Value()
	if email == "" || password == "" {
		l.errMsg = "Enter your email and password."
		return l, nil
	}

	l.submitting = true
	l.errMsg = ""
	accounts := l.accounts

	return l, func() tea.Msg {
		ctx := context.Background()
		if err := accounts.Login(ctx, email, password); err != nil {
			return loginDoneMsg{Err: err}
		}
		viewer, err := accounts.Resolve(ctx)
		return loginDoneMsg{Viewer: viewer, Err: err}
	}
}

func (l *LoginScreen) handleDone(msg loginDoneMsg) (screen.Screen, tea.Cmd) {
	l.submitting = false
	if msg.Err != nil {
		var unauth *api.ErrUnauthorized
		if errors.As(msg.Err, &unauth) {
			l.errMsg = "Invalid email or password."
		} else {
			l.errMsg = "Could not reach the server. Try again."
			if l.log != nil {
				l.log.Warn("login failed", "err", msg.Err)
			}
		}
		return l, nil
	}

	// Announce the new viewer to the whole stack, then leave this screen.
	viewer := msg.Viewer
	return l, tea.Batch(
		func() tea.Msg { return screen.ViewerChangedMsg{Viewer: viewer} },
		func() tea.Msg { return router.PopScreenMsg{} },
	)
}

func (l *LoginScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Sign in to RoadPrep"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Email"))
	b.WriteString("\n")
	b.WriteString(l.email.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Password"))
	b.WriteString("\n")
	b.WriteString(l.password.View())
	b.WriteString("\n\n")

	switch {
	case l.submitting:
		b.WriteString(theme.Hint.Render("Signing in..."))
	case l.errMsg != "":
		b.WriteString(theme.Incorrect.Render(l.errMsg))
	default:
		b.WriteString(theme.Hint.Render("Your password is sent only to the RoadPrep API."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}
