package home

import (
	"log/slog"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/roadprep/roadprep/internal/account"
	"github.com/roadprep/roadprep/internal/router"
	"github.com/roadprep/roadprep/internal/screen"
	"github.com/roadprep/roadprep/internal/screens/examlist"
)

func newTestHome() *HomeScreen {
	return New(Deps{Log: slog.New(slog.DiscardHandler)})
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestEnterOpensExamListing(t *testing.T) {
	h := newTestHome()

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*examlist.ListScreen); !ok {
		t.Errorf("pushed screen is %T, want the exam listing", push.Screen)
	}
}

func TestQuitItem(t *testing.T) {
	h := newTestHome()

	// QUIT is the last menu item.
	for i := 0; i < 5; i++ {
		h.Update(keyPress('j'))
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewReflectsViewer(t *testing.T) {
	h := newTestHome()

	if !strings.Contains(h.View(80, 24), "guest") {
		t.Error("expected the guest banner by default")
	}

	h.Update(screen.ViewerChangedMsg{Viewer: account.Authenticated(&account.Plan{Name: "classic"})})
	if !strings.Contains(h.View(80, 24), "classic") {
		t.Error("expected the plan name after signing in")
	}
}
