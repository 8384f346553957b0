package examlist

import (
	"log/slog"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/roadprep/roadprep/internal/access"
	"github.com/roadprep/roadprep/internal/account"
	"github.com/roadprep/roadprep/internal/catalog"
	"github.com/roadprep/roadprep/internal/router"
	"github.com/roadprep/roadprep/internal/screen"
	"github.com/roadprep/roadprep/internal/screens/examrun"
)

func testSets(count int) []catalog.QuestionSet {
	sets := make([]catalog.QuestionSet, count)
	for i := range sets {
		sets[i] = catalog.QuestionSet{
			SetNumber: i + 1,
			Questions: []catalog.Question{
				{ID: 1, Text: "q", Choices: []catalog.Choice{
					{ID: "A", Text: "a", IsCorrect: true},
					{ID: "B", Text: "b"},
				}},
			},
		}
	}
	return sets
}

func newTestList(t *testing.T) *ListScreen {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	l := New(Deps{
		Log:      log,
		Resolver: access.NewResolver(log),
	})
	l.Update(setsLoadedMsg{Sets: testSets(4)})
	return l
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestGuestSeesOnlyOpenSets(t *testing.T) {
	l := newTestList(t)

	if len(l.annotated) != 1 {
		t.Fatalf("guest sees %d sets, want 1", len(l.annotated))
	}
	if l.annotated[0].SetNumber != 1 {
		t.Errorf("guest sees set %d, want 1", l.annotated[0].SetNumber)
	}
}

func TestAuthenticatedSeesLockedRows(t *testing.T) {
	l := newTestList(t)
	l.Update(screen.ViewerChangedMsg{Viewer: account.Authenticated(nil)})

	if len(l.annotated) != 4 {
		t.Fatalf("authenticated viewer sees %d sets, want 4", len(l.annotated))
	}
	if l.annotated[0].IsPremium {
		t.Error("set 1 must stay open")
	}
	if !l.annotated[1].IsPremium {
		t.Error("set 2 must be locked without a plan")
	}

	if !strings.Contains(l.View(80, 24), "locked") {
		t.Error("expected a locked badge in the listing")
	}
}

func TestBasicPlanUnlocksSetTwoOnly(t *testing.T) {
	l := newTestList(t)
	l.Update(screen.ViewerChangedMsg{Viewer: account.Authenticated(&account.Plan{Name: "basic"})})

	if l.annotated[1].IsPremium {
		t.Error("basic plan must unlock set 2")
	}
	if !l.annotated[2].IsPremium {
		t.Error("basic plan must not unlock set 3")
	}
}

func TestEnterOnOpenSetStartsExam(t *testing.T) {
	l := newTestList(t)

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*examrun.RunScreen); !ok {
		t.Errorf("pushed screen is %T, want the exam screen", push.Screen)
	}
}

func TestEnterOnLockedSetShowsUpgradeNotice(t *testing.T) {
	l := newTestList(t)
	l.Update(screen.ViewerChangedMsg{Viewer: account.Authenticated(nil)})

	l.Update(keyPress('j')) // move to set 2
	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("a denied set must not push a screen")
	}
	if !strings.Contains(l.notice, "Upgrade") {
		t.Errorf("notice = %q, want an upgrade prompt", l.notice)
	}

	// Moving the cursor clears the notice.
	l.Update(keyPress('k'))
	if l.notice != "" {
		t.Errorf("notice survived navigation: %q", l.notice)
	}
}

func TestSignInUnlocksAfterDenial(t *testing.T) {
	l := newTestList(t)
	l.Update(screen.ViewerChangedMsg{Viewer: account.Authenticated(nil)})
	l.Update(keyPress('j'))
	l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if l.notice == "" {
		t.Fatal("expected a denial notice first")
	}

	l.Update(screen.ViewerChangedMsg{Viewer: account.Authenticated(&account.Plan{Name: "classic"})})
	if l.notice != "" {
		t.Error("viewer change must clear the notice")
	}

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("classic plan must start set 2")
	}
}
