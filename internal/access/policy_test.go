package access

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/roadprep/roadprep/internal/account"
	"github.com/roadprep/roadprep/internal/catalog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func threeSets(questionsPerSet int) []catalog.QuestionSet {
	sets := make([]catalog.QuestionSet, 3)
	for i := range sets {
		sets[i].SetNumber = i + 1
		for q := 0; q < questionsPerSet; q++ {
			sets[i].Questions = append(sets[i].Questions, catalog.Question{
				ID:      q + 1,
				Choices: []catalog.Choice{{ID: "A", IsCorrect: true}, {ID: "B"}},
			})
		}
	}
	return sets
}

func planned(name string) account.Viewer {
	return account.Authenticated(&account.Plan{Name: name})
}

func TestParseTier(t *testing.T) {
	log := discardLogger()
	cases := []struct {
		plan string
		want Tier
	}{
		{"", TierFree},
		{"no active plan", TierFree},
		{"basic", TierBasic},
		{"Basic", TierBasic},
		{"classic", TierFull},
		{"unique", TierFull},
		{"platinum", TierFree}, // unknown → free, never broadened silently
	}
	for _, tc := range cases {
		if got := ParseTier(tc.plan, log); got != tc.want {
			t.Errorf("ParseTier(%q) = %v, want %v", tc.plan, got, tc.want)
		}
	}
}

// TestDecisionTable walks every viewer row of the policy table against sets
// 1-3 and checks the lock flags match exactly.
func TestDecisionTable(t *testing.T) {
	r := NewResolver(discardLogger())

	rows := []struct {
		name   string
		viewer account.Viewer
		open   [3]bool // set 1, set 2, set 3
	}{
		{"guest", account.Guest(), [3]bool{true, false, false}},
		{"authenticated no plan", account.Authenticated(nil), [3]bool{true, false, false}},
		{"no active plan", planned("no active plan"), [3]bool{true, false, false}},
		{"basic", planned("basic"), [3]bool{true, true, false}},
		{"classic", planned("classic"), [3]bool{true, true, true}},
		{"unique", planned("unique"), [3]bool{true, true, true}},
		{"unrecognized plan", planned("gold-deluxe"), [3]bool{true, false, false}},
	}

	for _, row := range rows {
		t.Run(row.name, func(t *testing.T) {
			annotated := r.Annotate(threeSets(5), row.viewer)
			for i, set := range annotated {
				wantLocked := !row.open[i]
				if set.IsPremium != wantLocked || set.RequiresLogin != wantLocked {
					t.Errorf("set %d: isPremium=%v requiresLogin=%v, want locked=%v",
						set.SetNumber, set.IsPremium, set.RequiresLogin, wantLocked)
				}
			}
		})
	}
}

func TestAnnotate_DerivedFields(t *testing.T) {
	r := NewResolver(discardLogger())
	annotated := r.Annotate(threeSets(25), account.Guest())

	for _, set := range annotated {
		// ceil(25 * 0.05) = 2 minutes.
		if set.DurationMinutes != 2 {
			t.Errorf("set %d: duration = %d, want 2", set.SetNumber, set.DurationMinutes)
		}
	}
	if annotated[0].Difficulty != catalog.DifficultyBeginner {
		t.Errorf("set 1 difficulty = %s", annotated[0].Difficulty)
	}
	if annotated[1].Difficulty != catalog.DifficultyIntermediate {
		t.Errorf("set 2 difficulty = %s", annotated[1].Difficulty)
	}
	if annotated[2].Difficulty != catalog.DifficultyExam {
		t.Errorf("set 3 difficulty = %s", annotated[2].Difficulty)
	}
}

func TestAnnotate_DoesNotMutateInput(t *testing.T) {
	r := NewResolver(discardLogger())
	sets := threeSets(5)
	_ = r.Annotate(sets, account.Guest())
	for _, set := range sets {
		if set.IsPremium || set.RequiresLogin || set.DurationMinutes != 0 {
			t.Fatal("Annotate mutated its input slice")
		}
	}
}

func TestFilterVisible(t *testing.T) {
	r := NewResolver(discardLogger())

	guestSets := r.Annotate(threeSets(5), account.Guest())
	visible := r.FilterVisible(guestSets, account.Guest())
	if len(visible) != 1 || visible[0].SetNumber != 1 {
		t.Errorf("guest sees %d sets, want only set 1", len(visible))
	}

	authViewer := planned("basic")
	authSets := r.Annotate(threeSets(5), authViewer)
	visible = r.FilterVisible(authSets, authViewer)
	if len(visible) != 3 {
		t.Errorf("authenticated viewer sees %d sets, want all 3", len(visible))
	}
}

func TestCheck_DenialReasons(t *testing.T) {
	r := NewResolver(discardLogger())
	sets := threeSets(5)

	var denied *DeniedError

	err := r.Check(sets[1], account.Guest())
	if !errors.As(err, &denied) || denied.Reason != ReasonLoginRequired {
		t.Errorf("guest on set 2: %v, want login-required", err)
	}

	err = r.Check(sets[2], planned("basic"))
	if !errors.As(err, &denied) || denied.Reason != ReasonUpgradeRequired {
		t.Errorf("basic on set 3: %v, want upgrade-required", err)
	}

	if err := r.Check(sets[0], account.Guest()); err != nil {
		t.Errorf("guest on set 1: %v, want open", err)
	}
	if err := r.Check(sets[2], planned("unique")); err != nil {
		t.Errorf("unique on set 3: %v, want open", err)
	}
}
