package access

import (
	"fmt"
	"log/slog"

	"github.com/roadprep/roadprep/internal/account"
	"github.com/roadprep/roadprep/internal/catalog"
)

// DeniedReason says which remedy unlocks a denied set.
type DeniedReason string

const (
	ReasonLoginRequired   DeniedReason = "login-required"
	ReasonUpgradeRequired DeniedReason = "upgrade-required"
)

// DeniedError reports that the policy table denies a set to the viewer.
// It is an expected, UI-actionable outcome, not a fatal condition.
type DeniedError struct {
	SetNumber int
	Reason    DeniedReason
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("set %d denied: %s", e.SetNumber, e.Reason)
}

// Resolver applies the tier policy table to question sets.
type Resolver struct {
	log *slog.Logger
}

// NewResolver creates a Resolver logging through log.
func NewResolver(log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{log: log}
}

// unlocked reports whether the tier opens the given set number.
// Set 1 is open to everyone; set 2 needs basic; later sets need the full
// tier. The quick-exam set is exempt from the table entirely.
func unlocked(tier Tier, setNumber int) bool {
	switch {
	case setNumber == catalog.QuickExamSetNumber:
		return true
	case setNumber <= 1:
		return true
	case setNumber == 2:
		return tier >= TierBasic
	default:
		return tier >= TierFull
	}
}

// Annotate fills IsPremium, RequiresLogin, DurationMinutes and Difficulty on
// every set for the given viewer. The input slice is not modified.
func (r *Resolver) Annotate(sets []catalog.QuestionSet, viewer account.Viewer) []catalog.QuestionSet {
	tier := ViewerTier(viewer, r.log)

	out := make([]catalog.QuestionSet, len(sets))
	for i, set := range sets {
		locked := !unlocked(tier, set.SetNumber)
		set.IsPremium = locked
		set.RequiresLogin = locked
		set.DurationMinutes = catalog.DurationMinutes(len(set.Questions))
		set.Difficulty = difficultyFor(set.SetNumber)
		out[i] = set
	}
	return out
}

// FilterVisible returns the sets this viewer gets to see at all. Guests see
// only open sets; authenticated viewers see everything, with locked sets
// rendered in an upsell state by the UI.
func (r *Resolver) FilterVisible(sets []catalog.QuestionSet, viewer account.Viewer) []catalog.QuestionSet {
	if viewer.Identity == account.IdentityAuthenticated {
		return sets
	}
	var visible []catalog.QuestionSet
	for _, set := range sets {
		if !set.IsPremium && !set.RequiresLogin {
			visible = append(visible, set)
		}
	}
	return visible
}

// Check decides whether the viewer may start the set. Denials carry the
// remedy: guests are asked to log in, authenticated viewers to upgrade.
func (r *Resolver) Check(set catalog.QuestionSet, viewer account.Viewer) error {
	if unlocked(ViewerTier(viewer, r.log), set.SetNumber) {
		return nil
	}
	reason := ReasonLoginRequired
	if viewer.Identity == account.IdentityAuthenticated {
		reason = ReasonUpgradeRequired
	}
	return &DeniedError{SetNumber: set.SetNumber, Reason: reason}
}

func difficultyFor(setNumber int) catalog.Difficulty {
	switch setNumber {
	case 1:
		return catalog.DifficultyBeginner
	case 2:
		return catalog.DifficultyIntermediate
	default:
		return catalog.DifficultyExam
	}
}
