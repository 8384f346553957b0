package access

import (
	"log/slog"
	"strings"

	"github.com/roadprep/roadprep/internal/account"
)

// Tier is the closed ladder of subscription levels. The backend transmits
// plan names as free-form lowercase strings; everything unrecognized maps to
// TierFree rather than guessing.
type Tier int

const (
	// TierFree covers guests, viewers without a plan, and unknown plan names.
	TierFree Tier = iota
	// TierBasic unlocks the second exam set.
	TierBasic
	// TierFull unlocks every set.
	TierFull
)

func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierFull:
		return "full"
	default:
		return "free"
	}
}

// noPlanName is what the backend reports for subscribers whose plan lapsed.
const noPlanName = "no active plan"

// ParseTier maps a raw plan name to a Tier. Unrecognized names are logged
// and treated as free so a new backend tier degrades loudly, not silently.
func ParseTier(planName string, log *slog.Logger) Tier {
	switch strings.ToLower(strings.TrimSpace(planName)) {
	case "", noPlanName:
		return TierFree
	case "basic":
		return TierBasic
	case "classic", "unique":
		return TierFull
	default:
		if log != nil {
			log.Warn("unrecognized plan name, defaulting to free tier", "plan", planName)
		}
		return TierFree
	}
}

// ViewerTier resolves the viewer's tier. Guests are always free regardless
// of any stale plan value.
func ViewerTier(v account.Viewer, log *slog.Logger) Tier {
	if v.Identity != account.IdentityAuthenticated {
		return TierFree
	}
	return ParseTier(v.PlanName(), log)
}
