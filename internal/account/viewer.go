package account

// Identity says whether the viewer has signed in.
type Identity int

const (
	IdentityGuest Identity = iota
	IdentityAuthenticated
)

func (i Identity) String() string {
	if i == IdentityAuthenticated {
		return "authenticated"
	}
	return "guest"
}

// Plan describes the viewer's subscription. Name is the raw plan string as
// the backend reports it; tier interpretation lives in the access package.
type Plan struct {
	Name string
}

// Viewer is the current user of the client: a guest, or an authenticated
// user with an optional plan.
type Viewer struct {
	Identity Identity
	Plan     *Plan
}

// Guest returns the anonymous viewer.
func Guest() Viewer {
	return Viewer{Identity: IdentityGuest}
}

// Authenticated returns a signed-in viewer with the given plan (nil when the
// backend reports no subscription).
func Authenticated(plan *Plan) Viewer {
	return Viewer{Identity: IdentityAuthenticated, Plan: plan}
}

// PlanName returns the raw plan string, or "" for guests and plan-less
// viewers.
func (v Viewer) PlanName() string {
	if v.Plan == nil {
		return ""
	}
	return v.Plan.Name
}
