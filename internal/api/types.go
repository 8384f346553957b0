package api

import "encoding/json"

// RawCatalog is the question-corpus payload as the backend returns it.
type RawCatalog struct {
	Sets []RawSet `json:"sets"`
}

// RawSet is one question set in the raw payload. Questions is kept raw:
// broken sets ship it absent or with a non-array value, and the loader
// decodes it per set so one bad set cannot fail the whole catalog.
type RawSet struct {
	SetNumber int             `json:"setNumber"`
	Questions json.RawMessage `json:"questions"`
}

// RawQuestion is one question in the raw payload. ChoiceAnswer is the
// zero-based index of the correct entry in Choice.
type RawQuestion struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Choice       []string `json:"choice"`
	ChoiceAnswer int      `json:"choiceAnswer"`
	Image        string   `json:"image,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Lesson is a study article served by the backend.
type Lesson struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PlanInfo is the viewer's subscription as reported by the backend.
// PlanName is a free-form lowercase string ("basic", "classic", "unique",
// "no active plan"); access tiers are derived from it client-side.
type PlanInfo struct {
	PlanName string `json:"planName"`
}

// LoginResponse carries the bearer token issued after authentication.
type LoginResponse struct {
	Token string `json:"token"`
}
