package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Credential holds the signed-in viewer's bearer token. At most one row
// exists; signing in replaces it, signing out deletes it.
type Credential struct {
	ent.Schema
}

func (Credential) Fields() []ent.Field {
	return []ent.Field{
		field.String("token").
			NotEmpty().
			Sensitive().
			Comment("Bearer token issued by the backend"),
		field.Time("saved_at").
			Default(time.Now).
			Comment("When the token was stored"),
	}
}
