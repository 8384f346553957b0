package store

import (
	"context"
	"fmt"

	"github.com/roadprep/roadprep/ent"
	"github.com/roadprep/roadprep/ent/credential"
)

// credentialRepo implements CredentialRepo using the ent client.
type credentialRepo struct {
	client *ent.Client
}

func (r *credentialRepo) Token(ctx context.Context) (string, error) {
	c, err := r.client.Credential.Query().
		Order(ent.Desc(credential.FieldSavedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query credential: %w", err)
	}
	return c.Token, nil
}

func (r *credentialRepo) SaveToken(ctx context.Context, token string) error {
	// Single-row table: drop whatever is there, then insert.
	if _, err := r.client.Credential.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear old credential: %w", err)
	}
	_, err := r.client.Credential.Create().
		SetToken(token).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (r *credentialRepo) ClearToken(ctx context.Context) error {
	if _, err := r.client.Credential.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
