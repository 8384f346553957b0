package store

import (
	"context"
	"fmt"

	"github.com/roadprep/roadprep/ent"
	"github.com/roadprep/roadprep/ent/quickexamseed"
)

// seedRepo implements SeedRepo using the ent client.
type seedRepo struct {
	client *ent.Client
}

func (r *seedRepo) QuickExamSeed(ctx context.Context) ([]byte, error) {
	s, err := r.client.QuickExamSeed.Query().
		Order(ent.Desc(quickexamseed.FieldSeededAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query quick exam seed: %w", err)
	}
	return s.Payload, nil
}

func (r *seedRepo) SaveQuickExamSeed(ctx context.Context, payload []byte) error {
	if _, err := r.client.QuickExamSeed.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear old seed: %w", err)
	}
	_, err := r.client.QuickExamSeed.Create().
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quick exam seed: %w", err)
	}
	return nil
}

func (r *seedRepo) ClearQuickExamSeed(ctx context.Context) error {
	if _, err := r.client.QuickExamSeed.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear quick exam seed: %w", err)
	}
	return nil
}
