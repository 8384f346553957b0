package store

import (
	"context"
	"fmt"

	"github.com/roadprep/roadprep/ent"
	"github.com/roadprep/roadprep/ent/attemptevent"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, data AttemptData) error {
	_, err := r.client.AttemptEvent.Create().
		SetAttemptID(data.AttemptID).
		SetSetNumber(data.SetNumber).
		SetQuizTitle(data.QuizTitle).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectCount(data.CorrectCount).
		SetScore(data.Score).
		SetPassed(data.Passed).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) RecentAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	attempts := make([]Attempt, 0, len(events))
	for _, e := range events {
		attempts = append(attempts, Attempt{
			AttemptData: AttemptData{
				AttemptID:      e.AttemptID,
				SetNumber:      e.SetNumber,
				QuizTitle:      e.QuizTitle,
				TotalQuestions: e.TotalQuestions,
				CorrectCount:   e.CorrectCount,
				Score:          e.Score,
				Passed:         e.Passed,
				DurationSecs:   e.DurationSecs,
			},
			Timestamp: e.Timestamp,
		})
	}
	return attempts, nil
}

func (r *attemptRepo) ClearAttempts(ctx context.Context) error {
	if _, err := r.client.AttemptEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear attempts: %w", err)
	}
	return nil
}
