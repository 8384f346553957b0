package store

import (
	"context"
	"time"
)

// CredentialRepo persists the signed-in viewer's bearer token.
type CredentialRepo interface {
	// Token returns the stored token, or "" when signed out.
	Token(ctx context.Context) (string, error)

	// SaveToken replaces any stored token.
	SaveToken(ctx context.Context, token string) error

	// ClearToken signs the viewer out. No-op when nothing is stored.
	ClearToken(ctx context.Context) error
}

// SeedRepo manages the locally seeded quick-exam question list.
type SeedRepo interface {
	// QuickExamSeed returns the raw seed payload, or nil when none is set.
	QuickExamSeed(ctx context.Context) ([]byte, error)

	// SaveQuickExamSeed replaces the seed.
	SaveQuickExamSeed(ctx context.Context, payload []byte) error

	// ClearQuickExamSeed removes the seed.
	ClearQuickExamSeed(ctx context.Context) error
}

// AttemptData captures one finished exam attempt.
type AttemptData struct {
	AttemptID      string
	SetNumber      int
	QuizTitle      string
	TotalQuestions int
	CorrectCount   int
	Score          int
	Passed         bool
	DurationSecs   int
}

// Attempt is a stored attempt, newest-first in listings.
type Attempt struct {
	AttemptData
	Timestamp time.Time
}

// AttemptRepo appends and lists exam attempts.
type AttemptRepo interface {
	// AppendAttempt records a finished attempt.
	AppendAttempt(ctx context.Context, data AttemptData) error

	// RecentAttempts returns up to limit attempts, newest first.
	RecentAttempts(ctx context.Context, limit int) ([]Attempt, error)

	// ClearAttempts removes all recorded attempts.
	ClearAttempts(ctx context.Context) error
}
