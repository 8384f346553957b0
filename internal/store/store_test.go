package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCredentialRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Credentials()
	ctx := context.Background()

	// Empty store reads as signed out.
	token, err := repo.Token(ctx)
	if err != nil {
		t.Fatalf("token (empty): %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}

	if err := repo.SaveToken(ctx, "tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err = repo.Token(ctx)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "tok-1" {
		t.Errorf("token = %q, want %q", token, "tok-1")
	}

	// Saving again replaces, never accumulates.
	if err := repo.SaveToken(ctx, "tok-2"); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	token, _ = repo.Token(ctx)
	if token != "tok-2" {
		t.Errorf("token = %q, want %q", token, "tok-2")
	}

	if err := repo.ClearToken(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	token, _ = repo.Token(ctx)
	if token != "" {
		t.Errorf("expected empty token after clear, got %q", token)
	}

	// Clearing twice is fine.
	if err := repo.ClearToken(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestSeedRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Seeds()
	ctx := context.Background()

	raw, err := repo.QuickExamSeed(ctx)
	if err != nil {
		t.Fatalf("seed (empty): %v", err)
	}
	if raw != nil {
		t.Fatal("expected nil seed when none stored")
	}

	payload := []byte(`[{"title":"q"}]`)
	if err := repo.SaveQuickExamSeed(ctx, payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err = repo.QuickExamSeed(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if string(raw) != string(payload) {
		t.Errorf("seed = %q, want %q", raw, payload)
	}

	if err := repo.ClearQuickExamSeed(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	raw, _ = repo.QuickExamSeed(ctx)
	if raw != nil {
		t.Error("expected nil seed after clear")
	}
}

func TestAttemptsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendAttempt(ctx, AttemptData{
			AttemptID:      string(rune('a' + i)),
			SetNumber:      i + 1,
			QuizTitle:      "Exam set 1",
			TotalQuestions: 10,
			CorrectCount:   5 + i,
			Score:          (5 + i) * 10,
			Passed:         i == 2,
			DurationSecs:   60,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		// Timestamp defaults to now; space the rows out.
		time.Sleep(5 * time.Millisecond)
	}

	attempts, err := repo.RecentAttempts(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("len = %d, want 2", len(attempts))
	}
	if attempts[0].SetNumber != 3 {
		t.Errorf("newest attempt set = %d, want 3", attempts[0].SetNumber)
	}
	if !attempts[0].Passed {
		t.Error("newest attempt should be passed")
	}

	if err := repo.ClearAttempts(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	attempts, err = repo.RecentAttempts(ctx, 0)
	if err != nil {
		t.Fatalf("recent after clear: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("len after clear = %d, want 0", len(attempts))
	}
}
