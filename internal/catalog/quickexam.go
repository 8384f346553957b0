package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/roadprep/roadprep/internal/api"
)

// QuickExamSetNumber marks the ad-hoc quick-exam set. It is not part of the
// catalog and never passes through the access table.
const QuickExamSetNumber = 0

// ErrNoQuickExam is returned when no quick-exam seed is stored locally.
var ErrNoQuickExam = errors.New("no quick exam seeded")

// SeedSource provides the locally stored quick-exam question list, as the
// raw backend question shape serialized to JSON. The store package
// implements it.
type SeedSource interface {
	QuickExamSeed(ctx context.Context) ([]byte, error)
	SaveQuickExamSeed(ctx context.Context, payload []byte) error
}

// QuickExamFetcher fetches the quick-exam payload from the backend.
// *api.Client satisfies it.
type QuickExamFetcher interface {
	QuickExam(ctx context.Context) ([]byte, error)
}

// QuickExamSource builds the ad-hoc quick-exam set. The local seed is the
// primary source; on a cold start the payload is fetched from the backend
// and written through to the seed store. This is a separate construction
// path from the catalog Loader: one set, no TTL, immediate feedback enabled
// by the session that runs it.
type QuickExamSource struct {
	seeds   SeedSource
	fetcher QuickExamFetcher
	log     *slog.Logger
}

// NewQuickExamSource creates a QuickExamSource over seeds. fetcher may be
// nil for a seed-only source.
func NewQuickExamSource(seeds SeedSource, fetcher QuickExamFetcher, log *slog.Logger) *QuickExamSource {
	if log == nil {
		log = slog.Default()
	}
	return &QuickExamSource{seeds: seeds, fetcher: fetcher, log: log}
}

// Set returns the quick-exam set. ErrNoQuickExam when nothing is seeded and
// no fetcher is configured (or the backend has no payload either);
// *api.ErrFormat when the payload does not parse.
func (s *QuickExamSource) Set(ctx context.Context) (QuestionSet, error) {
	raw, err := s.seeds.QuickExamSeed(ctx)
	if err != nil {
		return QuestionSet{}, err
	}
	if len(raw) == 0 {
		if s.fetcher == nil {
			return QuestionSet{}, ErrNoQuickExam
		}
		raw, err = s.fetcher.QuickExam(ctx)
		if err != nil {
			return QuestionSet{}, err
		}
		if len(raw) == 0 {
			return QuestionSet{}, ErrNoQuickExam
		}
		// Best effort: a failed seed write only costs a refetch next time.
		if err := s.seeds.SaveQuickExamSeed(ctx, raw); err != nil {
			s.log.Warn("quick exam seed not saved", "err", err)
		}
	}

	var questions []api.RawQuestion
	if err := json.Unmarshal(raw, &questions); err != nil {
		return QuestionSet{}, &api.ErrFormat{Op: "load quick exam seed", Err: err}
	}

	set := QuestionSet{
		SetNumber:       QuickExamSetNumber,
		Questions:       make([]Question, 0, len(questions)),
		DurationMinutes: DurationMinutes(len(questions)),
		Difficulty:      DifficultyBeginner,
	}
	for i, rq := range questions {
		set.Questions = append(set.Questions, normalizeQuestion(rq, i))
	}
	return set, nil
}

// DurationMinutes computes the exam duration from the question count:
// three seconds per question, rounded up to a whole minute.
func DurationMinutes(questionCount int) int {
	if questionCount == 0 {
		return 0
	}
	// ceil(n * 0.05) without floating point: 0.05 min = 3 s per question.
	return (questionCount*3 + 59) / 60
}
