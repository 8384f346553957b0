package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/roadprep/roadprep/internal/api"
)

// choiceLetters are the positional labels assigned to choices.
const choiceLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CatalogFetcher fetches the raw corpus payload. *api.Client satisfies it.
type CatalogFetcher interface {
	Catalog(ctx context.Context) ([]byte, error)
}

// Loader fetches, validates and normalizes the question corpus. Results are
// memoized through the injected Cache for TTL; callers during the warm
// period get the cached slice without touching the network.
type Loader struct {
	fetcher CatalogFetcher
	cache   Cache
	ttl     time.Duration
	now     func() time.Time
	log     *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithTTL overrides the cache freshness window.
func WithTTL(ttl time.Duration) LoaderOption {
	return func(l *Loader) { l.ttl = ttl }
}

// WithClock injects a clock (tests control staleness with this).
func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) { l.now = now }
}

// NewLoader creates a Loader backed by fetcher and cache.
func NewLoader(fetcher CatalogFetcher, cache Cache, log *slog.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		fetcher: fetcher,
		cache:   cache,
		ttl:     DefaultTTL,
		now:     time.Now,
		log:     log,
	}
	if l.log == nil {
		l.log = slog.Default()
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Sets returns the normalized question sets, serving the cache while fresh.
// Fails with *api.ErrNetwork on transport trouble and *api.ErrFormat when
// the payload does not match the contract.
func (l *Loader) Sets(ctx context.Context) ([]QuestionSet, error) {
	if sets, storedAt, ok := l.cache.Get(); ok && l.now().Sub(storedAt) < l.ttl {
		return sets, nil
	}

	raw, err := l.fetcher.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateCatalog(raw); err != nil {
		return nil, &api.ErrFormat{Op: "fetch catalog", Err: err}
	}

	var payload api.RawCatalog
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &api.ErrFormat{Op: "fetch catalog", Err: err}
	}

	sets := make([]QuestionSet, 0, len(payload.Sets))
	for _, rs := range payload.Sets {
		sets = append(sets, l.normalizeSet(rs))
	}

	l.cache.Set(sets, l.now())
	return sets, nil
}

// Refresh drops the cache so the next Sets call refetches.
func (l *Loader) Refresh() {
	l.cache.Clear()
}

func (l *Loader) normalizeSet(rs api.RawSet) QuestionSet {
	set := QuestionSet{SetNumber: rs.SetNumber}
	if len(rs.Questions) == 0 {
		l.log.Warn("set has no question list, treating as empty", "set", rs.SetNumber)
		return set
	}
	var raw []api.RawQuestion
	if err := json.Unmarshal(rs.Questions, &raw); err != nil {
		l.log.Warn("set has a non-list question value, treating as empty",
			"set", rs.SetNumber, "err", err)
		return set
	}
	set.Questions = make([]Question, 0, len(raw))
	for i, rq := range raw {
		set.Questions = append(set.Questions, normalizeQuestion(rq, i))
	}
	return set
}

// normalizeQuestion converts a raw question at ordinal (zero-based position
// within its set) into the canonical shape. The question ID is the 1-based
// ordinal, stable across refetches of the same corpus.
func normalizeQuestion(rq api.RawQuestion, ordinal int) Question {
	q := Question{
		ID:          ordinal + 1,
		Text:        rq.Title,
		ImageURL:    rq.Image,
		Explanation: rq.Explanation,
	}
	q.Choices = make([]Choice, 0, len(rq.Choice))
	for i, text := range rq.Choice {
		letter := letterFor(i)
		if text == "" {
			text = "Choice " + letter
		}
		q.Choices = append(q.Choices, Choice{
			ID:   letter,
			Text: text,
			// Out-of-range ChoiceAnswer marks nothing correct. Fail closed.
			IsCorrect: i == rq.ChoiceAnswer,
		})
	}
	return q
}

// letterFor maps a zero-based ordinal to its letter label. Positions past Z
// get a numeric suffix; real sets never have that many choices.
func letterFor(i int) string {
	if i < len(choiceLetters) {
		return string(choiceLetters[i])
	}
	return fmt.Sprintf("%c%d", choiceLetters[i%len(choiceLetters)], i/len(choiceLetters))
}
