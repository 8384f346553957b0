package catalog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadprep/roadprep/internal/api"
)

type fakeSeeds struct {
	raw     []byte
	err     error
	saved   []byte
	saveErr error
}

func (f *fakeSeeds) QuickExamSeed(ctx context.Context) ([]byte, error) {
	return f.raw, f.err
}

func (f *fakeSeeds) SaveQuickExamSeed(ctx context.Context, payload []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = payload
	return nil
}

type fakeQuickFetcher struct {
	raw   []byte
	err   error
	calls int
}

func (f *fakeQuickFetcher) QuickExam(ctx context.Context) ([]byte, error) {
	f.calls++
	return f.raw, f.err
}

func TestQuickExamSource_BuildsAdHocSet(t *testing.T) {
	seed := `[
		{"title": "Roundabout priority?", "choice": ["Left", "Right", "Inside"], "choiceAnswer": 2},
		{"title": "Parking on a hill?", "choice": ["Any", "Curbed wheels"], "choiceAnswer": 1}
	]`
	src := NewQuickExamSource(&fakeSeeds{raw: []byte(seed)}, nil, discardLogger())

	set, err := src.Set(context.Background())
	require.NoError(t, err)

	assert.Equal(t, QuickExamSetNumber, set.SetNumber)
	require.Len(t, set.Questions, 2)
	assert.Equal(t, "C", set.Questions[0].CorrectChoiceID())
	assert.Equal(t, 1, set.DurationMinutes)
	assert.Equal(t, "Quick exam", set.Title())
}

func TestQuickExamSource_NoSeedNoFetcher(t *testing.T) {
	src := NewQuickExamSource(&fakeSeeds{}, nil, discardLogger())
	_, err := src.Set(context.Background())
	require.ErrorIs(t, err, ErrNoQuickExam)
}

func TestQuickExamSource_FetchesAndSeedsOnColdStart(t *testing.T) {
	payload := `[{"title": "Stop sign means?", "choice": ["Stop", "Slow"], "choiceAnswer": 0}]`
	seeds := &fakeSeeds{}
	fetcher := &fakeQuickFetcher{raw: []byte(payload)}
	src := NewQuickExamSource(seeds, fetcher, discardLogger())

	set, err := src.Set(context.Background())
	require.NoError(t, err)
	require.Len(t, set.Questions, 1)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, []byte(payload), seeds.saved, "fetched payload should be written through to the seed store")

	// Warm seed: no second fetch.
	seeds.raw = seeds.saved
	_, err = src.Set(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
}

func TestQuickExamSource_SeedWriteFailureIsTolerated(t *testing.T) {
	payload := `[{"title": "Stop sign means?", "choice": ["Stop", "Slow"], "choiceAnswer": 0}]`
	seeds := &fakeSeeds{saveErr: errors.New("disk full")}
	fetcher := &fakeQuickFetcher{raw: []byte(payload)}

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	src := NewQuickExamSource(seeds, fetcher, log)

	set, err := src.Set(context.Background())
	require.NoError(t, err, "a failed seed write must not fail the quick exam")
	require.Len(t, set.Questions, 1)
	assert.Contains(t, buf.String(), "quick exam seed not saved")
}

func TestQuickExamSource_FetchErrorPropagates(t *testing.T) {
	boom := &api.ErrNetwork{Op: "fetch quick exam", StatusCode: 502}
	src := NewQuickExamSource(&fakeSeeds{}, &fakeQuickFetcher{err: boom}, discardLogger())
	_, err := src.Set(context.Background())
	var gotNet *api.ErrNetwork
	require.ErrorAs(t, err, &gotNet)
}

func TestQuickExamSource_BadSeedIsFormatError(t *testing.T) {
	src := NewQuickExamSource(&fakeSeeds{raw: []byte(`{"not": "a list"}`)}, nil, discardLogger())
	_, err := src.Set(context.Background())
	var gotFmt *api.ErrFormat
	require.ErrorAs(t, err, &gotFmt)
}

func TestQuickExamSource_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("db closed")
	src := NewQuickExamSource(&fakeSeeds{err: boom}, nil, discardLogger())
	_, err := src.Set(context.Background())
	require.ErrorIs(t, err, boom)
}
