package catalog

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadprep/roadprep/internal/api"
)

// fakeFetcher serves a fixed payload and counts calls.
type fakeFetcher struct {
	payload []byte
	err     error
	calls   int
}

func (f *fakeFetcher) Catalog(ctx context.Context) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

const validPayload = `{
	"sets": [
		{
			"setNumber": 1,
			"questions": [
				{"title": "Right of way?", "choice": ["Yield", "", "Stop", "Go"], "choiceAnswer": 2, "image": "signs/stop.png", "explanation": "Stop means stop."},
				{"title": "Speed limit in town?", "choice": ["50", "70"], "choiceAnswer": 7}
			]
		},
		{"setNumber": 2}
	]
}`

func newTestLoader(f *fakeFetcher, now func() time.Time) *Loader {
	return NewLoader(f, NewTTLCache(), discardLogger(), WithClock(now))
}

func TestLoader_Normalization(t *testing.T) {
	f := &fakeFetcher{payload: []byte(validPayload)}
	l := newTestLoader(f, time.Now)

	sets, err := l.Sets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 2)

	q := sets[0].Questions[0]
	assert.Equal(t, 1, q.ID)
	assert.Equal(t, "Right of way?", q.Text)
	assert.Equal(t, "signs/stop.png", q.ImageURL)
	assert.Equal(t, "Stop means stop.", q.Explanation)

	// Positional letter labels, in source order.
	require.Len(t, q.Choices, 4)
	for i, want := range []string{"A", "B", "C", "D"} {
		assert.Equal(t, want, q.Choices[i].ID)
	}

	// Empty choice text gets the letter placeholder.
	assert.Equal(t, "Choice B", q.Choices[1].Text)

	// Exactly one choice is correct, at the recorded index.
	correct := 0
	for i, c := range q.Choices {
		if c.IsCorrect {
			correct++
			assert.Equal(t, 2, i)
		}
	}
	assert.Equal(t, 1, correct)
	assert.Equal(t, "C", q.CorrectChoiceID())

	// Second question has ID 2 (1-based ordinal within the set).
	assert.Equal(t, 2, sets[0].Questions[1].ID)
}

func TestLoader_OutOfRangeAnswerMarksNothingCorrect(t *testing.T) {
	f := &fakeFetcher{payload: []byte(validPayload)}
	l := newTestLoader(f, time.Now)

	sets, err := l.Sets(context.Background())
	require.NoError(t, err)

	q := sets[0].Questions[1] // choiceAnswer 7, only 2 choices
	for _, c := range q.Choices {
		assert.False(t, c.IsCorrect, "out-of-range answer index must mark nothing correct")
	}
	assert.Equal(t, "", q.CorrectChoiceID())
}

func TestLoader_MissingQuestionsTreatedAsEmpty(t *testing.T) {
	f := &fakeFetcher{payload: []byte(validPayload)}
	l := newTestLoader(f, time.Now)

	sets, err := l.Sets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, sets[1].SetNumber)
	assert.Empty(t, sets[1].Questions)
}

func TestLoader_NonArrayQuestionsTreatedAsEmpty(t *testing.T) {
	payload := `{
		"sets": [
			{"setNumber": 1, "questions": "bogus"},
			{"setNumber": 2, "questions": [{"title": "Ok?", "choice": ["Yes"], "choiceAnswer": 0}]}
		]
	}`
	f := &fakeFetcher{payload: []byte(payload)}
	l := newTestLoader(f, time.Now)

	sets, err := l.Sets(context.Background())
	require.NoError(t, err, "one bad set must not fail the whole catalog")
	require.Len(t, sets, 2)
	assert.Empty(t, sets[0].Questions)
	assert.Len(t, sets[1].Questions, 1)
}

func TestLoader_CacheServedWhileFresh(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	f := &fakeFetcher{payload: []byte(validPayload)}
	l := newTestLoader(f, clock)

	_, err := l.Sets(context.Background())
	require.NoError(t, err)

	// Warm period: no refetch.
	now = now.Add(4 * time.Minute)
	_, err = l.Sets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, f.calls)

	// Past the TTL: refetch.
	now = now.Add(2 * time.Minute)
	_, err = l.Sets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, f.calls)
}

func TestLoader_RefreshDropsCache(t *testing.T) {
	f := &fakeFetcher{payload: []byte(validPayload)}
	l := newTestLoader(f, time.Now)

	_, err := l.Sets(context.Background())
	require.NoError(t, err)
	l.Refresh()
	_, err = l.Sets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, f.calls)
}

func TestLoader_NetworkErrorPropagates(t *testing.T) {
	netErr := &api.ErrNetwork{Op: "fetch catalog", StatusCode: 502}
	f := &fakeFetcher{err: netErr}
	l := newTestLoader(f, time.Now)

	_, err := l.Sets(context.Background())
	var gotNet *api.ErrNetwork
	require.ErrorAs(t, err, &gotNet)
}

func TestLoader_MalformedPayloadIsFormatError(t *testing.T) {
	cases := map[string]string{
		"not json":     `{"sets": [`,
		"wrong shape":  `{"quizzes": []}`,
		"bad question": `{"sets": [{"setNumber": 1, "questions": [{"title": 5}]}]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			f := &fakeFetcher{payload: []byte(payload)}
			l := newTestLoader(f, time.Now)

			_, err := l.Sets(context.Background())
			var gotFmt *api.ErrFormat
			require.ErrorAs(t, err, &gotFmt)
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	cases := []struct{ questions, want int }{
		{0, 0},
		{5, 1},
		{20, 1},
		{21, 2},
		{25, 2},
		{40, 2},
		{41, 3},
	}
	for _, tc := range cases {
		if got := DurationMinutes(tc.questions); got != tc.want {
			t.Errorf("DurationMinutes(%d) = %d, want %d", tc.questions, got, tc.want)
		}
	}
}

func TestTTLCache_Clear(t *testing.T) {
	c := NewTTLCache()
	c.Set([]QuestionSet{{SetNumber: 1}}, time.Now())
	_, _, ok := c.Get()
	require.True(t, ok)
	c.Clear()
	_, _, ok = c.Get()
	require.False(t, ok)
}
