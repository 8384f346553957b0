package exam

import (
	"math"

	"github.com/roadprep/roadprep/internal/catalog"
)

// PassingScore is the fixed passing threshold, in percent.
const PassingScore = 80

// Result is the transient handoff produced when a session ends. It carries
// the full question list and raw answer map so a review screen can show
// per-question correctness and explanations without refetching.
type Result struct {
	QuizTitle        string
	TotalQuestions   int
	CorrectCount     int
	Score            int
	Passed           bool
	TimeSpentSeconds int
	Questions        []catalog.Question
	Answers          map[int]Answer
}

// BuildResult computes the result from the session's answers, question list
// and elapsed time. Pure: it reads the session, never changes it.
func BuildResult(s *Session) Result {
	total := len(s.set.Questions)
	correct := 0
	for _, a := range s.answers {
		if a.IsCorrect {
			correct++
		}
	}

	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	answers := make(map[int]Answer, len(s.answers))
	for i, a := range s.answers {
		answers[i] = a
	}

	return Result{
		QuizTitle:        s.set.Title(),
		TotalQuestions:   total,
		CorrectCount:     correct,
		Score:            score,
		Passed:           score >= PassingScore,
		TimeSpentSeconds: s.elapsedSeconds,
		Questions:        s.set.Questions,
		Answers:          answers,
	}
}
