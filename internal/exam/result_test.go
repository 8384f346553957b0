package exam

import "testing"

func TestBuildResult_PassBoundary(t *testing.T) {
	cases := []struct {
		name       string
		correct    int
		wantScore  int
		wantPassed bool
	}{
		{"eight of ten passes", 8, 80, true},
		{"seven of ten fails", 7, 70, false},
		{"ten of ten", 10, 100, true},
		{"none", 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			correctIdx := make([]int, 10)
			s := startedSession(t, testSet(2, correctIdx...))
			for i := 0; i < 10; i++ {
				if err := s.JumpTo(i); err != nil {
					t.Fatal(err)
				}
				pick := "B"
				if i < tc.correct {
					pick = "A"
				}
				if err := s.SelectChoice(pick); err != nil {
					t.Fatal(err)
				}
			}
			if err := s.Finish(); err != nil {
				t.Fatal(err)
			}

			r := s.Result()
			if r.Score != tc.wantScore {
				t.Errorf("score = %d, want %d", r.Score, tc.wantScore)
			}
			if r.Passed != tc.wantPassed {
				t.Errorf("passed = %v, want %v", r.Passed, tc.wantPassed)
			}
			if r.CorrectCount != tc.correct {
				t.Errorf("correctCount = %d, want %d", r.CorrectCount, tc.correct)
			}
			if r.TotalQuestions != 10 {
				t.Errorf("totalQuestions = %d, want 10", r.TotalQuestions)
			}
		})
	}
}

func TestBuildResult_EmptySetScoresZero(t *testing.T) {
	s := startedSession(t, testSet(2))
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}
	r := s.Result()
	if r.Score != 0 || r.Passed {
		t.Errorf("empty set: score = %d passed = %v, want 0/false", r.Score, r.Passed)
	}
}

func TestBuildResult_CarriesReviewPayload(t *testing.T) {
	s := startedSession(t, testSet(1, 1, 0))
	if err := s.SelectChoice("B"); err != nil {
		t.Fatal(err)
	}
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}

	r := s.Result()
	if len(r.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(r.Questions))
	}
	a, ok := r.Answers[0]
	if !ok || a.ChoiceID != "B" || !a.IsCorrect {
		t.Errorf("answers[0] = %+v ok=%v, want correct B", a, ok)
	}
	if r.QuizTitle == "" {
		t.Error("quiz title missing")
	}
}
