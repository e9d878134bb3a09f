package model

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestScoreAnswers(t *testing.T) {
	questions := []QuizQuestionModel{
		{CorrectAnswer: strPtr("Paris")},
		{CorrectAnswer: strPtr("true")},
		{CorrectAnswer: strPtr("4")},
	}

	score, correct, total := ScoreAnswers(questions, []string{"paris", "TRUE", "5"})
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if correct != 2 {
		t.Errorf("correct = %d, want 2 (matching is case-insensitive)", correct)
	}
	if score != 67 {
		t.Errorf("score = %d, want 67", score)
	}
}

func TestScoreAnswersTrimsWhitespace(t *testing.T) {
	questions := []QuizQuestionModel{{CorrectAnswer: strPtr("  Paris ")}}
	_, correct, _ := ScoreAnswers(questions, []string{" paris"})
	if correct != 1 {
		t.Errorf("correct = %d, want 1", correct)
	}
}

func TestScoreAnswersShortSubmission(t *testing.T) {
	questions := []QuizQuestionModel{
		{CorrectAnswer: strPtr("a")},
		{CorrectAnswer: strPtr("b")},
	}
	score, correct, total := ScoreAnswers(questions, []string{"a"})
	if correct != 1 || total != 2 {
		t.Errorf("got correct=%d total=%d, want 1/2", correct, total)
	}
	if score != 50 {
		t.Errorf("score = %d, want 50", score)
	}
}

func TestScoreAnswersNoQuestions(t *testing.T) {
	score, correct, total := ScoreAnswers(nil, []string{"a"})
	if score != 0 || correct != 0 || total != 0 {
		t.Errorf("got %d/%d/%d, want all zero", score, correct, total)
	}
}

func TestScoreAnswersUngradedQuestion(t *testing.T) {
	questions := []QuizQuestionModel{
		{CorrectAnswer: nil}, // essay, no stored answer
		{CorrectAnswer: strPtr("b")},
	}
	_, correct, _ := ScoreAnswers(questions, []string{"anything", "b"})
	if correct != 1 {
		t.Errorf("correct = %d, want 1", correct)
	}
}

func TestAvailableAt(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name       string
		start, end *time.Time
		want       bool
	}{
		{"no window", nil, nil, true},
		{"within window", &past, &future, true},
		{"before start", &future, nil, false},
		{"after end", nil, &past, false},
		{"only start, open end", &past, nil, true},
	}
	for _, tc := range cases {
		q := QuizModel{StartDate: tc.start, EndDate: tc.end}
		if got := q.AvailableAt(now); got != tc.want {
			t.Errorf("%s: AvailableAt = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsValidQuestionType(t *testing.T) {
	for _, valid := range []string{QuestionMultipleChoice, QuestionTrueFalse, QuestionShortAnswer, QuestionEssay} {
		if !IsValidQuestionType(valid) {
			t.Errorf("IsValidQuestionType(%q) = false, want true", valid)
		}
	}
	if IsValidQuestionType("matching") {
		t.Error("IsValidQuestionType(\"matching\") = true, want false")
	}
}
