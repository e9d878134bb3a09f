package model

import (
	"testing"
)

func TestComputePercentage(t *testing.T) {
	cases := []struct {
		earned, possible float64
		want             float64
	}{
		{45, 50, 90},
		{1, 3, 33.33},
		{0, 50, 0},
		{50, 50, 100},
		{10, 0, 0},
		{10, -5, 0},
	}
	for _, tc := range cases {
		if got := ComputePercentage(tc.earned, tc.possible); got != tc.want {
			t.Errorf("ComputePercentage(%v, %v) = %v, want %v", tc.earned, tc.possible, got, tc.want)
		}
	}
}

func TestLetterForPercentage(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "A"},
		{90, "A"},
		{89.99, "B"},
		{80, "B"},
		{79.5, "C"},
		{70, "C"},
		{69, "D"},
		{60, "D"},
		{59.99, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		if got := LetterForPercentage(tc.pct); got != tc.want {
			t.Errorf("LetterForPercentage(%v) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}

func TestRecompute(t *testing.T) {
	g := GradeModel{PointsEarned: 45, PointsPossible: 50}
	g.Recompute()
	if g.GradePercentage != 90 {
		t.Errorf("GradePercentage = %v, want 90", g.GradePercentage)
	}
	if g.LetterGrade != "A" {
		t.Errorf("LetterGrade = %q, want A", g.LetterGrade)
	}

	// Stale derived fields get overwritten.
	g.PointsEarned = 20
	g.Recompute()
	if g.GradePercentage != 40 || g.LetterGrade != "F" {
		t.Errorf("after update got %v/%q, want 40/F", g.GradePercentage, g.LetterGrade)
	}
}
