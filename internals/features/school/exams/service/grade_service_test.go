package service

import "testing"

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{score: 100, want: "A"},
		{score: 92, want: "A"},
		{score: 90, want: "A"},
		{score: 89, want: "B"},
		{score: 81, want: "B"},
		{score: 80, want: "B"},
		{score: 79, want: "C"},
		{score: 70, want: "C"},
		{score: 69, want: "D"},
		{score: 65, want: "D"},
		{score: 60, want: "D"},
		{score: 59, want: "F"},
		{score: 40, want: "F"},
		{score: 0, want: "F"},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.score); got != tt.want {
			t.Errorf("GradeFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
