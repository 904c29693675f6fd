package classes

import (
	"testing"

	peopleModel "schoolku_backend/internals/features/school/people/model"
)

func TestSliceFor(t *testing.T) {
	students := make([]peopleModel.StudentModel, 10)

	tests := []struct {
		name     string
		i, n     int
		wantLen  int
	}{
		{name: "first of two halves", i: 0, n: 2, wantLen: 5},
		{name: "second of two halves", i: 1, n: 2, wantLen: 5},
		{name: "uneven split rounds up front", i: 0, n: 3, wantLen: 4},
		{name: "uneven split last is short", i: 2, n: 3, wantLen: 2},
		{name: "index past the end is empty", i: 5, n: 3, wantLen: 0},
		{name: "zero sections is empty", i: 0, n: 0, wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sliceFor(students, tt.i, tt.n)
			if len(got) != tt.wantLen {
				t.Errorf("sliceFor(10 students, %d, %d) len = %d, want %d", tt.i, tt.n, len(got), tt.wantLen)
			}
		})
	}
}

func TestSliceForCoversAllStudentsOnce(t *testing.T) {
	students := make([]peopleModel.StudentModel, 7)
	total := 0
	for i := 0; i < 3; i++ {
		total += len(sliceFor(students, i, 3))
	}
	if total != len(students) {
		t.Errorf("slices cover %d students, want %d", total, len(students))
	}
}
