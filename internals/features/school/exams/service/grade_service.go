// file: internals/features/school/exams/service/grade_service.go
package service

// GradeFor maps a 0–100 score to a letter grade. Bands are inclusive at
// the lower boundary: 90→A, 80→B, 70→C, 60→D, below 60→F.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
