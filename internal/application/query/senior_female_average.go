package query

import (
	"errors"

	"github.com/campus-hub/student-reports/internal/domain/student"
	"github.com/campus-hub/student-reports/pkg/collections"
)

// SeniorFemaleAverageQuery computes the mean grade of female students
// at or above an age threshold.
type SeniorFemaleAverageQuery struct {
	// MinAge is the inclusive age threshold (default 24).
	MinAge int
}

// Validate checks the query parameters and applies defaults.
func (q *SeniorFemaleAverageQuery) Validate() error {
	if q.MinAge < 0 {
		return errors.New("minimum age cannot be negative")
	}
	if q.MinAge == 0 {
		q.MinAge = 24
	}
	return nil
}

// SeniorFemaleAverageResult contains the result of the query.
type SeniorFemaleAverageResult struct {
	// AverageGrade is the arithmetic mean over the matching students,
	// 0 when no student matches.
	AverageGrade float64 `json:"average_grade"`

	// Matched is the number of students the mean was computed over.
	Matched int `json:"matched"`
}

// Execute runs the query over a snapshot of students.
func (q SeniorFemaleAverageQuery) Execute(students []student.Student) SeniorFemaleAverageResult {
	matched := collections.Filter(students, student.GenderIs("Female"))
	matched = collections.Filter(matched, student.MinAge(q.MinAge))

	return SeniorFemaleAverageResult{
		AverageGrade: student.AverageGrade(matched),
		Matched:      len(matched),
	}
}
