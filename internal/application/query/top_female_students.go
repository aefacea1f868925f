package query

import (
	"errors"

	"github.com/campus-hub/student-reports/internal/domain/student"
	"github.com/campus-hub/student-reports/pkg/collections"
)

// TopFemaleStudentsQuery lists the first names of female students whose
// average grade equals an exact value.
type TopFemaleStudentsQuery struct {
	// Grade is the exact grade to match (default 5). Exact numeric
	// equality, no tolerance.
	Grade float64
}

// Validate checks the query parameters and applies defaults.
func (q *TopFemaleStudentsQuery) Validate() error {
	if q.Grade < 0 {
		return errors.New("grade cannot be negative")
	}
	if q.Grade == 0 {
		q.Grade = 5
	}
	return nil
}

// TopFemaleStudentsResult contains the result of the query.
type TopFemaleStudentsResult struct {
	// FirstNames are the matching students' first names in source order.
	FirstNames []string `json:"first_names"`
}

// Execute runs the query over a snapshot of students.
func (q TopFemaleStudentsQuery) Execute(students []student.Student) TopFemaleStudentsResult {
	matched := collections.Filter(students, student.GenderIs("Female"))
	matched = collections.Filter(matched, student.ExactGrade(q.Grade))

	return TopFemaleStudentsResult{FirstNames: student.FirstNames(matched)}
}
