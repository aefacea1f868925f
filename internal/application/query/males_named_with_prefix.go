package query

import (
	"errors"

	"github.com/campus-hub/student-reports/internal/domain/student"
	"github.com/campus-hub/student-reports/pkg/collections"
)

// MalesNamedWithPrefixQuery lists the first names of male students
// whose first name starts with a prefix and whose average grade meets
// a minimum threshold.
type MalesNamedWithPrefixQuery struct {
	// Prefix is the case-sensitive first-name prefix to match.
	Prefix string

	// MinGrade is the inclusive grade threshold (default 2).
	MinGrade float64
}

// Validate checks the query parameters and applies defaults.
func (q *MalesNamedWithPrefixQuery) Validate() error {
	if q.Prefix == "" {
		return errors.New("prefix cannot be empty")
	}
	if q.MinGrade < 0 {
		return errors.New("minimum grade cannot be negative")
	}
	if q.MinGrade == 0 {
		q.MinGrade = 2
	}
	return nil
}

// MalesNamedWithPrefixResult contains the result of the query.
type MalesNamedWithPrefixResult struct {
	// FirstNames are the matching students' first names in source order.
	FirstNames []string `json:"first_names"`
}

// Execute runs the query over a snapshot of students.
func (q MalesNamedWithPrefixQuery) Execute(students []student.Student) MalesNamedWithPrefixResult {
	matched := collections.Filter(students, student.GenderIs("Male"))
	matched = collections.Filter(matched, student.NameStartsWith(q.Prefix))
	matched = collections.Filter(matched, student.MinAverageGrade(q.MinGrade))

	return MalesNamedWithPrefixResult{FirstNames: student.FirstNames(matched)}
}
