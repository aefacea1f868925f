package query

import (
	"errors"

	"github.com/campus-hub/student-reports/internal/domain/student"
	"github.com/campus-hub/student-reports/pkg/collections"
)

// AdultMalesInCityQuery lists the full names of adult male students
// living in a named city.
type AdultMalesInCityQuery struct {
	// City is the city of residence to match, case-sensitive.
	City string

	// MinAge is the inclusive age threshold (default 18).
	MinAge int
}

// Validate checks the query parameters and applies defaults.
func (q *AdultMalesInCityQuery) Validate() error {
	if q.City == "" {
		return errors.New("city cannot be empty")
	}
	if q.MinAge < 0 {
		return errors.New("minimum age cannot be negative")
	}
	if q.MinAge == 0 {
		q.MinAge = 18
	}
	return nil
}

// AdultMalesInCityResult contains the result of the query.
type AdultMalesInCityResult struct {
	// FullNames are the matching students' full names in source order.
	FullNames []string `json:"full_names"`
}

// Execute runs the query over a snapshot of students.
func (q AdultMalesInCityQuery) Execute(students []student.Student) AdultMalesInCityResult {
	matched := collections.Filter(students, student.GenderIs("Male"))
	matched = collections.Filter(matched, student.CityIs(q.City))
	matched = collections.Filter(matched, student.MinAge(q.MinAge))

	return AdultMalesInCityResult{FullNames: student.FullNames(matched)}
}
