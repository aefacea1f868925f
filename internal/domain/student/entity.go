// Package student contains the domain model for student records.
//
// This is the core of the report pipeline and has zero external
// dependencies beyond generic slice helpers. It defines:
//
//   - The Student entity, an immutable snapshot of one fetched record
//   - Parameterized predicates used to narrow a slice of students
//   - Projections and aggregations over a slice of students
package student

// Student represents one student record as fetched from the registry.
// Records are immutable once mapped; the program holds an ordered slice
// of them for the duration of one run. There is no identity beyond
// position in the source sequence.
type Student struct {
	// FirstName is the student's first name.
	FirstName string

	// LastName is the student's last name.
	LastName string

	// Age is the student's age in years, never negative.
	Age int

	// Gender is the reported gender. Observed values are "Male" and
	// "Female" but the field is not constrained further.
	Gender string

	// City is the city of residence.
	City string

	// AverageGrade is the student's average grade.
	AverageGrade float64
}

// FullName returns the first and last name joined by a single space.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
