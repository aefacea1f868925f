package student

import "github.com/campus-hub/student-reports/pkg/collections"

// FirstNames projects a slice of students to their first names,
// preserving order.
func FirstNames(students []Student) []string {
	return collections.Map(students, func(s Student) string {
		return s.FirstName
	})
}

// FullNames projects a slice of students to their full names,
// preserving order.
func FullNames(students []Student) []string {
	return collections.Map(students, Student.FullName)
}

// AverageGrade returns the arithmetic mean of the average grades across
// the given students. An empty slice yields 0 rather than a
// division-by-zero fault.
func AverageGrade(students []Student) float64 {
	if len(students) == 0 {
		return 0
	}

	var sum float64
	for _, s := range students {
		sum += s.AverageGrade
	}
	return sum / float64(len(students))
}
