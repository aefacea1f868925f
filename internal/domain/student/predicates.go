package student

import "strings"

// Predicate is a pure boolean function over a single student record.
// Predicates compose by conjunction when applied as a chain of
// narrowing filters.
type Predicate func(Student) bool

// MinAverageGrade matches students whose average grade is at least
// threshold. The boundary is inclusive.
func MinAverageGrade(threshold float64) Predicate {
	return func(s Student) bool {
		return s.AverageGrade >= threshold
	}
}

// ExactGrade matches students whose average grade equals value exactly.
// No tolerance is applied.
func ExactGrade(value float64) Predicate {
	return func(s Student) bool {
		return s.AverageGrade == value
	}
}

// GenderIs matches students whose gender equals value. The comparison
// is case-sensitive, matching the registry's observed values as-is.
func GenderIs(value string) Predicate {
	return func(s Student) bool {
		return s.Gender == value
	}
}

// CityIs matches students whose city equals value, case-sensitive.
func CityIs(value string) Predicate {
	return func(s Student) bool {
		return s.City == value
	}
}

// MinAge matches students whose age is at least threshold, inclusive.
func MinAge(threshold int) Predicate {
	return func(s Student) bool {
		return s.Age >= threshold
	}
}

// NameStartsWith matches students whose first name begins with prefix,
// case-sensitive, anchored at the first character.
func NameStartsWith(prefix string) Predicate {
	return func(s Student) bool {
		return strings.HasPrefix(s.FirstName, prefix)
	}
}
