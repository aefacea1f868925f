package registry

// StudentDTO represents a student record as returned by the registry
// endpoint. This is the external representation that gets mapped to the
// domain model; the payload shape is trusted as-is.
type StudentDTO struct {
	// FirstName is the student's first name.
	FirstName string `json:"firstName"`

	// LastName is the student's last name.
	LastName string `json:"lastName"`

	// Age is the student's age in years.
	Age int `json:"age"`

	// Gender is the reported gender, e.g. "Male" or "Female".
	Gender string `json:"gender"`

	// City is the city of residence.
	City string `json:"city"`

	// AverageGrade is the student's average grade.
	AverageGrade float64 `json:"averageGrade"`
}
