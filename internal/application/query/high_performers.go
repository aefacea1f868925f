// Package query contains the read operations of the report pipeline.
// Queries never modify state: each one is a self-contained use case
// executed over the same immutable snapshot of fetched students, with
// its own parameter and result types.
//
// Filters are applied as a narrowing chain rather than one fused
// predicate, so intermediate result sets stay observable if per-step
// reporting is ever added.
package query

import (
	"errors"

	"github.com/campus-hub/student-reports/internal/domain/student"
	"github.com/campus-hub/student-reports/pkg/collections"
)

// HighPerformersQuery counts students whose average grade meets a
// minimum threshold.
type HighPerformersQuery struct {
	// MinGrade is the inclusive grade threshold (default 3).
	MinGrade float64
}

// Validate checks the query parameters and applies defaults.
func (q *HighPerformersQuery) Validate() error {
	if q.MinGrade < 0 {
		return errors.New("minimum grade cannot be negative")
	}
	if q.MinGrade == 0 {
		q.MinGrade = 3
	}
	return nil
}

// HighPerformersResult contains the result of the high performers query.
type HighPerformersResult struct {
	// Count is the number of students at or above the threshold.
	Count int `json:"count"`
}

// Execute runs the query over a snapshot of students.
func (q HighPerformersQuery) Execute(students []student.Student) HighPerformersResult {
	matched := collections.Filter(students, student.MinAverageGrade(q.MinGrade))

	return HighPerformersResult{Count: len(matched)}
}
