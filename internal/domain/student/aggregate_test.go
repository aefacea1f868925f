package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	s := Student{FirstName: "Ana", LastName: "Stojanova"}
	assert.Equal(t, "Ana Stojanova", s.FullName())
}

func TestFirstNames(t *testing.T) {
	students := []Student{
		{FirstName: "Ana", LastName: "X"},
		{FirstName: "Bob", LastName: "Y"},
	}
	assert.Equal(t, []string{"Ana", "Bob"}, FirstNames(students))
}

func TestFullNames(t *testing.T) {
	students := []Student{
		{FirstName: "Ana", LastName: "X"},
		{FirstName: "Bob", LastName: "Y"},
	}
	assert.Equal(t, []string{"Ana X", "Bob Y"}, FullNames(students))
}

func TestAverageGrade(t *testing.T) {
	students := []Student{
		{AverageGrade: 2},
		{AverageGrade: 4},
	}
	assert.Equal(t, 3.0, AverageGrade(students))
}

func TestAverageGradeEmpty(t *testing.T) {
	assert.Equal(t, 0.0, AverageGrade(nil))
	assert.Equal(t, 0.0, AverageGrade([]Student{}))
}

func TestAverageGradeSingle(t *testing.T) {
	assert.Equal(t, 4.5, AverageGrade([]Student{{AverageGrade: 4.5}}))
}
