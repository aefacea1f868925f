package registry

import (
	"github.com/campus-hub/student-reports/internal/domain/student"
)

// Mapper handles transformation between registry DTOs and domain
// entities. This follows the anti-corruption layer pattern, protecting
// the domain from external payload changes.
type Mapper struct{}

// NewMapper creates a new Mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// StudentFromDTO converts a StudentDTO to a domain Student entity.
func (m *Mapper) StudentFromDTO(dto StudentDTO) student.Student {
	return student.Student{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Age:          dto.Age,
		Gender:       dto.Gender,
		City:         dto.City,
		AverageGrade: dto.AverageGrade,
	}
}

// StudentsFromDTO converts a slice of DTOs, preserving source order.
func (m *Mapper) StudentsFromDTO(dtos []StudentDTO) []student.Student {
	students := make([]student.Student, len(dtos))
	for i, dto := range dtos {
		students[i] = m.StudentFromDTO(dto)
	}
	return students
}
