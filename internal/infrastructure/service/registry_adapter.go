package service

import (
	"context"

	"github.com/campus-hub/student-reports/internal/domain/student"
	"github.com/campus-hub/student-reports/internal/infrastructure/external/registry"
)

// RegistryAdapter adapts the registry.Client to the report.StudentSource
// interface, mapping wire DTOs into domain entities on the way out.
type RegistryAdapter struct {
	client *registry.Client
	mapper *registry.Mapper
}

func NewRegistryAdapter(client *registry.Client) *RegistryAdapter {
	return &RegistryAdapter{
		client: client,
		mapper: registry.NewMapper(),
	}
}

// FetchAll fetches the full student list and maps it to domain entities.
// Errors from the client pass through unchanged so callers can inspect
// *registry.FetchError and *registry.ParseError.
func (a *RegistryAdapter) FetchAll(ctx context.Context) ([]student.Student, error) {
	dtos, err := a.client.FetchStudents(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.StudentsFromDTO(dtos), nil
}
