package port

import (
	"context"

	"github.com/nikolayk812/klimatshop/internal/domain"
)

type ProjectRepository interface {
	GetProject(ctx context.Context, projectID string) (domain.Project, error)

	ListProjects(ctx context.Context) ([]domain.Project, error)

	InsertProject(ctx context.Context, project domain.Project) error

	UpdateProjectField(ctx context.Context, projectID, field string, value any) (bool, error)

	DeleteProject(ctx context.Context, projectID string) (bool, error)
}
