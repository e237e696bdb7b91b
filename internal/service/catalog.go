package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/port"
)

// Catalog is plain CRUD over products and projects. No uniqueness constraint on
// names: two products with the same name and distinct identities are fine.
type Catalog struct {
	products port.ProductRepository
	projects port.ProjectRepository
	log      *zap.SugaredLogger
}

func NewCatalog(products port.ProductRepository, projects port.ProjectRepository, logger *zap.SugaredLogger) *Catalog {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Catalog{
		products: products,
		projects: projects,
		log:      logger,
	}
}

func (s *Catalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("products.ListProducts: %w", err)
	}

	return products, nil
}

func (s *Catalog) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.GetProduct: %w", err)
	}

	return product, nil
}

// CreateProduct mints the identity and creation time, ignoring whatever the
// caller put into those fields.
func (s *Catalog) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	product.ID = uuid.NewString()
	product.CreatedAt = time.Now().UTC()

	if err := s.products.InsertProduct(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("products.InsertProduct: %w", err)
	}

	return product, nil
}

func (s *Catalog) UpdateProductField(ctx context.Context, productID, field string, value any) error {
	updated, err := s.products.UpdateProductField(ctx, productID, field, value)
	if err != nil {
		return fmt.Errorf("products.UpdateProductField: %w", err)
	}
	if !updated {
		return fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
	}

	return nil
}

// DeleteProduct removes the product only. Cart items and orders keep the
// denormalized name and price they captured at add-time.
func (s *Catalog) DeleteProduct(ctx context.Context, productID string) error {
	removed, err := s.products.DeleteProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("products.DeleteProduct: %w", err)
	}
	if !removed {
		return fmt.Errorf("product %s: %w", productID, domain.ErrNotFound)
	}

	return nil
}

func (s *Catalog) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("projects.ListProjects: %w", err)
	}

	return projects, nil
}

func (s *Catalog) GetProject(ctx context.Context, projectID string) (domain.Project, error) {
	project, err := s.projects.GetProject(ctx, projectID)
	if err != nil {
		return domain.Project{}, fmt.Errorf("projects.GetProject: %w", err)
	}

	return project, nil
}

func (s *Catalog) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	project.ID = uuid.NewString()
	project.CreatedAt = time.Now().UTC()

	if err := s.projects.InsertProject(ctx, project); err != nil {
		return domain.Project{}, fmt.Errorf("projects.InsertProject: %w", err)
	}

	return project, nil
}

func (s *Catalog) UpdateProjectField(ctx context.Context, projectID, field string, value any) error {
	updated, err := s.projects.UpdateProjectField(ctx, projectID, field, value)
	if err != nil {
		return fmt.Errorf("projects.UpdateProjectField: %w", err)
	}
	if !updated {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	return nil
}

func (s *Catalog) DeleteProject(ctx context.Context, projectID string) error {
	removed, err := s.projects.DeleteProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("projects.DeleteProject: %w", err)
	}
	if !removed {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}

	return nil
}
