package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/port"
)

type projectRepository struct {
	col *mongo.Collection
}

func NewProject(db *mongo.Database) port.ProjectRepository {
	return &projectRepository{
		col: db.Collection(CollectionProjects),
	}
}

type projectDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Address     string    `bson:"address"`
	Images      []string  `bson:"images"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (r *projectRepository) GetProject(ctx context.Context, projectID string) (domain.Project, error) {
	var doc projectDoc
	err := r.col.FindOne(ctx, bson.M{"_id": projectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Project{}, fmt.Errorf("col.FindOne: %w", domain.ErrNotFound)
		}
		return domain.Project{}, fmt.Errorf("col.FindOne: %w", err)
	}

	return mapProjectDocToDomain(doc), nil
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("col.Find: %w", err)
	}

	var docs []projectDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	return lo.Map(docs, func(doc projectDoc, _ int) domain.Project { return mapProjectDocToDomain(doc) }), nil
}

func (r *projectRepository) InsertProject(ctx context.Context, project domain.Project) error {
	if _, err := r.col.InsertOne(ctx, mapDomainProjectToDoc(project)); err != nil {
		return fmt.Errorf("col.InsertOne: %w", err)
	}

	return nil
}

func (r *projectRepository) UpdateProjectField(ctx context.Context, projectID, field string, value any) (bool, error) {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": projectID}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return false, fmt.Errorf("col.UpdateOne: %w", err)
	}

	return result.MatchedCount > 0, nil
}

func (r *projectRepository) DeleteProject(ctx context.Context, projectID string) (bool, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": projectID})
	if err != nil {
		return false, fmt.Errorf("col.DeleteOne: %w", err)
	}

	return result.DeletedCount > 0, nil
}

func mapProjectDocToDomain(doc projectDoc) domain.Project {
	return domain.Project{
		ID:          doc.ID,
		Title:       doc.Title,
		Description: doc.Description,
		Address:     doc.Address,
		Images:      doc.Images,
		CreatedAt:   doc.CreatedAt,
	}
}

func mapDomainProjectToDoc(project domain.Project) projectDoc {
	return projectDoc{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Address:     project.Address,
		Images:      project.Images,
		CreatedAt:   project.CreatedAt,
	}
}
