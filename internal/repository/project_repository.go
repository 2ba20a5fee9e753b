package repository

import (
	"context"

	"github.com/Shattajit/Mini-CRM/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	// List returns every project with its client attached, newest first.
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Update(ctx context.Context, id string, updates map[string]any) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

type GormProjectRepository struct {
	db *gorm.DB
}

func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error, opWrite)
}

func (r *GormProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Preload("Client").
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, translate(err, opRead)
	}
	return projects, nil
}

func (r *GormProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return &p, nil
}

func (r *GormProjectRepository) Update(ctx context.Context, id string, updates map[string]any) (*models.Project, error) {
	if err := updateByID(ctx, r.db, &models.Project{}, id, updates); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *GormProjectRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.Project{}, id)
}
