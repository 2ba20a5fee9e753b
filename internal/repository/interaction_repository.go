package repository

import (
	"context"

	"github.com/Shattajit/Mini-CRM/internal/filters"
	"github.com/Shattajit/Mini-CRM/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.InteractionLog) error
	// List returns the interactions matching f, newest date first, with the
	// client and project summaries attached.
	List(ctx context.Context, f filters.InteractionFilter) ([]models.InteractionLog, error)
	GetByID(ctx context.Context, id string) (*models.InteractionLog, error)
	Update(ctx context.Context, id string, updates map[string]any) (*models.InteractionLog, error)
	Delete(ctx context.Context, id string) error
}

type GormInteractionRepository struct {
	db *gorm.DB
}

func NewGormInteractionRepository(db *gorm.DB) *GormInteractionRepository {
	return &GormInteractionRepository{db: db}
}

func (r *GormInteractionRepository) Create(ctx context.Context, interaction *models.InteractionLog) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(interaction).Error, opWrite)
}

func (r *GormInteractionRepository) List(ctx context.Context, f filters.InteractionFilter) ([]models.InteractionLog, error) {
	var interactions []models.InteractionLog
	err := r.db.WithContext(ctx).
		Scopes(interactionFilter(f), withSummaries).
		Order("date DESC").
		Find(&interactions).Error
	if err != nil {
		return nil, translate(err, opRead)
	}
	return interactions, nil
}

func (r *GormInteractionRepository) GetByID(ctx context.Context, id string) (*models.InteractionLog, error) {
	var i models.InteractionLog
	if err := r.db.WithContext(ctx).Scopes(withSummaries).First(&i, "id = ?", id).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return &i, nil
}

func (r *GormInteractionRepository) Update(ctx context.Context, id string, updates map[string]any) (*models.InteractionLog, error) {
	if err := updateByID(ctx, r.db, &models.InteractionLog{}, id, updates); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *GormInteractionRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.InteractionLog{}, id)
}
