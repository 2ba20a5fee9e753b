package repository

import (
	"context"

	"github.com/Shattajit/Mini-CRM/internal/models"
	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	// List returns every client, newest first.
	List(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
	Update(ctx context.Context, id string, updates map[string]any) (*models.Client, error)
	Delete(ctx context.Context, id string) error
}

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) Create(ctx context.Context, client *models.Client) error {
	return translate(r.db.WithContext(ctx).Create(client).Error, opWrite)
}

func (r *GormClientRepository) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return clients, nil
}

func (r *GormClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return &c, nil
}

func (r *GormClientRepository) Update(ctx context.Context, id string, updates map[string]any) (*models.Client, error) {
	if err := updateByID(ctx, r.db, &models.Client{}, id, updates); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *GormClientRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.Client{}, id)
}
