package repository

import (
	"context"
	"time"

	"github.com/Shattajit/Mini-CRM/internal/filters"
	"github.com/Shattajit/Mini-CRM/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	// List returns the reminders matching f, soonest due date first. now
	// anchors the upcoming window when f.Upcoming is set.
	List(ctx context.Context, f filters.ReminderFilter, now time.Time) ([]models.Reminder, error)
	// DueWithin returns the reminders due inside w, soonest first.
	DueWithin(ctx context.Context, w filters.Window) ([]models.Reminder, error)
	GetByID(ctx context.Context, id string) (*models.Reminder, error)
	Update(ctx context.Context, id string, updates map[string]any) (*models.Reminder, error)
	Delete(ctx context.Context, id string) error
}

type GormReminderRepository struct {
	db *gorm.DB
}

func NewGormReminderRepository(db *gorm.DB) *GormReminderRepository {
	return &GormReminderRepository{db: db}
}

func (r *GormReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(reminder).Error, opWrite)
}

func (r *GormReminderRepository) List(ctx context.Context, f filters.ReminderFilter, now time.Time) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.WithContext(ctx).
		Scopes(reminderFilter(f, filters.UpcomingWindow(now)), withSummaries).
		Order("due_date ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, translate(err, opRead)
	}
	return reminders, nil
}

func (r *GormReminderRepository) DueWithin(ctx context.Context, w filters.Window) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.WithContext(ctx).
		Scopes(dueWithin(w), withSummaries).
		Order("due_date ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, translate(err, opRead)
	}
	return reminders, nil
}

func (r *GormReminderRepository) GetByID(ctx context.Context, id string) (*models.Reminder, error) {
	var rem models.Reminder
	if err := r.db.WithContext(ctx).Scopes(withSummaries).First(&rem, "id = ?", id).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return &rem, nil
}

func (r *GormReminderRepository) Update(ctx context.Context, id string, updates map[string]any) (*models.Reminder, error) {
	if err := updateByID(ctx, r.db, &models.Reminder{}, id, updates); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *GormReminderRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, &models.Reminder{}, id)
}
