package repository

import (
	"github.com/Shattajit/Mini-CRM/internal/filters"
	"gorm.io/gorm"
)

// Relations are preloaded with just enough columns for display. A missing
// optional relation stays nil.

func preloadClientSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func preloadProjectSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title")
}

func withSummaries(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Client", preloadClientSummary).
		Preload("Project", preloadProjectSummary)
}

func interactionFilter(f filters.InteractionFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.ClientID != "" {
			db = db.Where("client_id = ?", f.ClientID)
		}
		if f.ProjectID != "" {
			db = db.Where("project_id = ?", f.ProjectID)
		}
		return db
	}
}

func reminderFilter(f filters.ReminderFilter, upcoming filters.Window) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.ClientID != "" {
			db = db.Where("client_id = ?", f.ClientID)
		}
		if f.ProjectID != "" {
			db = db.Where("project_id = ?", f.ProjectID)
		}
		if f.Completed != nil {
			db = db.Where("is_completed = ?", *f.Completed)
		}
		if f.Upcoming {
			db = dueWithin(upcoming)(db)
		}
		return db
	}
}

func dueWithin(w filters.Window) func(*gorm.DB) *gorm.DB {
	w = w.UTC()
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("due_date >= ? AND due_date <= ?", w.Start, w.End)
	}
}
