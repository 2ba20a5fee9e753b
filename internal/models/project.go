package models

import "gorm.io/datatypes"

type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "Pending"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusOnHold     ProjectStatus = "On Hold"
)

var ProjectStatuses = []ProjectStatus{
	ProjectStatusPending,
	ProjectStatusInProgress,
	ProjectStatusCompleted,
	ProjectStatusOnHold,
}

func (s ProjectStatus) Valid() bool {
	for _, status := range ProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Project struct {
	BaseModel

	Title    string         `gorm:"not null"`
	Budget   float64        `gorm:"not null"`
	Deadline datatypes.Date `gorm:"not null"`
	Status   ProjectStatus  `gorm:"type:varchar(32);not null;index"`
	ClientID string         `gorm:"type:varchar(36);not null;index"`

	// Relationships
	Client *Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION"`
}
