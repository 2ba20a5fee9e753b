package models

import "time"

type Reminder struct {
	BaseModel

	Title       string    `gorm:"not null"`
	Description *string   `gorm:"type:text"`
	DueDate     time.Time `gorm:"not null;index"`
	IsCompleted bool      `gorm:"not null;default:false;index"`
	ClientID    *string   `gorm:"type:varchar(36);index"`
	ProjectID   *string   `gorm:"type:varchar(36);index"`

	// Relationships
	Client  *Client  `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION"`
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION"`
}
