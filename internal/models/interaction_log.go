package models

import "time"

type InteractionType string

const (
	InteractionCall    InteractionType = "Call"
	InteractionEmail   InteractionType = "Email"
	InteractionMeeting InteractionType = "Meeting"
	InteractionNote    InteractionType = "Note"
)

var InteractionTypes = []InteractionType{
	InteractionCall,
	InteractionEmail,
	InteractionMeeting,
	InteractionNote,
}

func (t InteractionType) Valid() bool {
	for _, it := range InteractionTypes {
		if t == it {
			return true
		}
	}
	return false
}

type InteractionLog struct {
	BaseModel

	Date            time.Time       `gorm:"not null;index"`
	InteractionType InteractionType `gorm:"type:varchar(16);not null"`
	Notes           *string         `gorm:"type:text"`
	ClientID        string          `gorm:"type:varchar(36);not null;index"`
	ProjectID       *string         `gorm:"type:varchar(36);index"`

	// Relationships
	Client  *Client  `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION"`
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION"`
}
