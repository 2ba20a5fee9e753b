package models

type Client struct {
	BaseModel

	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Phone   string `gorm:"not null"`
	Company *string
	Notes   *string `gorm:"type:text"`
}
