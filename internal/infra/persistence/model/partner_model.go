package model

import (
	"time"

	"github.com/google/uuid"
)

// PartnerModel mirrors the 'partners' table written by the mobile onboarding flow.
type PartnerModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PhoneNumber       string    `gorm:"type:varchar(32);not null;index"`
	Email             string    `gorm:"type:varchar(255);index"`
	FullName          string    `gorm:"type:varchar(200)"`
	Address           string    `gorm:"type:text"`
	City              string    `gorm:"type:varchar(100)"`
	State             string    `gorm:"type:varchar(100)"`
	Pincode           string    `gorm:"type:varchar(16)"`
	ServiceCategories []string  `gorm:"type:jsonb;serializer:json"`
	Documents         []string  `gorm:"type:jsonb;serializer:json"`
	Status            string    `gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (PartnerModel) TableName() string {
	return "partners"
}
