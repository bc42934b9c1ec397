package model

import (
	"time"

	"github.com/google/uuid"
)

// ServicePartnerModel mirrors the 'service_partners' table read by the admin console.
// user_id is unique so a User can own at most one profile.
type ServicePartnerModel struct {
	ID                    uuid.UUID                  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName          string                     `gorm:"type:varchar(200);not null"`
	PartnerType           string                     `gorm:"type:varchar(16);not null"`
	Categories            []uuid.UUID                `gorm:"type:jsonb;serializer:json"`
	ServiceAreas          []ServiceAreaData          `gorm:"type:jsonb;serializer:json"`
	IsVerified            bool                       `gorm:"not null;default:false"`
	Status                string                     `gorm:"type:varchar(16);not null;index"`
	VerificationDocuments []VerificationDocumentData `gorm:"type:jsonb;serializer:json"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ServicePartnerModel) TableName() string {
	return "service_partners"
}

// ServiceAreaData is the JSON shape of one element of service_partners.service_areas.
type ServiceAreaData struct {
	City     string   `json:"city"`
	Areas    []string `json:"areas"`
	PinCodes []string `json:"pinCodes"`
}

// VerificationDocumentData is the JSON shape of one element of service_partners.verification_documents.
type VerificationDocumentData struct {
	DocumentType string     `json:"documentType"`
	DocumentURL  string     `json:"documentUrl"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
}
