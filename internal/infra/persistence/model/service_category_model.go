package model

import "github.com/google/uuid"

// ServiceCategoryModel mirrors the 'service_categories' catalog table.
type ServiceCategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(100);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceCategoryModel) TableName() string {
	return "service_categories"
}
