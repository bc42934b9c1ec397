// Package model holds the GORM persistence models. They are mapped to and from domain entities
// by the postgres repositories and never leak past the infra layer.
package model

// All returns every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&PartnerModel{},
		&ServiceCategoryModel{},
		&ServicePartnerModel{},
	}
}
