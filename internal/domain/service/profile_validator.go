package service

import "servicehub/internal/domain/entity"

// ProfileValidator checks a ServicePartner against its structural constraints before it is stored.
type ProfileValidator interface {
	// Validate returns a *errors.ValidationError listing every violated field, or nil.
	Validate(servicePartner *entity.ServicePartner) error
}
