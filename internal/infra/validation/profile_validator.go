// Package validation enforces the structural constraints of stored profiles.
package validation

import (
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	servicePartnerRules = map[string]string{
		"UserID":                "required",
		"BusinessName":          "required,max=200",
		"PartnerType":           "required,oneof=individual company",
		"Status":                "required,oneof=active inactive suspended",
		"Categories":            "omitempty,dive,required",
		"ServiceAreas":          "required,min=1,dive",
		"VerificationDocuments": "omitempty,dive",
	}

	serviceAreaRules = map[string]string{
		"City":     "required",
		"Areas":    "required,min=1,dive,required",
		"PinCodes": "required,min=1,dive,required",
	}

	verificationDocumentRules = map[string]string{
		"DocumentType": "required,oneof=professional_certificate identity_proof address_proof business_license",
		"DocumentURL":  "required",
		"Status":       "required,oneof=pending approved rejected",
	}
)

// profileValidator implements service.ProfileValidator with go-playground/validator.
// Rules are registered per type so domain entities stay free of tags.
type profileValidator struct {
	validate *validator.Validate
}

// NewProfileValidator builds the validator with the ServicePartner rule set.
func NewProfileValidator() service.ProfileValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidationMapRules(servicePartnerRules, entity.ServicePartner{})
	validate.RegisterStructValidationMapRules(serviceAreaRules, entity.ServiceArea{})
	validate.RegisterStructValidationMapRules(verificationDocumentRules, entity.VerificationDocument{})

	return &profileValidator{validate: validate}
}

// Validate checks a ServicePartner and reports every violated field.
func (v *profileValidator) Validate(servicePartner *entity.ServicePartner) error {
	if servicePartner == nil {
		return domainerrors.NewValidationError([]domainerrors.FieldViolation{
			{Field: "ServicePartner", Rule: "required"},
		})
	}

	err := v.validate.Struct(servicePartner)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "failed to validate service partner")
	}

	violations := make([]domainerrors.FieldViolation, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Field: fieldErr.Namespace(),
			Rule:  fieldErr.Tag(),
			Param: fieldErr.Param(),
		})
	}

	return domainerrors.NewValidationError(violations)
}
