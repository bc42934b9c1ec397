package entity

import (
	"strings"
	"unicode"
)

// Fallback values used when a Partner leaves a field blank.
const (
	FallbackText       = "Unknown"
	PlaceholderPincode = "000000"

	// DefaultDocumentType is the kind assigned to every document uploaded through onboarding.
	DefaultDocumentType = DocumentTypeProfessionalCertificate

	displayNamePrefix = "Partner "
	syntheticLocal    = "partner"
)

// ResolveDisplayName returns the partner's full name, or a literal derived from the phone number.
func ResolveDisplayName(p *Partner) string {
	if name := strings.TrimSpace(p.FullName); name != "" {
		return name
	}

	return displayNamePrefix + strings.TrimSpace(p.PhoneNumber)
}

// ResolveCity returns the partner's city or FallbackText.
func ResolveCity(p *Partner) string {
	return orFallback(p.City, FallbackText)
}

// ResolveAreas returns the single-locality list built from the partner's address.
func ResolveAreas(p *Partner) []string {
	return []string{orFallback(p.Address, FallbackText)}
}

// ResolvePinCodes returns the single-pincode list built from the partner's pincode.
func ResolvePinCodes(p *Partner) []string {
	return []string{orFallback(p.Pincode, PlaceholderPincode)}
}

// ResolveServiceArea builds the service area a partner is created with.
func ResolveServiceArea(p *Partner) ServiceArea {
	return ServiceArea{
		City:     ResolveCity(p),
		Areas:    ResolveAreas(p),
		PinCodes: ResolvePinCodes(p),
	}
}

// ResolveDocumentStatus maps the partner review status onto a document status.
// Only approved partners have approved documents; everything else is pending.
func ResolveDocumentStatus(p *Partner) DocumentStatus {
	if p.IsApproved() {
		return DocumentStatusApproved
	}

	return DocumentStatusPending
}

// SyntheticEmail derives a stable placeholder address from a phone number.
// The same phone always yields the same address.
func SyntheticEmail(phone, domain string) string {
	var local strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			local.WriteRune(r)
		}
	}
	if local.Len() == 0 {
		local.WriteString(syntheticLocal)
	}

	return local.String() + "@" + strings.ToLower(strings.TrimSpace(domain))
}

// ResolveEmail returns the partner's email, or the synthetic address for its phone.
func ResolveEmail(p *Partner, domain string) string {
	if email := strings.TrimSpace(p.Email); email != "" {
		return email
	}

	return SyntheticEmail(p.PhoneNumber, domain)
}

func orFallback(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}

	return fallback
}
