package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// PartnerType distinguishes individual providers from companies.
type PartnerType string

const (
	PartnerTypeIndividual PartnerType = "individual"
	PartnerTypeCompany    PartnerType = "company"
)

// ServicePartnerStatus controls whether the profile is visible to scheduling and assignment.
type ServicePartnerStatus string

const (
	ServicePartnerStatusActive    ServicePartnerStatus = "active"
	ServicePartnerStatusInactive  ServicePartnerStatus = "inactive"
	ServicePartnerStatusSuspended ServicePartnerStatus = "suspended"
)

// DocumentType is the kind of a verification document.
type DocumentType string

const (
	DocumentTypeProfessionalCertificate DocumentType = "professional_certificate"
	DocumentTypeIdentityProof           DocumentType = "identity_proof"
	DocumentTypeAddressProof            DocumentType = "address_proof"
	DocumentTypeBusinessLicense         DocumentType = "business_license"
)

// DocumentStatus is the review state of a single verification document.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// ServicePartner is the admin-facing profile of a partner. Each User owns at most one.
type ServicePartner struct {
	ID                    uuid.UUID
	UserID                uuid.UUID // Owning User. The relation is 1:1.
	BusinessName          string
	PartnerType           PartnerType
	Categories            []uuid.UUID // ServiceCategory ids.
	ServiceAreas          []ServiceArea
	IsVerified            bool
	Status                ServicePartnerStatus
	VerificationDocuments []VerificationDocument
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ServiceArea is a city together with the localities and postal codes served in it.
type ServiceArea struct {
	City     string
	Areas    []string
	PinCodes []string
}

// VerificationDocument is one uploaded document under admin review.
// Notes and ReviewedAt are written by the admin console.
type VerificationDocument struct {
	DocumentType DocumentType
	DocumentURL  string
	Status       DocumentStatus
	Notes        string
	ReviewedAt   *time.Time
}

// Equal reports whether two service areas hold the same values.
func (a ServiceArea) Equal(other ServiceArea) bool {
	return a.City == other.City &&
		slices.Equal(a.Areas, other.Areas) &&
		slices.Equal(a.PinCodes, other.PinCodes)
}

// Equal reports whether two verification documents hold the same values.
func (d VerificationDocument) Equal(other VerificationDocument) bool {
	if d.DocumentType != other.DocumentType ||
		d.DocumentURL != other.DocumentURL ||
		d.Status != other.Status ||
		d.Notes != other.Notes {
		return false
	}

	switch {
	case d.ReviewedAt == nil && other.ReviewedAt == nil:
		return true
	case d.ReviewedAt == nil || other.ReviewedAt == nil:
		return false
	default:
		return d.ReviewedAt.Equal(*other.ReviewedAt)
	}
}

// Clone returns a deep copy so callers can mutate the result without touching the original.
func (sp *ServicePartner) Clone() *ServicePartner {
	if sp == nil {
		return nil
	}

	cloned := *sp
	cloned.Categories = slices.Clone(sp.Categories)

	cloned.ServiceAreas = make([]ServiceArea, len(sp.ServiceAreas))
	for i, area := range sp.ServiceAreas {
		cloned.ServiceAreas[i] = ServiceArea{
			City:     area.City,
			Areas:    slices.Clone(area.Areas),
			PinCodes: slices.Clone(area.PinCodes),
		}
	}

	cloned.VerificationDocuments = make([]VerificationDocument, len(sp.VerificationDocuments))
	for i, doc := range sp.VerificationDocuments {
		if doc.ReviewedAt != nil {
			reviewedAt := *doc.ReviewedAt
			doc.ReviewedAt = &reviewedAt
		}
		cloned.VerificationDocuments[i] = doc
	}

	return &cloned
}
