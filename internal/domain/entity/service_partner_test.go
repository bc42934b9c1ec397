package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicePartner_CloneIsDeep(t *testing.T) {
	reviewedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	original := &ServicePartner{
		ID:           uuid.New(),
		Categories:   []uuid.UUID{uuid.New()},
		ServiceAreas: []ServiceArea{{City: "Pune", Areas: []string{"Baner"}, PinCodes: []string{"411045"}}},
		VerificationDocuments: []VerificationDocument{
			{DocumentURL: "s3://doc/1", Status: DocumentStatusPending, ReviewedAt: &reviewedAt},
		},
	}

	cloned := original.Clone()
	require.NotSame(t, original, cloned)

	cloned.Categories[0] = uuid.Nil
	cloned.ServiceAreas[0].Areas[0] = "Aundh"
	*cloned.VerificationDocuments[0].ReviewedAt = reviewedAt.Add(time.Hour)

	assert.NotEqual(t, uuid.Nil, original.Categories[0])
	assert.Equal(t, "Baner", original.ServiceAreas[0].Areas[0])
	assert.True(t, original.VerificationDocuments[0].ReviewedAt.Equal(reviewedAt))
}

func TestServicePartner_CloneNil(t *testing.T) {
	var sp *ServicePartner
	assert.Nil(t, sp.Clone())
}

func TestVerificationDocument_Equal(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sameInstant := at.In(time.FixedZone("IST", 5*3600+1800))

	a := VerificationDocument{DocumentURL: "u", Status: DocumentStatusApproved, ReviewedAt: &at}
	b := VerificationDocument{DocumentURL: "u", Status: DocumentStatusApproved, ReviewedAt: &sameInstant}
	c := VerificationDocument{DocumentURL: "u", Status: DocumentStatusApproved}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, c.Equal(c))
}
