package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentStatusTransitions(t *testing.T) {
	cases := []struct {
		from    DocumentStatus
		to      DocumentStatus
		allowed bool
	}{
		{DocumentStatusPending, DocumentStatusPending, false},
		{DocumentStatusPending, DocumentStatusUnderReview, true},
		{DocumentStatusPending, DocumentStatusApproved, true},
		{DocumentStatusPending, DocumentStatusRejected, true},

		{DocumentStatusUnderReview, DocumentStatusPending, false},
		{DocumentStatusUnderReview, DocumentStatusUnderReview, false},
		{DocumentStatusUnderReview, DocumentStatusApproved, true},
		{DocumentStatusUnderReview, DocumentStatusRejected, true},

		{DocumentStatusApproved, DocumentStatusPending, false},
		{DocumentStatusApproved, DocumentStatusUnderReview, false},
		{DocumentStatusApproved, DocumentStatusApproved, false},
		{DocumentStatusApproved, DocumentStatusRejected, false},

		{DocumentStatusRejected, DocumentStatusPending, true},
		{DocumentStatusRejected, DocumentStatusUnderReview, false},
		{DocumentStatusRejected, DocumentStatusApproved, false},
		{DocumentStatusRejected, DocumentStatusRejected, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equalf(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestDocumentStatusValid(t *testing.T) {
	assert.True(t, DocumentStatusPending.Valid())
	assert.True(t, DocumentStatusUnderReview.Valid())
	assert.True(t, DocumentStatusApproved.Valid())
	assert.True(t, DocumentStatusRejected.Valid())
	assert.False(t, DocumentStatus("archived").Valid())
	assert.False(t, DocumentStatus("").Valid())
}

func TestTransitionErrorUnwrapsToInvalidTransition(t *testing.T) {
	err := &TransitionError{From: DocumentStatusApproved, To: DocumentStatusRejected}

	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, "cannot transition from 'approved' to 'rejected'", err.Error())
}

func TestKnownDocumentType(t *testing.T) {
	assert.True(t, KnownDocumentType("aadhar_card"))
	assert.True(t, KnownDocumentType("other"))
	assert.False(t, KnownDocumentType("passport"))
	assert.False(t, KnownDocumentType(""))
}
