package services

import (
	"strings"
	"testing"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentInitiate(t *testing.T) {
	actor := studentActor(uuid.New())
	repo := newFakePaymentRepo()
	svc := NewPaymentService(repo, &fakeProducer{})

	p, err := svc.Initiate(actor, dto.PaymentInitiateRequest{
		PaymentType: "tuition",
		Amount:      50000,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPending, p.Status)
	assert.Equal(t, "INR", p.Currency)
	assert.Nil(t, p.TransactionID)
	assert.Nil(t, p.PaidAt)
}

func TestPaymentInitiateValidation(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo(), &fakeProducer{})
	actor := studentActor(uuid.New())

	_, err := svc.Initiate(actor, dto.PaymentInitiateRequest{PaymentType: "bribery", Amount: 100})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Initiate(actor, dto.PaymentInitiateRequest{PaymentType: "tuition", Amount: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Initiate(actor, dto.PaymentInitiateRequest{PaymentType: "tuition", Amount: -5})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentVerifyCompletesPending(t *testing.T) {
	actor := studentActor(uuid.New())
	repo := newFakePaymentRepo()
	producer := &fakeProducer{}
	svc := NewPaymentService(repo, producer)

	p, err := svc.Initiate(actor, dto.PaymentInitiateRequest{PaymentType: "tuition", Amount: 50000})
	require.NoError(t, err)

	verified, err := svc.Verify(actor, p.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusCompleted, verified.Status)
	require.NotNil(t, verified.TransactionID)
	assert.True(t, strings.HasPrefix(*verified.TransactionID, "TXN-"))
	assert.Len(t, *verified.TransactionID, 16)
	assert.Equal(t, strings.ToUpper(*verified.TransactionID), *verified.TransactionID)
	assert.NotNil(t, verified.PaidAt)

	require.Len(t, producer.keys, 1)
	assert.Equal(t, "payment.completed", producer.keys[0])
}

func TestPaymentVerifyRejectsNonPending(t *testing.T) {
	actor := studentActor(uuid.New())
	repo := newFakePaymentRepo()
	svc := NewPaymentService(repo, &fakeProducer{})

	p, err := svc.Initiate(actor, dto.PaymentInitiateRequest{PaymentType: "hostel", Amount: 12000})
	require.NoError(t, err)

	_, err = svc.Verify(actor, p.ID)
	require.NoError(t, err)

	_, err = svc.Verify(actor, p.ID)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentVerifyOtherUsersPaymentHidden(t *testing.T) {
	owner := studentActor(uuid.New())
	repo := newFakePaymentRepo()
	svc := NewPaymentService(repo, &fakeProducer{})

	p, err := svc.Initiate(owner, dto.PaymentInitiateRequest{PaymentType: "tuition", Amount: 100})
	require.NoError(t, err)

	intruder := studentActor(owner.UniversityID)
	_, err = svc.Verify(intruder, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
