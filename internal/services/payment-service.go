package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/internal/interfaces"
	"github.com/campuskit/onboarding_service/internal/repository"
	"github.com/google/uuid"
)

type PaymentService interface {
	Initiate(actor domain.AuthContext, input dto.PaymentInitiateRequest) (*domain.Payment, error)
	Verify(actor domain.AuthContext, paymentID uuid.UUID) (*domain.Payment, error)
	ListOwn(actor domain.AuthContext) (*dto.PaymentListResponse, error)
}

type paymentService struct {
	repo     repository.PaymentRepository
	producer interfaces.ProducerHandler
}

func NewPaymentService(repo repository.PaymentRepository, producer interfaces.ProducerHandler) PaymentService {
	return &paymentService{repo: repo, producer: producer}
}

func (s *paymentService) Initiate(actor domain.AuthContext, input dto.PaymentInitiateRequest) (*domain.Payment, error) {
	paymentType := strings.TrimSpace(input.PaymentType)
	if !domain.KnownPaymentType(paymentType) {
		return nil, fmt.Errorf("%w: unknown payment type %q", domain.ErrValidation, paymentType)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "INR"
	}

	p := &domain.Payment{
		UserID:        actor.UserID,
		UniversityID:  actor.UniversityID,
		PaymentType:   paymentType,
		Amount:        input.Amount,
		Currency:      currency,
		Status:        domain.PaymentStatusPending,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}
	if err := s.repo.CreatePayment(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Verify settles a pending payment. There is no gateway integration; the
// transaction id is generated here and the payment marked completed.
func (s *paymentService) Verify(actor domain.AuthContext, paymentID uuid.UUID) (*domain.Payment, error) {
	p, err := s.repo.FindByIDForUser(paymentID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PaymentStatusPending {
		return nil, fmt.Errorf("%w: payment is %s, only pending payments can be verified", domain.ErrValidation, p.Status)
	}

	txnID, err := newTransactionID()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p.Status = domain.PaymentStatusCompleted
	p.TransactionID = &txnID
	p.PaidAt = &now

	if err := s.repo.SavePayment(p); err != nil {
		return nil, err
	}

	if s.producer != nil {
		payload := fmt.Sprintf(
			`{"payment_id":"%s","user_id":"%s","amount":%.2f,"transaction_id":"%s"}`,
			p.ID, p.UserID, p.Amount, txnID,
		)
		_ = s.producer.PublishMessage([]byte("payment.completed"), []byte(payload))
	}

	return p, nil
}

func (s *paymentService) ListOwn(actor domain.AuthContext) (*dto.PaymentListResponse, error) {
	payments, err := s.repo.ListByUser(actor.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentListResponse{Payments: payments, Total: len(payments)}, nil
}

func newTransactionID() (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "TXN-" + strings.ToUpper(hex.EncodeToString(b)), nil
}
