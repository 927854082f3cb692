package repository

import (
	"errors"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	CreatePayment(p *domain.Payment) error
	FindByIDForUser(id, userID uuid.UUID) (*domain.Payment, error)
	SavePayment(p *domain.Payment) error
	ListByUser(userID uuid.UUID) ([]domain.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreatePayment(p *domain.Payment) error {
	return r.db.Create(p).Error
}

func (r *paymentRepository) FindByIDForUser(id, userID uuid.UUID) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) SavePayment(p *domain.Payment) error {
	return r.db.Save(p).Error
}

func (r *paymentRepository) ListByUser(userID uuid.UUID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
