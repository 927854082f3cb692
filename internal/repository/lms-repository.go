package repository

import (
	"errors"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LMSRepository interface {
	CreateActivation(a *domain.LMSActivation) error
	FindByUser(userID uuid.UUID) (*domain.LMSActivation, error)
	SaveActivation(a *domain.LMSActivation) error
}

type lmsRepository struct {
	db *gorm.DB
}

func NewLMSRepository(db *gorm.DB) LMSRepository {
	return &lmsRepository{db: db}
}

func (r *lmsRepository) CreateActivation(a *domain.LMSActivation) error {
	return r.db.Create(a).Error
}

func (r *lmsRepository) FindByUser(userID uuid.UUID) (*domain.LMSActivation, error) {
	var a domain.LMSActivation
	err := r.db.Where("user_id = ?", userID).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *lmsRepository) SaveActivation(a *domain.LMSActivation) error {
	return r.db.Save(a).Error
}
