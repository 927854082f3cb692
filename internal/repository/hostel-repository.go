package repository

import (
	"errors"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HostelRepository interface {
	CreateApplication(app *domain.HostelApplication) error
	FindByUser(userID uuid.UUID) (*domain.HostelApplication, error)
	FindByID(id uuid.UUID) (*domain.HostelApplication, error)
	SaveApplication(app *domain.HostelApplication) error
}

type hostelRepository struct {
	db *gorm.DB
}

func NewHostelRepository(db *gorm.DB) HostelRepository {
	return &hostelRepository{db: db}
}

func (r *hostelRepository) CreateApplication(app *domain.HostelApplication) error {
	return r.db.Create(app).Error
}

func (r *hostelRepository) FindByUser(userID uuid.UUID) (*domain.HostelApplication, error) {
	var app domain.HostelApplication
	err := r.db.Where("user_id = ?", userID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *hostelRepository) FindByID(id uuid.UUID) (*domain.HostelApplication, error) {
	var app domain.HostelApplication
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *hostelRepository) SaveApplication(app *domain.HostelApplication) error {
	return r.db.Save(app).Error
}
