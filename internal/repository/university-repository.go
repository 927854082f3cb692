package repository

import (
	"errors"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UniversityRepository interface {
	CreateUniversity(u *domain.University) error
	FindByID(id uuid.UUID) (*domain.University, error)
	FindBySlug(slug string) (*domain.University, error)
	FindByDomain(emailDomain string) (*domain.University, error)
	SaveUniversity(u *domain.University) error
}

type universityRepository struct {
	db *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) UniversityRepository {
	return &universityRepository{db: db}
}

func (r *universityRepository) CreateUniversity(u *domain.University) error {
	return r.db.Create(u).Error
}

func (r *universityRepository) FindByID(id uuid.UUID) (*domain.University, error) {
	var u domain.University
	err := r.db.First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *universityRepository) FindBySlug(slug string) (*domain.University, error) {
	var u domain.University
	err := r.db.Where("slug = ?", slug).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *universityRepository) FindByDomain(emailDomain string) (*domain.University, error) {
	var u domain.University
	err := r.db.Where("domain = ?", emailDomain).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *universityRepository) SaveUniversity(u *domain.University) error {
	return r.db.Save(u).Error
}
