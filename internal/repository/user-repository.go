package repository

import (
	"errors"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) error
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByID(id uuid.UUID) (*domain.User, error)
	SaveUser(user *domain.User) error
	CountStudents(universityID uuid.UUID) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Preload("University").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindUserByID(id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.Preload("University").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) CountStudents(universityID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).
		Where("university_id = ? AND role = ?", universityID, domain.RoleStudent).
		Count(&n).Error
	return n, err
}
