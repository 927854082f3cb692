package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/internal/helper"
	"github.com/campuskit/onboarding_service/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(input dto.RegisterRequest) (string, error)
	Login(input dto.UserLogin) (string, error)
	GetProfile(actor domain.AuthContext) (*domain.User, error)
	UpdateProfile(actor domain.AuthContext, input dto.UpdateUserProfile) (*domain.User, error)
}

type userService struct {
	users        repository.UserRepository
	universities repository.UniversityRepository
	auth         helper.Auth
}

func NewUserService(
	users repository.UserRepository,
	universities repository.UniversityRepository,
	auth helper.Auth,
) UserService {
	return &userService{
		users:        users,
		universities: universities,
		auth:         auth,
	}
}

func (s *userService) Register(input dto.RegisterRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	if len(input.Password) < 8 {
		return "", fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}
	if strings.TrimSpace(input.UniversitySlug) == "" {
		return "", fmt.Errorf("%w: university_slug is required", domain.ErrValidation)
	}

	uni, err := s.universities.FindBySlug(strings.TrimSpace(input.UniversitySlug))
	if err != nil {
		if domain.IsNotFound(err) {
			return "", fmt.Errorf("%w: unknown university", domain.ErrValidation)
		}
		return "", err
	}
	if !uni.IsActive {
		return "", fmt.Errorf("%w: university is not accepting registrations", domain.ErrValidation)
	}

	count, err := s.users.CountStudents(uni.ID)
	if err != nil {
		return "", err
	}
	if uni.MaxStudents > 0 && count >= int64(uni.MaxStudents) {
		return "", fmt.Errorf("%w: university has reached its student limit", domain.ErrValidation)
	}

	if _, err := s.users.FindUserByEmail(email); err == nil {
		return "", fmt.Errorf("%w: email already registered", domain.ErrAlreadyExists)
	} else if !domain.IsNotFound(err) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        strings.TrimSpace(input.Phone),
		Role:         domain.RoleStudent,
		UniversityID: &uni.ID,
		IsActive:     true,
	}
	if err := s.users.CreateUser(user); err != nil {
		return "", err
	}
	user.University = uni

	return s.auth.GenerateToken(user)
}

func (s *userService) Login(input dto.UserLogin) (string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
		}
		return "", err
	}
	if !user.IsActive {
		return "", fmt.Errorf("%w: account disabled", domain.ErrUnauthorized)
	}
	if err := s.auth.VerifyPassword(input.Password, user.PasswordHash); err != nil {
		return "", fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := s.users.SaveUser(user); err != nil {
		return "", err
	}

	return s.auth.GenerateToken(user)
}

func (s *userService) GetProfile(actor domain.AuthContext) (*domain.User, error) {
	return s.users.FindUserByID(actor.UserID)
}

// UpdateProfile applies only the fields present in the request; absent fields
// are left untouched.
func (s *userService) UpdateProfile(actor domain.AuthContext, input dto.UpdateUserProfile) (*domain.User, error) {
	user, err := s.users.FindUserByID(actor.UserID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}

	if err := s.users.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}
