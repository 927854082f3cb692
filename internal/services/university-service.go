package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campuskit/onboarding_service/infra/cache"
	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/internal/repository"
	"github.com/google/uuid"
)

const universityCacheTTL = 10 * time.Minute

type UniversityService interface {
	Create(actor domain.AuthContext, input dto.UniversityCreateRequest) (*domain.University, error)
	GetOwn(ctx context.Context, actor domain.AuthContext) (*domain.University, error)
	GetBySlug(ctx context.Context, slug string) (*domain.University, error)
	Update(ctx context.Context, actor domain.AuthContext, input dto.UniversityUpdateRequest) (*domain.University, error)
}

type universityService struct {
	repo  repository.UniversityRepository
	cache *cache.Cache
}

func NewUniversityService(repo repository.UniversityRepository, c *cache.Cache) UniversityService {
	return &universityService{repo: repo, cache: c}
}

func (s *universityService) Create(actor domain.AuthContext, input dto.UniversityCreateRequest) (*domain.University, error) {
	if actor.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(input.Name)
	slug := strings.ToLower(strings.TrimSpace(input.Slug))
	if name == "" || slug == "" {
		return nil, fmt.Errorf("%w: name and slug are required", domain.ErrValidation)
	}

	if _, err := s.repo.FindBySlug(slug); err == nil {
		return nil, fmt.Errorf("%w: slug already taken", domain.ErrAlreadyExists)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	u := &domain.University{
		Name:        name,
		Slug:        slug,
		Domain:      strings.TrimSpace(input.Domain),
		Description: input.Description,
		MaxStudents: input.MaxStudents,
		IsActive:    true,
	}
	if u.MaxStudents <= 0 {
		u.MaxStudents = 100
	}
	if err := s.repo.CreateUniversity(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *universityService) GetOwn(ctx context.Context, actor domain.AuthContext) (*domain.University, error) {
	if actor.UniversityID == uuid.Nil {
		return nil, domain.ErrNotFound
	}
	key := cacheKey(actor.UniversityID)

	var cached domain.University
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	u, err := s.repo.FindByID(actor.UniversityID)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, u, universityCacheTTL)
	return u, nil
}

// GetBySlug is unauthenticated: it feeds the public registration page with
// branding for the tenant.
func (s *universityService) GetBySlug(ctx context.Context, slug string) (*domain.University, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", domain.ErrValidation)
	}
	return s.repo.FindBySlug(slug)
}

func (s *universityService) Update(ctx context.Context, actor domain.AuthContext, input dto.UniversityUpdateRequest) (*domain.University, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	u, err := s.repo.FindByID(actor.UniversityID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		u.Name = strings.TrimSpace(*input.Name)
	}
	if input.Domain != nil {
		u.Domain = strings.TrimSpace(*input.Domain)
	}
	if input.LogoURL != nil {
		u.LogoURL = input.LogoURL
	}
	if input.PrimaryColor != nil {
		u.PrimaryColor = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		u.SecondaryColor = *input.SecondaryColor
	}
	if input.Description != nil {
		u.Description = input.Description
	}
	if input.MaxStudents != nil {
		if *input.MaxStudents <= 0 {
			return nil, fmt.Errorf("%w: max_students must be positive", domain.ErrValidation)
		}
		u.MaxStudents = *input.MaxStudents
	}

	if err := s.repo.SaveUniversity(u); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, cacheKey(u.ID))
	return u, nil
}

func cacheKey(universityID uuid.UUID) string {
	return "university:" + universityID.String()
}
