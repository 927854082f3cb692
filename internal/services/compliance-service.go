package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/internal/repository"
	"github.com/google/uuid"
)

type ComplianceService interface {
	CreateItem(actor domain.AuthContext, input dto.ComplianceItemCreateRequest) (*domain.ComplianceItem, error)
	UpdateItem(actor domain.AuthContext, itemID uuid.UUID, input dto.ComplianceItemUpdateRequest) (*domain.ComplianceItem, error)
	ListItems(actor domain.AuthContext) ([]domain.ComplianceItem, error)

	Submit(actor domain.AuthContext, input dto.ComplianceSubmitRequest) (*domain.StudentCompliance, error)
	Status(actor domain.AuthContext) (*dto.ComplianceStatusResponse, error)
}

type complianceService struct {
	repo repository.ComplianceRepository
}

func NewComplianceService(repo repository.ComplianceRepository) ComplianceService {
	return &complianceService{repo: repo}
}

func (s *complianceService) CreateItem(actor domain.AuthContext, input dto.ComplianceItemCreateRequest) (*domain.ComplianceItem, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !input.ComplianceType.Valid() {
		return nil, fmt.Errorf("%w: unknown compliance type %q", domain.ErrValidation, input.ComplianceType)
	}

	item := &domain.ComplianceItem{
		UniversityID:   actor.UniversityID,
		Title:          title,
		Description:    input.Description,
		ComplianceType: input.ComplianceType,
		ContentURL:     input.ContentURL,
		Order:          input.Order,
		IsRequired:     true,
		IsActive:       true,
	}
	if input.IsRequired != nil {
		item.IsRequired = *input.IsRequired
	}
	if err := s.repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *complianceService) UpdateItem(actor domain.AuthContext, itemID uuid.UUID, input dto.ComplianceItemUpdateRequest) (*domain.ComplianceItem, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	item, err := s.repo.FindItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if !actor.SameTenant(item.UniversityID) {
		return nil, domain.ErrNotFound
	}

	if input.Title != nil {
		item.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.ContentURL != nil {
		item.ContentURL = input.ContentURL
	}
	if input.Order != nil {
		item.Order = *input.Order
	}
	if input.IsRequired != nil {
		item.IsRequired = *input.IsRequired
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if err := s.repo.SaveItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *complianceService) ListItems(actor domain.AuthContext) ([]domain.ComplianceItem, error) {
	// admins see inactive items too
	return s.repo.ListItems(actor.UniversityID, !actor.IsAdmin())
}

func (s *complianceService) Submit(actor domain.AuthContext, input dto.ComplianceSubmitRequest) (*domain.StudentCompliance, error) {
	item, err := s.repo.FindItemByID(input.ComplianceItemID)
	if err != nil {
		return nil, err
	}
	if item.UniversityID != actor.UniversityID || !item.IsActive {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()

	existing, err := s.repo.FindRecord(actor.UserID, item.ID)
	if err == nil {
		if existing.IsCompleted {
			return nil, fmt.Errorf("%w: item already completed", domain.ErrValidation)
		}
		existing.IsCompleted = true
		existing.CompletedAt = &now
		if err := s.repo.SaveRecord(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !domain.IsNotFound(err) {
		return nil, err
	}

	rec := &domain.StudentCompliance{
		UserID:           actor.UserID,
		ComplianceItemID: item.ID,
		UniversityID:     actor.UniversityID,
		IsCompleted:      true,
		CompletedAt:      &now,
	}
	if err := s.repo.CreateRecord(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Status pairs every active item with the student's completion state.
func (s *complianceService) Status(actor domain.AuthContext) (*dto.ComplianceStatusResponse, error) {
	items, err := s.repo.ListItems(actor.UniversityID, true)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListRecordsByUser(actor.UserID)
	if err != nil {
		return nil, err
	}

	completedByItem := make(map[uuid.UUID]bool, len(records))
	for _, r := range records {
		if r.IsCompleted {
			completedByItem[r.ComplianceItemID] = true
		}
	}

	resp := &dto.ComplianceStatusResponse{
		Items: make([]dto.ComplianceStatusItem, 0, len(items)),
		Total: len(items),
	}
	for _, item := range items {
		done := completedByItem[item.ID]
		if done {
			resp.Completed++
		}
		resp.Items = append(resp.Items, dto.ComplianceStatusItem{
			Item:        item,
			IsCompleted: done,
		})
	}
	return resp, nil
}
