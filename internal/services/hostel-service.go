package services

import (
	"fmt"
	"time"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/internal/repository"
	"github.com/google/uuid"
)

type HostelService interface {
	Apply(actor domain.AuthContext, input dto.HostelApplyRequest) (*domain.HostelApplication, error)
	GetStatus(actor domain.AuthContext) (*domain.HostelApplication, error)
	Process(actor domain.AuthContext, applicationID uuid.UUID, input dto.HostelProcessRequest) (*domain.HostelApplication, error)
}

type hostelService struct {
	repo repository.HostelRepository
}

func NewHostelService(repo repository.HostelRepository) HostelService {
	return &hostelService{repo: repo}
}

func (s *hostelService) Apply(actor domain.AuthContext, input dto.HostelApplyRequest) (*domain.HostelApplication, error) {
	if !input.RoomTypePreference.Valid() {
		return nil, fmt.Errorf("%w: unknown room type %q", domain.ErrValidation, input.RoomTypePreference)
	}

	if _, err := s.repo.FindByUser(actor.UserID); err == nil {
		return nil, fmt.Errorf("%w: hostel application already exists", domain.ErrAlreadyExists)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	app := &domain.HostelApplication{
		UserID:              actor.UserID,
		UniversityID:        actor.UniversityID,
		RoomTypePreference:  input.RoomTypePreference,
		Status:              domain.HostelStatusPending,
		SpecialRequirements: input.SpecialRequirements,
	}
	if err := s.repo.CreateApplication(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *hostelService) GetStatus(actor domain.AuthContext) (*domain.HostelApplication, error) {
	return s.repo.FindByUser(actor.UserID)
}

func (s *hostelService) Process(actor domain.AuthContext, applicationID uuid.UUID, input dto.HostelProcessRequest) (*domain.HostelApplication, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.Status)
	}
	if input.Status == domain.HostelStatusAllocated && input.AllocatedRoomNumber == nil {
		return nil, fmt.Errorf("%w: allocated_room_number is required when allocating", domain.ErrValidation)
	}

	app, err := s.repo.FindByID(applicationID)
	if err != nil {
		return nil, err
	}
	if !actor.SameTenant(app.UniversityID) {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	processor := actor.UserID

	app.Status = input.Status
	app.ProcessedBy = &processor
	app.ProcessedAt = &now
	if input.AllocatedRoomNumber != nil {
		app.AllocatedRoomNumber = input.AllocatedRoomNumber
	}
	if input.AllocatedBlock != nil {
		app.AllocatedBlock = input.AllocatedBlock
	}
	if input.Floor != nil {
		app.Floor = input.Floor
	}
	if input.AdminNotes != nil {
		app.AdminNotes = input.AdminNotes
	}

	if err := s.repo.SaveApplication(app); err != nil {
		return nil, err
	}
	return app, nil
}
