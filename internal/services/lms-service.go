package services

import (
	"context"
	"fmt"
	"time"

	"github.com/campuskit/onboarding_service/internal/clients/lms"
	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/interfaces"
	"github.com/campuskit/onboarding_service/internal/repository"
)

// Provisioner creates an account on the external LMS platform.
// Satisfied by *lms.Client.
type Provisioner interface {
	ProvisionAccount(ctx context.Context, email string) (*lms.ProvisionResult, error)
}

type LMSService interface {
	Activate(ctx context.Context, actor domain.AuthContext) (*domain.LMSActivation, error)
	GetStatus(actor domain.AuthContext) (*domain.LMSActivation, error)
}

type lmsService struct {
	repo        repository.LMSRepository
	users       repository.UserRepository
	provisioner Provisioner
	producer    interfaces.ProducerHandler
}

func NewLMSService(
	repo repository.LMSRepository,
	users repository.UserRepository,
	provisioner Provisioner,
	producer interfaces.ProducerHandler,
) LMSService {
	return &lmsService{
		repo:        repo,
		users:       users,
		provisioner: provisioner,
		producer:    producer,
	}
}

func (s *lmsService) Activate(ctx context.Context, actor domain.AuthContext) (*domain.LMSActivation, error) {
	existing, err := s.repo.FindByUser(actor.UserID)
	if err == nil && existing.IsActivated {
		return nil, fmt.Errorf("%w: lms already activated", domain.ErrAlreadyExists)
	}
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}
	if err != nil {
		existing = nil
	}

	user, err := s.users.FindUserByID(actor.UserID)
	if err != nil {
		return nil, err
	}

	account, err := s.provisioner.ProvisionAccount(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if existing != nil {
		existing.IsActivated = true
		existing.Platform = account.Platform
		existing.LMSUsername = &account.Username
		existing.ActivationKey = &account.ActivationKey
		existing.ActivatedAt = &now
		if err := s.repo.SaveActivation(existing); err != nil {
			return nil, err
		}
		s.publish(existing)
		return existing, nil
	}

	activation := &domain.LMSActivation{
		UserID:        actor.UserID,
		UniversityID:  actor.UniversityID,
		Platform:      account.Platform,
		IsActivated:   true,
		LMSUsername:   &account.Username,
		ActivationKey: &account.ActivationKey,
		ActivatedAt:   &now,
	}
	if err := s.repo.CreateActivation(activation); err != nil {
		return nil, err
	}
	s.publish(activation)
	return activation, nil
}

func (s *lmsService) publish(a *domain.LMSActivation) {
	if s.producer == nil {
		return
	}
	payload := fmt.Sprintf(
		`{"user_id":"%s","platform":"%s","activated_at":"%s"}`,
		a.UserID, a.Platform, a.ActivatedAt.Format(time.RFC3339),
	)
	_ = s.producer.PublishMessage([]byte("lms.activated"), []byte(payload))
}

// GetStatus returns the activation row, or a zero-value inactive record when
// the user has never activated.
func (s *lmsService) GetStatus(actor domain.AuthContext) (*domain.LMSActivation, error) {
	a, err := s.repo.FindByUser(actor.UserID)
	if err != nil {
		if domain.IsNotFound(err) {
			return &domain.LMSActivation{
				UserID:       actor.UserID,
				UniversityID: actor.UniversityID,
				Platform:     "Moodle",
				IsActivated:  false,
			}, nil
		}
		return nil, err
	}
	return a, nil
}
