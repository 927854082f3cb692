package services

import (
	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/internal/interfaces"
	"github.com/campuskit/onboarding_service/internal/repository"
)

type OnboardingService interface {
	GetProgress(actor domain.AuthContext) (*dto.ProgressResponse, error)
}

type onboardingService struct {
	repo     repository.OnboardingRepository
	recorder progressRecorder
}

func NewOnboardingService(repo repository.OnboardingRepository, producer interfaces.ProducerHandler) OnboardingService {
	return &onboardingService{
		repo:     repo,
		recorder: progressRecorder{repo: repo, producer: producer},
	}
}

// GetProgress recomputes the checklist from current entity state. A progress
// snapshot row is appended only when the percentage moved since the last one,
// so repeated reads stay cheap and the audit trail only records change.
func (s *onboardingService) GetProgress(actor domain.AuthContext) (*dto.ProgressResponse, error) {
	snap, err := s.repo.LoadSnapshot(actor.UserID, actor.UniversityID)
	if err != nil {
		return nil, err
	}

	result := domain.BuildChecklist(snap)

	s.recorder.recordIfChanged(actor, result)

	return &dto.ProgressResponse{
		Items:      result.Items,
		Percentage: result.Percentage,
		Total:      result.Total,
		Completed:  result.Completed,
	}, nil
}
