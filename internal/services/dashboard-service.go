package services

import (
	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/internal/interfaces"
	"github.com/campuskit/onboarding_service/internal/repository"
)

type DashboardService interface {
	Summary(actor domain.AuthContext) (*dto.DashboardSummary, error)
}

type dashboardService struct {
	onboarding repository.OnboardingRepository
	users      repository.UserRepository
	recorder   progressRecorder
}

func NewDashboardService(
	onboarding repository.OnboardingRepository,
	users repository.UserRepository,
	producer interfaces.ProducerHandler,
) DashboardService {
	return &dashboardService{
		onboarding: onboarding,
		users:      users,
		recorder:   progressRecorder{repo: onboarding, producer: producer},
	}
}

// Summary aggregates every onboarding surface into one response so the
// student landing page needs a single round trip.
func (s *dashboardService) Summary(actor domain.AuthContext) (*dto.DashboardSummary, error) {
	user, err := s.users.FindUserByID(actor.UserID)
	if err != nil {
		return nil, err
	}

	snap, err := s.onboarding.LoadSnapshot(actor.UserID, actor.UniversityID)
	if err != nil {
		return nil, err
	}

	checklist := domain.BuildChecklist(snap)
	s.recorder.recordIfChanged(actor, checklist)

	summary := &dto.DashboardSummary{
		Documents:            summarizeDocuments(snap.Documents),
		Payments:             summarizePayments(snap.Payments),
		Hostel:               summarizeHostel(snap.Hostel),
		LMS:                  summarizeLMS(snap.LMS),
		EnrollmentCount:      len(snap.Enrollments),
		OnboardingPercentage: checklist.Percentage,
		Checklist: dto.ProgressResponse{
			Items:      checklist.Items,
			Percentage: checklist.Percentage,
			Total:      checklist.Total,
			Completed:  checklist.Completed,
		},
		User: dto.DashboardUser{
			Name:  user.FullName(),
			Email: user.Email,
			Role:  string(user.Role),
		},
	}
	return summary, nil
}

func summarizeDocuments(docs []domain.Document) dto.DashboardDocuments {
	out := dto.DashboardDocuments{Total: len(docs)}
	for _, d := range docs {
		switch d.Status {
		case domain.DocumentStatusApproved:
			out.Approved++
		case domain.DocumentStatusPending:
			out.Pending++
		case domain.DocumentStatusRejected:
			out.Rejected++
		case domain.DocumentStatusUnderReview:
			out.UnderReview++
		}
	}
	return out
}

// summarizePayments labels the whole payment history: "completed" only when
// every payment settled, "pending" while anything is outstanding, "none"
// before the first payment. Pending totals count pending rows only.
func summarizePayments(payments []domain.Payment) dto.DashboardPayments {
	out := dto.DashboardPayments{Status: "none", Count: len(payments)}
	allCompleted := true
	for _, p := range payments {
		switch p.Status {
		case domain.PaymentStatusCompleted:
			out.TotalPaid += p.Amount
		case domain.PaymentStatusPending:
			out.TotalPending += p.Amount
		}
		if p.Status != domain.PaymentStatusCompleted {
			allCompleted = false
		}
	}
	if len(payments) > 0 {
		if allCompleted {
			out.Status = "completed"
		} else {
			out.Status = "pending"
		}
	}
	return out
}

func summarizeHostel(app *domain.HostelApplication) dto.DashboardHostel {
	if app == nil {
		return dto.DashboardHostel{Status: "not_applied"}
	}
	roomType := string(app.RoomTypePreference)
	return dto.DashboardHostel{
		Status:     string(app.Status),
		RoomType:   &roomType,
		RoomNumber: app.AllocatedRoomNumber,
	}
}

func summarizeLMS(a *domain.LMSActivation) dto.DashboardLMS {
	if a == nil || !a.IsActivated {
		platform := "Moodle"
		if a != nil {
			platform = a.Platform
		}
		return dto.DashboardLMS{Status: "inactive", Platform: platform}
	}
	return dto.DashboardLMS{
		Status:   "activated",
		LMSID:    a.ActivationKey,
		Platform: a.Platform,
	}
}
