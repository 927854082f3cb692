package services

import (
	"testing"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummaryDefaults(t *testing.T) {
	universityID := uuid.New()
	users := newFakeUserRepo()
	actor := seedStudent(t, users, universityID)
	repo := &fakeOnboardingRepo{snapshot: &domain.OnboardingSnapshot{}}
	svc := NewDashboardService(repo, users, &fakeProducer{})

	summary, err := svc.Summary(actor)
	require.NoError(t, err)

	assert.Equal(t, "none", summary.Payments.Status)
	assert.Equal(t, "not_applied", summary.Hostel.Status)
	assert.Equal(t, "inactive", summary.LMS.Status)
	assert.Equal(t, 0, summary.EnrollmentCount)
	assert.Equal(t, 0, summary.OnboardingPercentage)
	assert.Equal(t, "asha@example.edu", summary.User.Email)
}

func TestDashboardSummaryAggregates(t *testing.T) {
	universityID := uuid.New()
	users := newFakeUserRepo()
	actor := seedStudent(t, users, universityID)

	room := "B-210"
	key := "LMS-XYZ789"
	snap := &domain.OnboardingSnapshot{
		FirstName: "Asha",
		LastName:  "Verma",
		Phone:     "987",
		Documents: []domain.Document{
			{DocumentType: "photo", Status: domain.DocumentStatusApproved},
			{DocumentType: "aadhar_card", Status: domain.DocumentStatusPending},
			{DocumentType: "10th_marksheet", Status: domain.DocumentStatusRejected},
			{DocumentType: "12th_marksheet", Status: domain.DocumentStatusUnderReview},
		},
		Payments: []domain.Payment{
			{Status: domain.PaymentStatusCompleted, Amount: 50000},
			{Status: domain.PaymentStatusPending, Amount: 12000},
		},
		Hostel: &domain.HostelApplication{
			Status:              domain.HostelStatusAllocated,
			RoomTypePreference:  domain.RoomTypeDouble,
			AllocatedRoomNumber: &room,
		},
		LMS: &domain.LMSActivation{
			IsActivated:   true,
			Platform:      "Moodle",
			ActivationKey: &key,
		},
		Enrollments: []domain.Enrollment{
			{Status: domain.EnrollmentStatusActive},
			{Status: domain.EnrollmentStatusActive},
		},
	}
	repo := &fakeOnboardingRepo{snapshot: snap}
	svc := NewDashboardService(repo, users, &fakeProducer{})

	summary, err := svc.Summary(actor)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Documents.Total)
	assert.Equal(t, 1, summary.Documents.Approved)
	assert.Equal(t, 1, summary.Documents.Pending)
	assert.Equal(t, 1, summary.Documents.Rejected)
	assert.Equal(t, 1, summary.Documents.UnderReview)

	// one payment still outstanding, so the history is not "completed"
	assert.Equal(t, "pending", summary.Payments.Status)
	assert.Equal(t, 50000.0, summary.Payments.TotalPaid)
	assert.Equal(t, 12000.0, summary.Payments.TotalPending)

	assert.Equal(t, "allocated", summary.Hostel.Status)
	require.NotNil(t, summary.Hostel.RoomNumber)
	assert.Equal(t, "B-210", *summary.Hostel.RoomNumber)

	assert.Equal(t, "activated", summary.LMS.Status)
	require.NotNil(t, summary.LMS.LMSID)
	assert.Equal(t, "LMS-XYZ789", *summary.LMS.LMSID)

	assert.Equal(t, 2, summary.EnrollmentCount)
	assert.Equal(t, summary.Checklist.Percentage, summary.OnboardingPercentage)
}

func TestDashboardSummaryPaymentStatusLabels(t *testing.T) {
	users := newFakeUserRepo()
	actor := seedStudent(t, users, uuid.New())

	cases := []struct {
		name     string
		payments []domain.Payment
		status   string
		pending  float64
	}{
		{"no payments", nil, "none", 0},
		{
			"single pending",
			[]domain.Payment{{Status: domain.PaymentStatusPending, Amount: 100}},
			"pending", 100,
		},
		{
			"all completed",
			[]domain.Payment{
				{Status: domain.PaymentStatusCompleted, Amount: 100},
				{Status: domain.PaymentStatusCompleted, Amount: 200},
			},
			"completed", 0,
		},
		{
			"mixed completed and pending",
			[]domain.Payment{
				{Status: domain.PaymentStatusCompleted, Amount: 100},
				{Status: domain.PaymentStatusPending, Amount: 200},
			},
			"pending", 200,
		},
		{
			"processing keeps history unsettled without counting as pending amount",
			[]domain.Payment{
				{Status: domain.PaymentStatusCompleted, Amount: 100},
				{Status: domain.PaymentStatusProcessing, Amount: 300},
			},
			"pending", 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeOnboardingRepo{snapshot: &domain.OnboardingSnapshot{Payments: tc.payments}}
			svc := NewDashboardService(repo, users, &fakeProducer{})

			summary, err := svc.Summary(actor)
			require.NoError(t, err)
			assert.Equal(t, tc.status, summary.Payments.Status)
			assert.Equal(t, tc.pending, summary.Payments.TotalPending)
		})
	}
}

func TestDashboardSummaryPublishesCompletion(t *testing.T) {
	users := newFakeUserRepo()
	actor := seedStudent(t, users, uuid.New())
	repo := &fakeOnboardingRepo{snapshot: completeSnapshot()}
	producer := &fakeProducer{}
	svc := NewDashboardService(repo, users, producer)

	summary, err := svc.Summary(actor)
	require.NoError(t, err)
	assert.Equal(t, 100, summary.OnboardingPercentage)

	require.Len(t, producer.keys, 1)
	assert.Equal(t, "onboarding.completed", producer.keys[0])
}

// The completion event must fire exactly once no matter which read path
// observes 100% first.
func TestDashboardFirstReadAtFullCompletion(t *testing.T) {
	users := newFakeUserRepo()
	actor := seedStudent(t, users, uuid.New())
	repo := &fakeOnboardingRepo{snapshot: completeSnapshot()}
	producer := &fakeProducer{}

	dashboard := NewDashboardService(repo, users, producer)
	onboarding := NewOnboardingService(repo, producer)

	summary, err := dashboard.Summary(actor)
	require.NoError(t, err)
	assert.Equal(t, 100, summary.OnboardingPercentage)

	progress, err := onboarding.GetProgress(actor)
	require.NoError(t, err)
	assert.Equal(t, 100, progress.Percentage)

	// dashboard observed the change first and owns the event; the later
	// progress read neither drops nor duplicates it
	require.Len(t, producer.keys, 1)
	assert.Equal(t, "onboarding.completed", producer.keys[0])
	assert.Len(t, repo.progress, 1)
}
