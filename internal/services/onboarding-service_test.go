package services

import (
	"testing"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeSnapshot() *domain.OnboardingSnapshot {
	snap := &domain.OnboardingSnapshot{
		FirstName: "Asha",
		LastName:  "Verma",
		Phone:     "9876543210",
		Payments:  []domain.Payment{{Status: domain.PaymentStatusCompleted, Amount: 50000}},
		LMS:       &domain.LMSActivation{IsActivated: true},
		Enrollments: []domain.Enrollment{
			{Status: domain.EnrollmentStatusActive},
		},
	}
	for _, t := range domain.RequiredDocumentTypes {
		snap.Documents = append(snap.Documents, domain.Document{
			DocumentType: t,
			Status:       domain.DocumentStatusApproved,
		})
	}
	return snap
}

func TestGetProgressEmptyUser(t *testing.T) {
	repo := &fakeOnboardingRepo{snapshot: &domain.OnboardingSnapshot{}}
	svc := NewOnboardingService(repo, &fakeProducer{})

	resp, err := svc.GetProgress(studentActor(uuid.New()))
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Percentage)
	assert.Equal(t, 8, resp.Total)
	assert.Equal(t, 0, resp.Completed)
}

func TestGetProgressRecordsSnapshotOnChange(t *testing.T) {
	repo := &fakeOnboardingRepo{snapshot: &domain.OnboardingSnapshot{}}
	svc := NewOnboardingService(repo, &fakeProducer{})
	actor := studentActor(uuid.New())

	_, err := svc.GetProgress(actor)
	require.NoError(t, err)
	assert.Len(t, repo.progress, 1)

	// unchanged state: no extra snapshot
	_, err = svc.GetProgress(actor)
	require.NoError(t, err)
	assert.Len(t, repo.progress, 1)

	// state moved: a new snapshot row appears
	repo.snapshot = &domain.OnboardingSnapshot{FirstName: "Asha", LastName: "Verma", Phone: "987"}
	_, err = svc.GetProgress(actor)
	require.NoError(t, err)
	require.Len(t, repo.progress, 2)
	assert.Equal(t, 17, repo.progress[1].Percentage)
}

func TestGetProgressPublishesCompletionOnce(t *testing.T) {
	repo := &fakeOnboardingRepo{snapshot: &domain.OnboardingSnapshot{}}
	producer := &fakeProducer{}
	svc := NewOnboardingService(repo, producer)
	actor := studentActor(uuid.New())

	_, err := svc.GetProgress(actor)
	require.NoError(t, err)
	assert.Empty(t, producer.keys)

	repo.snapshot = completeSnapshot()
	resp, err := svc.GetProgress(actor)
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Percentage)

	require.Len(t, producer.keys, 1)
	assert.Equal(t, "onboarding.completed", producer.keys[0])

	// repeated full reads do not re-publish
	_, err = svc.GetProgress(actor)
	require.NoError(t, err)
	assert.Len(t, producer.keys, 1)
}

func TestGetProgressPropagatesLoadError(t *testing.T) {
	repo := &fakeOnboardingRepo{loadErr: domain.ErrNotFound}
	svc := NewOnboardingService(repo, &fakeProducer{})

	_, err := svc.GetProgress(studentActor(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
