package services

import (
	"encoding/json"
	"fmt"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/interfaces"
	"github.com/campuskit/onboarding_service/internal/repository"
)

// progressRecorder is the single audit writer for computed checklists, shared
// by every read path that evaluates progress. Keeping it in one place means
// whichever endpoint observes a percentage change first also owns the
// completion event.
type progressRecorder struct {
	repo     repository.OnboardingRepository
	producer interfaces.ProducerHandler
}

// recordIfChanged appends a ProgressSnapshot row when the percentage moved
// since the last one and publishes onboarding.completed the first time the
// percentage reaches 100. The write is best-effort, a failure never blocks
// the read that triggered it.
func (r progressRecorder) recordIfChanged(actor domain.AuthContext, result domain.ChecklistResult) {
	last, err := r.repo.LatestProgress(actor.UserID)
	if err == nil && last.Percentage == result.Percentage {
		return
	}
	if err != nil && !domain.IsNotFound(err) {
		return
	}

	items, err := json.Marshal(result.Items)
	if err != nil {
		return
	}
	_ = r.repo.RecordProgress(&domain.ProgressSnapshot{
		UserID:       actor.UserID,
		UniversityID: actor.UniversityID,
		Percentage:   result.Percentage,
		Completed:    result.Completed,
		Total:        result.Total,
		Items:        items,
	})

	if result.Percentage == 100 && (last == nil || last.Percentage < 100) && r.producer != nil {
		payload := fmt.Sprintf(`{"user_id":"%s","university_id":"%s"}`, actor.UserID, actor.UniversityID)
		_ = r.producer.PublishMessage([]byte("onboarding.completed"), []byte(payload))
	}
}
