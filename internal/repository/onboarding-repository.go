package repository

import (
	"errors"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OnboardingRepository interface {
	// LoadSnapshot reads every entity feeding the checklist inside one
	// transaction, so a single computation never observes a torn update
	// across sibling tables.
	LoadSnapshot(userID, universityID uuid.UUID) (*domain.OnboardingSnapshot, error)

	LatestProgress(userID uuid.UUID) (*domain.ProgressSnapshot, error)
	RecordProgress(snap *domain.ProgressSnapshot) error
}

type onboardingRepository struct {
	db *gorm.DB
}

func NewOnboardingRepository(db *gorm.DB) OnboardingRepository {
	return &onboardingRepository{db: db}
}

func (r *onboardingRepository) LoadSnapshot(userID, universityID uuid.UUID) (*domain.OnboardingSnapshot, error) {
	snap := &domain.OnboardingSnapshot{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		snap.FirstName = user.FirstName
		snap.LastName = user.LastName
		snap.Phone = user.Phone

		if err := tx.Where("user_id = ?", userID).Find(&snap.Documents).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Find(&snap.Payments).Error; err != nil {
			return err
		}

		var hostel domain.HostelApplication
		err := tx.Where("user_id = ?", userID).First(&hostel).Error
		if err == nil {
			snap.Hostel = &hostel
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var lms domain.LMSActivation
		err = tx.Where("user_id = ?", userID).First(&lms).Error
		if err == nil {
			snap.LMS = &lms
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Where("user_id = ? AND status = ?", userID, domain.EnrollmentStatusActive).
			Find(&snap.Enrollments).Error; err != nil {
			return err
		}

		requiredItems := tx.Model(&domain.ComplianceItem{}).
			Select("id").
			Where("university_id = ? AND is_active = ? AND is_required = ?", universityID, true, true)

		var total int64
		if err := tx.Model(&domain.ComplianceItem{}).
			Where("university_id = ? AND is_active = ? AND is_required = ?", universityID, true, true).
			Count(&total).Error; err != nil {
			return err
		}

		var done int64
		if err := tx.Model(&domain.StudentCompliance{}).
			Where("user_id = ? AND is_completed = ? AND compliance_item_id IN (?)", userID, true, requiredItems).
			Count(&done).Error; err != nil {
			return err
		}

		snap.ComplianceTotal = int(total)
		snap.ComplianceDone = int(done)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *onboardingRepository) LatestProgress(userID uuid.UUID) (*domain.ProgressSnapshot, error) {
	var snap domain.ProgressSnapshot
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&snap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &snap, nil
}

func (r *onboardingRepository) RecordProgress(snap *domain.ProgressSnapshot) error {
	return r.db.Create(snap).Error
}
