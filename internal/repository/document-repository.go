package repository

import (
	"errors"
	"time"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	CreateDocument(doc *domain.Document) error
	FindByID(id uuid.UUID) (*domain.Document, error)
	ListByUser(userID uuid.UUID) ([]domain.Document, error)
	ListByUniversity(universityID uuid.UUID, status domain.DocumentStatus, limit, offset int) ([]domain.Document, error)
	// UpdateReviewed applies a review decision with a compare-and-swap on the
	// document's version. Returns domain.ErrConflict when another review won.
	UpdateReviewed(doc *domain.Document, expectedVersion int64) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) CreateDocument(doc *domain.Document) error {
	return r.db.Create(doc).Error
}

func (r *documentRepository) FindByID(id uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) ListByUser(userID uuid.UUID) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) ListByUniversity(universityID uuid.UUID, status domain.DocumentStatus, limit, offset int) ([]domain.Document, error) {
	q := r.db.Where("university_id = ?", universityID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var docs []domain.Document
	err := q.Order("created_at ASC").Limit(limit).Offset(offset).Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) UpdateReviewed(doc *domain.Document, expectedVersion int64) error {
	res := r.db.Model(&domain.Document{}).
		Where("id = ? AND version = ?", doc.ID, expectedVersion).
		Updates(map[string]any{
			"status":           doc.Status,
			"rejection_reason": doc.RejectionReason,
			"reviewed_by":      doc.ReviewedBy,
			"reviewed_at":      doc.ReviewedAt,
			"version":          expectedVersion + 1,
			"updated_at":       time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConflict
	}
	doc.Version = expectedVersion + 1
	return nil
}
