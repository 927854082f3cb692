package repository

import (
	"errors"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplianceRepository interface {
	CreateItem(item *domain.ComplianceItem) error
	FindItemByID(id uuid.UUID) (*domain.ComplianceItem, error)
	SaveItem(item *domain.ComplianceItem) error
	ListItems(universityID uuid.UUID, activeOnly bool) ([]domain.ComplianceItem, error)

	FindRecord(userID, itemID uuid.UUID) (*domain.StudentCompliance, error)
	CreateRecord(rec *domain.StudentCompliance) error
	SaveRecord(rec *domain.StudentCompliance) error
	ListRecordsByUser(userID uuid.UUID) ([]domain.StudentCompliance, error)
}

type complianceRepository struct {
	db *gorm.DB
}

func NewComplianceRepository(db *gorm.DB) ComplianceRepository {
	return &complianceRepository{db: db}
}

func (r *complianceRepository) CreateItem(item *domain.ComplianceItem) error {
	return r.db.Create(item).Error
}

func (r *complianceRepository) FindItemByID(id uuid.UUID) (*domain.ComplianceItem, error) {
	var item domain.ComplianceItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *complianceRepository) SaveItem(item *domain.ComplianceItem) error {
	return r.db.Save(item).Error
}

func (r *complianceRepository) ListItems(universityID uuid.UUID, activeOnly bool) ([]domain.ComplianceItem, error) {
	q := r.db.Where("university_id = ?", universityID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var items []domain.ComplianceItem
	err := q.Order("item_order ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *complianceRepository) FindRecord(userID, itemID uuid.UUID) (*domain.StudentCompliance, error) {
	var rec domain.StudentCompliance
	err := r.db.Where("user_id = ? AND compliance_item_id = ?", userID, itemID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *complianceRepository) CreateRecord(rec *domain.StudentCompliance) error {
	return r.db.Create(rec).Error
}

func (r *complianceRepository) SaveRecord(rec *domain.StudentCompliance) error {
	return r.db.Save(rec).Error
}

func (r *complianceRepository) ListRecordsByUser(userID uuid.UUID) ([]domain.StudentCompliance, error) {
	var recs []domain.StudentCompliance
	err := r.db.Preload("ComplianceItem").Where("user_id = ?", userID).Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
