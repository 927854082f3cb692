package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentStatus string

const (
	DocumentStatusPending     DocumentStatus = "pending"
	DocumentStatusUnderReview DocumentStatus = "under_review"
	DocumentStatusApproved    DocumentStatus = "approved"
	DocumentStatusRejected    DocumentStatus = "rejected"
)

// Review workflow: pending is initial, approved is terminal, rejected can be
// re-opened back to pending (without passing through under_review again).
// Self-loops are never allowed.
var documentTransitions = map[DocumentStatus][]DocumentStatus{
	DocumentStatusPending:     {DocumentStatusUnderReview, DocumentStatusApproved, DocumentStatusRejected},
	DocumentStatusUnderReview: {DocumentStatusApproved, DocumentStatusRejected},
	DocumentStatusApproved:    {},
	DocumentStatusRejected:    {DocumentStatusPending},
}

func (s DocumentStatus) CanTransitionTo(target DocumentStatus) bool {
	for _, allowed := range documentTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusUnderReview, DocumentStatusApproved, DocumentStatusRejected:
		return true
	}
	return false
}

// DocumentTypes accepted for upload. The checklist only counts the
// RequiredDocumentTypes subset; everything else is supplementary.
var DocumentTypes = []string{
	"10th_marksheet",
	"12th_marksheet",
	"graduation_marksheet",
	"aadhar_card",
	"photo",
	"medical_certificate",
	"transfer_certificate",
	"migration_certificate",
	"income_certificate",
	"address_proof",
	"other",
}

func KnownDocumentType(t string) bool {
	for _, dt := range DocumentTypes {
		if dt == t {
			return true
		}
	}
	return false
}

type Document struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	UniversityID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"university_id"`
	DocumentType    string         `gorm:"type:varchar(100);not null" json:"document_type"`
	FileName        string         `gorm:"type:varchar(255);not null" json:"file_name"`
	FileURL         string         `gorm:"type:varchar(512);not null" json:"file_url"`
	FileSize        int64          `gorm:"default:0" json:"file_size"`
	MimeType        string         `gorm:"type:varchar(100)" json:"mime_type"`
	Status          DocumentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	RejectionReason *string        `gorm:"type:text" json:"rejection_reason,omitempty"`
	ReviewedBy      *uuid.UUID     `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	Version         int64          `gorm:"not null;default:0" json:"-"` // optimistic lock for review
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
