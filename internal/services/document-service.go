package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/internal/interfaces"
	"github.com/campuskit/onboarding_service/internal/repository"
	"github.com/google/uuid"
)

const maxDocumentBytes = 10 * 1024 * 1024

type DocumentService interface {
	Upload(ctx context.Context, actor domain.AuthContext, documentType, fileName, mimeType string, data []byte) (*dto.DocumentUploadResponse, error)
	ListOwn(actor domain.AuthContext) (*dto.DocumentListResponse, error)
	GetByID(actor domain.AuthContext, documentID uuid.UUID) (*domain.Document, error)
	ListForReview(actor domain.AuthContext, status domain.DocumentStatus, limit, offset int) ([]domain.Document, error)
	Review(actor domain.AuthContext, documentID uuid.UUID, input dto.DocumentReviewRequest) (*domain.Document, error)
}

type documentService struct {
	repo     repository.DocumentRepository
	uploader interfaces.Uploader
	producer interfaces.ProducerHandler
}

func NewDocumentService(
	repo repository.DocumentRepository,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
) DocumentService {
	return &documentService{
		repo:     repo,
		uploader: uploader,
		producer: producer,
	}
}

func (s *documentService) Upload(ctx context.Context, actor domain.AuthContext, documentType, fileName, mimeType string, data []byte) (*dto.DocumentUploadResponse, error) {
	documentType = strings.TrimSpace(documentType)
	if !domain.KnownDocumentType(documentType) {
		return nil, fmt.Errorf("%w: unknown document type %q", domain.ErrValidation, documentType)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrValidation)
	}
	if len(data) > maxDocumentBytes {
		return nil, fmt.Errorf("%w: file exceeds 10MB", domain.ErrValidation)
	}
	if fileName == "" {
		fileName = "unknown"
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	folder := fmt.Sprintf("%s/%s/documents", actor.UniversityID, actor.UserID)
	fileURL, err := s.uploader.UploadBytes(ctx, folder, fmt.Sprintf("%s-%s", documentType, uuid.NewString()), data)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		UserID:       actor.UserID,
		UniversityID: actor.UniversityID,
		DocumentType: documentType,
		FileName:     fileName,
		FileURL:      fileURL,
		FileSize:     int64(len(data)),
		MimeType:     mimeType,
		Status:       domain.DocumentStatusPending,
	}
	if err := s.repo.CreateDocument(doc); err != nil {
		return nil, err
	}

	return &dto.DocumentUploadResponse{
		ID:           doc.ID,
		DocumentType: doc.DocumentType,
		FileName:     doc.FileName,
		FileURL:      doc.FileURL,
		Status:       doc.Status,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func (s *documentService) ListOwn(actor domain.AuthContext) (*dto.DocumentListResponse, error) {
	docs, err := s.repo.ListByUser(actor.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.DocumentListResponse{Documents: docs, Total: len(docs)}, nil
}

func (s *documentService) GetByID(actor domain.AuthContext, documentID uuid.UUID) (*domain.Document, error) {
	doc, err := s.repo.FindByID(documentID)
	if err != nil {
		return nil, err
	}
	if !actor.SameTenant(doc.UniversityID) {
		return nil, domain.ErrNotFound
	}
	// students can only view their own
	if doc.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return doc, nil
}

func (s *documentService) ListForReview(actor domain.AuthContext, status domain.DocumentStatus, limit, offset int) ([]domain.Document, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListByUniversity(actor.UniversityID, status, limit, offset)
}

// Review applies one admin decision to a document, enforcing the status
// workflow. The version CAS means a concurrent decision on the same document
// loses with ErrConflict instead of silently overwriting.
func (s *documentService) Review(actor domain.AuthContext, documentID uuid.UUID, input dto.DocumentReviewRequest) (*domain.Document, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.Status)
	}

	doc, err := s.repo.FindByID(documentID)
	if err != nil {
		return nil, err
	}
	if !actor.SameTenant(doc.UniversityID) {
		return nil, domain.ErrNotFound
	}

	if !doc.Status.CanTransitionTo(input.Status) {
		return nil, &domain.TransitionError{From: doc.Status, To: input.Status}
	}

	reason := strings.TrimSpace(input.RejectionReason)
	if input.Status == domain.DocumentStatusRejected && reason == "" {
		return nil, fmt.Errorf("%w: rejection_reason is required when rejecting", domain.ErrValidation)
	}

	expectedVersion := doc.Version
	now := time.Now().UTC()
	reviewer := actor.UserID

	doc.Status = input.Status
	doc.ReviewedBy = &reviewer
	doc.ReviewedAt = &now
	if input.Status == domain.DocumentStatusRejected {
		doc.RejectionReason = &reason
	} else {
		doc.RejectionReason = nil // clear when leaving rejected
	}

	if err := s.repo.UpdateReviewed(doc, expectedVersion); err != nil {
		return nil, err
	}

	if s.producer != nil {
		payload := fmt.Sprintf(
			`{"document_id":"%s","user_id":"%s","status":"%s","reviewed_by":"%s"}`,
			doc.ID, doc.UserID, doc.Status, reviewer,
		)
		_ = s.producer.PublishMessage([]byte("document.reviewed"), []byte(payload))
	}

	return doc, nil
}
