package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/campuskit/onboarding_service/internal/repository"
	"github.com/google/uuid"
)

type CourseService interface {
	CreateCourse(actor domain.AuthContext, input dto.CourseCreateRequest) (*domain.Course, error)
	UpdateCourse(actor domain.AuthContext, courseID uuid.UUID, input dto.CourseUpdateRequest) (*domain.Course, error)
	ListCourses(actor domain.AuthContext) ([]domain.Course, error)
	GetCourse(actor domain.AuthContext, courseID uuid.UUID) (*domain.Course, error)

	CreateSubject(actor domain.AuthContext, input dto.SubjectCreateRequest) (*domain.Subject, error)
	ListSubjects(actor domain.AuthContext, courseID *uuid.UUID) ([]domain.Subject, error)

	Enroll(actor domain.AuthContext, input dto.EnrollRequest) ([]domain.Enrollment, error)
	Drop(actor domain.AuthContext, input dto.DropRequest) (*domain.Enrollment, error)
	ListEnrollments(actor domain.AuthContext) (*dto.EnrollmentListResponse, error)
}

type courseService struct {
	repo repository.CourseRepository
}

func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) CreateCourse(actor domain.AuthContext, input dto.CourseCreateRequest) (*domain.Course, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(input.Name)
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if name == "" || code == "" {
		return nil, fmt.Errorf("%w: name and code are required", domain.ErrValidation)
	}

	c := &domain.Course{
		UniversityID:  actor.UniversityID,
		Name:          name,
		Code:          code,
		Description:   input.Description,
		DurationYears: input.DurationYears,
		TotalCredits:  input.TotalCredits,
		IsActive:      true,
	}
	if c.DurationYears <= 0 {
		c.DurationYears = 4
	}
	if err := s.repo.CreateCourse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) UpdateCourse(actor domain.AuthContext, courseID uuid.UUID, input dto.CourseUpdateRequest) (*domain.Course, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	c, err := s.repo.FindCourseByID(courseID)
	if err != nil {
		return nil, err
	}
	if !actor.SameTenant(c.UniversityID) {
		return nil, domain.ErrNotFound
	}

	if input.Name != nil {
		c.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		c.Description = input.Description
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}
	if err := s.repo.SaveCourse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) ListCourses(actor domain.AuthContext) ([]domain.Course, error) {
	return s.repo.ListCourses(actor.UniversityID)
}

func (s *courseService) GetCourse(actor domain.AuthContext, courseID uuid.UUID) (*domain.Course, error) {
	c, err := s.repo.FindCourseByID(courseID)
	if err != nil {
		return nil, err
	}
	if !actor.SameTenant(c.UniversityID) {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *courseService) CreateSubject(actor domain.AuthContext, input dto.SubjectCreateRequest) (*domain.Subject, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	name := strings.TrimSpace(input.Name)
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if name == "" || code == "" {
		return nil, fmt.Errorf("%w: name and code are required", domain.ErrValidation)
	}

	course, err := s.repo.FindCourseByID(input.CourseID)
	if err != nil {
		return nil, err
	}
	if !actor.SameTenant(course.UniversityID) {
		return nil, domain.ErrNotFound
	}

	subj := &domain.Subject{
		CourseID:     course.ID,
		UniversityID: course.UniversityID,
		Name:         name,
		Code:         code,
		Credits:      input.Credits,
		Semester:     input.Semester,
		IsElective:   input.IsElective,
		IsActive:     true,
	}
	if subj.Credits <= 0 {
		subj.Credits = 3
	}
	if subj.Semester <= 0 {
		subj.Semester = 1
	}
	if err := s.repo.CreateSubject(subj); err != nil {
		return nil, err
	}
	return subj, nil
}

func (s *courseService) ListSubjects(actor domain.AuthContext, courseID *uuid.UUID) ([]domain.Subject, error) {
	return s.repo.ListSubjects(actor.UniversityID, courseID)
}

// Enroll registers the student in every listed subject of one course.
// Subjects already enrolled are skipped, dropped ones are reactivated.
func (s *courseService) Enroll(actor domain.AuthContext, input dto.EnrollRequest) ([]domain.Enrollment, error) {
	if len(input.SubjectIDs) == 0 {
		return nil, fmt.Errorf("%w: subject_ids is required", domain.ErrValidation)
	}

	course, err := s.repo.FindCourseByID(input.CourseID)
	if err != nil {
		return nil, err
	}
	if !actor.SameTenant(course.UniversityID) {
		return nil, domain.ErrNotFound
	}
	if !course.IsActive {
		return nil, fmt.Errorf("%w: course is not active", domain.ErrValidation)
	}

	var result []domain.Enrollment
	for _, subjectID := range input.SubjectIDs {
		subj, err := s.repo.FindSubjectByID(subjectID)
		if err != nil {
			return nil, err
		}
		if subj.CourseID != course.ID {
			return nil, fmt.Errorf("%w: subject %s does not belong to course %s", domain.ErrValidation, subj.Code, course.Code)
		}

		existing, err := s.repo.FindEnrollment(actor.UserID, subjectID)
		if err == nil {
			if existing.Status == domain.EnrollmentStatusActive {
				result = append(result, *existing)
				continue
			}
			existing.Status = domain.EnrollmentStatusActive
			existing.DroppedAt = nil
			existing.EnrolledAt = time.Now().UTC()
			if err := s.repo.SaveEnrollment(existing); err != nil {
				return nil, err
			}
			result = append(result, *existing)
			continue
		}
		if !domain.IsNotFound(err) {
			return nil, err
		}

		e := &domain.Enrollment{
			UserID:       actor.UserID,
			CourseID:     course.ID,
			SubjectID:    subjectID,
			UniversityID: actor.UniversityID,
			Status:       domain.EnrollmentStatusActive,
			EnrolledAt:   time.Now().UTC(),
		}
		if err := s.repo.CreateEnrollment(e); err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, nil
}

func (s *courseService) Drop(actor domain.AuthContext, input dto.DropRequest) (*domain.Enrollment, error) {
	e, err := s.repo.FindEnrollment(actor.UserID, input.SubjectID)
	if err != nil {
		return nil, err
	}
	if e.Status == domain.EnrollmentStatusDropped {
		return nil, fmt.Errorf("%w: enrollment already dropped", domain.ErrValidation)
	}

	now := time.Now().UTC()
	e.Status = domain.EnrollmentStatusDropped
	e.DroppedAt = &now
	if err := s.repo.SaveEnrollment(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *courseService) ListEnrollments(actor domain.AuthContext) (*dto.EnrollmentListResponse, error) {
	enrollments, err := s.repo.ListEnrollmentsByUser(actor.UserID, "")
	if err != nil {
		return nil, err
	}
	return &dto.EnrollmentListResponse{Enrollments: enrollments, Total: len(enrollments)}, nil
}
