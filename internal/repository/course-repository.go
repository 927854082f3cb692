package repository

import (
	"errors"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository interface {
	CreateCourse(c *domain.Course) error
	FindCourseByID(id uuid.UUID) (*domain.Course, error)
	SaveCourse(c *domain.Course) error
	ListCourses(universityID uuid.UUID) ([]domain.Course, error)

	CreateSubject(s *domain.Subject) error
	FindSubjectByID(id uuid.UUID) (*domain.Subject, error)
	ListSubjects(universityID uuid.UUID, courseID *uuid.UUID) ([]domain.Subject, error)

	CreateEnrollment(e *domain.Enrollment) error
	FindEnrollment(userID, subjectID uuid.UUID) (*domain.Enrollment, error)
	SaveEnrollment(e *domain.Enrollment) error
	ListEnrollmentsByUser(userID uuid.UUID, status domain.EnrollmentStatus) ([]domain.Enrollment, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) CreateCourse(c *domain.Course) error {
	return r.db.Create(c).Error
}

func (r *courseRepository) FindCourseByID(id uuid.UUID) (*domain.Course, error) {
	var c domain.Course
	err := r.db.Preload("Subjects").First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *courseRepository) SaveCourse(c *domain.Course) error {
	return r.db.Save(c).Error
}

func (r *courseRepository) ListCourses(universityID uuid.UUID) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.db.Where("university_id = ?", universityID).Order("name ASC").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) CreateSubject(s *domain.Subject) error {
	return r.db.Create(s).Error
}

func (r *courseRepository) FindSubjectByID(id uuid.UUID) (*domain.Subject, error) {
	var s domain.Subject
	err := r.db.First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *courseRepository) ListSubjects(universityID uuid.UUID, courseID *uuid.UUID) ([]domain.Subject, error) {
	q := r.db.Where("university_id = ?", universityID)
	if courseID != nil {
		q = q.Where("course_id = ?", *courseID)
	}
	var subjects []domain.Subject
	err := q.Order("semester ASC, code ASC").Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *courseRepository) CreateEnrollment(e *domain.Enrollment) error {
	return r.db.Create(e).Error
}

func (r *courseRepository) FindEnrollment(userID, subjectID uuid.UUID) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := r.db.Where("user_id = ? AND subject_id = ?", userID, subjectID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *courseRepository) SaveEnrollment(e *domain.Enrollment) error {
	return r.db.Save(e).Error
}

func (r *courseRepository) ListEnrollmentsByUser(userID uuid.UUID, status domain.EnrollmentStatus) ([]domain.Enrollment, error) {
	q := r.db.Preload("Subject").Preload("Course").Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var enrollments []domain.Enrollment
	err := q.Order("enrolled_at ASC").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
