package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentStatusActive  EnrollmentStatus = "active"
	EnrollmentStatusDropped EnrollmentStatus = "dropped"
)

type Course struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UniversityID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_courses_university_code" json:"university_id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Code          string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_courses_university_code" json:"code"`
	Description   *string   `gorm:"type:text" json:"description,omitempty"`
	DurationYears int       `gorm:"default:4" json:"duration_years"`
	TotalCredits  int       `gorm:"default:0" json:"total_credits"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Subjects []Subject `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"subjects,omitempty"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Subject struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID     uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	UniversityID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_subjects_university_code" json:"university_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Code         string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_subjects_university_code" json:"code"`
	Credits      int       `gorm:"default:3" json:"credits"`
	Semester     int       `gorm:"default:1" json:"semester"`
	IsElective   bool      `gorm:"default:false" json:"is_elective"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Enrollment struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:uq_enrollment_user_subject" json:"user_id"`
	CourseID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"course_id"`
	SubjectID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_user_subject" json:"subject_id"`
	UniversityID uuid.UUID        `gorm:"type:uuid;not null;index" json:"university_id"`
	Status       EnrollmentStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	EnrolledAt   time.Time        `gorm:"autoCreateTime" json:"enrolled_at"`
	DroppedAt    *time.Time       `json:"dropped_at,omitempty"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	Subject *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Course  *Course  `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
