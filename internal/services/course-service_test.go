package services

import (
	"testing"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCourse(t *testing.T, svc CourseService, admin domain.AuthContext) *domain.Course {
	t.Helper()
	c, err := svc.CreateCourse(admin, dto.CourseCreateRequest{
		Name: "B.Tech Computer Science",
		Code: "btcs",
	})
	require.NoError(t, err)
	return c
}

func seedSubject(t *testing.T, svc CourseService, admin domain.AuthContext, courseID uuid.UUID, code string) *domain.Subject {
	t.Helper()
	s, err := svc.CreateSubject(admin, dto.SubjectCreateRequest{
		CourseID: courseID,
		Name:     "Subject " + code,
		Code:     code,
	})
	require.NoError(t, err)
	return s
}

func TestCreateCourseNormalizesCode(t *testing.T) {
	admin := adminActor(uuid.New())
	svc := NewCourseService(newFakeCourseRepo())

	c := seedCourse(t, svc, admin)
	assert.Equal(t, "BTCS", c.Code)
	assert.Equal(t, 4, c.DurationYears)
	assert.True(t, c.IsActive)
}

func TestCreateCourseForbiddenForStudents(t *testing.T) {
	svc := NewCourseService(newFakeCourseRepo())

	_, err := svc.CreateCourse(studentActor(uuid.New()), dto.CourseCreateRequest{Name: "x", Code: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEnroll(t *testing.T) {
	universityID := uuid.New()
	admin := adminActor(universityID)
	student := studentActor(universityID)
	svc := NewCourseService(newFakeCourseRepo())

	course := seedCourse(t, svc, admin)
	s1 := seedSubject(t, svc, admin, course.ID, "CS101")
	s2 := seedSubject(t, svc, admin, course.ID, "CS102")

	enrollments, err := svc.Enroll(student, dto.EnrollRequest{
		CourseID:   course.ID,
		SubjectIDs: []uuid.UUID{s1.ID, s2.ID},
	})
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	for _, e := range enrollments {
		assert.Equal(t, domain.EnrollmentStatusActive, e.Status)
		assert.Equal(t, student.UserID, e.UserID)
	}
}

func TestEnrollIdempotentPerSubject(t *testing.T) {
	universityID := uuid.New()
	admin := adminActor(universityID)
	student := studentActor(universityID)
	svc := NewCourseService(newFakeCourseRepo())

	course := seedCourse(t, svc, admin)
	s1 := seedSubject(t, svc, admin, course.ID, "CS101")

	req := dto.EnrollRequest{CourseID: course.ID, SubjectIDs: []uuid.UUID{s1.ID}}
	_, err := svc.Enroll(student, req)
	require.NoError(t, err)

	again, err := svc.Enroll(student, req)
	require.NoError(t, err)
	require.Len(t, again, 1)

	list, err := svc.ListEnrollments(student)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestEnrollRejectsForeignSubject(t *testing.T) {
	universityID := uuid.New()
	admin := adminActor(universityID)
	student := studentActor(universityID)
	svc := NewCourseService(newFakeCourseRepo())

	course := seedCourse(t, svc, admin)
	other, err := svc.CreateCourse(admin, dto.CourseCreateRequest{Name: "BBA", Code: "BBA"})
	require.NoError(t, err)
	foreign := seedSubject(t, svc, admin, other.ID, "MG101")

	_, err = svc.Enroll(student, dto.EnrollRequest{
		CourseID:   course.ID,
		SubjectIDs: []uuid.UUID{foreign.ID},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDropAndReenroll(t *testing.T) {
	universityID := uuid.New()
	admin := adminActor(universityID)
	student := studentActor(universityID)
	svc := NewCourseService(newFakeCourseRepo())

	course := seedCourse(t, svc, admin)
	s1 := seedSubject(t, svc, admin, course.ID, "CS101")

	_, err := svc.Enroll(student, dto.EnrollRequest{CourseID: course.ID, SubjectIDs: []uuid.UUID{s1.ID}})
	require.NoError(t, err)

	dropped, err := svc.Drop(student, dto.DropRequest{SubjectID: s1.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.EnrollmentStatusDropped, dropped.Status)
	assert.NotNil(t, dropped.DroppedAt)

	_, err = svc.Drop(student, dto.DropRequest{SubjectID: s1.ID})
	assert.ErrorIs(t, err, domain.ErrValidation)

	reenrolled, err := svc.Enroll(student, dto.EnrollRequest{CourseID: course.ID, SubjectIDs: []uuid.UUID{s1.ID}})
	require.NoError(t, err)
	require.Len(t, reenrolled, 1)
	assert.Equal(t, domain.EnrollmentStatusActive, reenrolled[0].Status)
	assert.Nil(t, reenrolled[0].DroppedAt)
}

func TestEnrollInactiveCourseRejected(t *testing.T) {
	universityID := uuid.New()
	admin := adminActor(universityID)
	student := studentActor(universityID)
	svc := NewCourseService(newFakeCourseRepo())

	course := seedCourse(t, svc, admin)
	s1 := seedSubject(t, svc, admin, course.ID, "CS101")

	inactive := false
	_, err := svc.UpdateCourse(admin, course.ID, dto.CourseUpdateRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = svc.Enroll(student, dto.EnrollRequest{CourseID: course.ID, SubjectIDs: []uuid.UUID{s1.ID}})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
