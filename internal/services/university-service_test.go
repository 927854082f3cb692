package services

import (
	"context"
	"testing"

	"github.com/campuskit/onboarding_service/infra/cache"
	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/campuskit/onboarding_service/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func superAdminActor() domain.AuthContext {
	return domain.AuthContext{UserID: uuid.New(), Role: domain.RoleSuperAdmin}
}

func TestUniversityCreate(t *testing.T) {
	svc := NewUniversityService(newFakeUniversityRepo(), cache.New("", ""))

	u, err := svc.Create(superAdminActor(), dto.UniversityCreateRequest{
		Name: "Test University",
		Slug: "Test-Uni",
	})
	require.NoError(t, err)

	assert.Equal(t, "test-uni", u.Slug)
	assert.Equal(t, 100, u.MaxStudents)
	assert.True(t, u.IsActive)
}

func TestUniversityCreateForbiddenForTenantAdmins(t *testing.T) {
	svc := NewUniversityService(newFakeUniversityRepo(), cache.New("", ""))

	_, err := svc.Create(adminActor(uuid.New()), dto.UniversityCreateRequest{Name: "X", Slug: "x"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUniversityCreateDuplicateSlug(t *testing.T) {
	svc := NewUniversityService(newFakeUniversityRepo(), cache.New("", ""))

	_, err := svc.Create(superAdminActor(), dto.UniversityCreateRequest{Name: "A", Slug: "same"})
	require.NoError(t, err)

	_, err = svc.Create(superAdminActor(), dto.UniversityCreateRequest{Name: "B", Slug: "same"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestUniversityUpdate(t *testing.T) {
	repo := newFakeUniversityRepo()
	svc := NewUniversityService(repo, cache.New("", ""))

	created, err := svc.Create(superAdminActor(), dto.UniversityCreateRequest{Name: "Old Name", Slug: "u"})
	require.NoError(t, err)

	admin := adminActor(created.ID)
	newName := "New Name"
	updated, err := svc.Update(context.Background(), admin, dto.UniversityUpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)

	bad := -1
	_, err = svc.Update(context.Background(), admin, dto.UniversityUpdateRequest{MaxStudents: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUniversityGetBySlug(t *testing.T) {
	svc := NewUniversityService(newFakeUniversityRepo(), cache.New("", ""))

	_, err := svc.Create(superAdminActor(), dto.UniversityCreateRequest{Name: "T", Slug: "t"})
	require.NoError(t, err)

	u, err := svc.GetBySlug(context.Background(), "  T  ")
	require.NoError(t, err)
	assert.Equal(t, "t", u.Slug)

	_, err = svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
