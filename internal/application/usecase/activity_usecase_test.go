package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/application/quota"
	"github.com/malithvisio/magcin-api/internal/application/usecase"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

type memActivities struct {
	repository.ActivityRepository
	items map[string]*entity.Activity
}

func (m *memActivities) Create(_ context.Context, a *entity.Activity) error {
	cp := *a
	m.items[a.ID] = &cp
	return nil
}

func (m *memActivities) GetBySlug(_ context.Context, scope domain.Scope, s string) (*entity.Activity, error) {
	for _, a := range m.items {
		if a.Slug == s && a.RootUserID == scope.RootUserID() {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

type activityTx struct {
	users      *memUsers
	activities *memActivities
}

func (f *activityTx) Run(_ context.Context, fn func(usecase.TxRepos) error) error {
	return fn(usecase.TxRepos{Users: f.users, Activities: f.activities})
}

func activityFixture() (*usecase.ActivityUseCase, *memActivities) {
	users := &memUsers{users: map[string]*entity.User{
		"root-1": {
			ID:         "root-1",
			Role:       domain.RoleRootUser,
			IsRootUser: true,
			IsActive:   true,
			Plan:       domain.PlanFree,
		},
	}}
	activities := &memActivities{items: map[string]*entity.Activity{}}
	ledger := quota.NewLedger(users, domain.DefaultPlanTable())
	uc := usecase.NewActivityUseCase(activities, ledger, &activityTx{users: users, activities: activities})
	return uc, activities
}

// El slug se normaliza al crear y la página pública de detalle lo resuelve.
func TestActivityCreate_SlugPublicado(t *testing.T) {
	uc, activities := activityFixture()

	created, err := uc.Create(context.Background(), tcRoot(), dto.CreateActivityRequest{
		Name:       "Caminata Río Claro",
		Difficulty: entity.DifficultyModerate,
	})
	require.NoError(t, err)
	assert.Equal(t, "caminata-rio-claro", created.Slug)

	// Publicarla y resolverla por slug desde la superficie pública.
	activities.items[created.ID].Published = true
	out, err := uc.GetPublishedBySlug(context.Background(), "root-1", "caminata-rio-claro")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, created.ID, out.ID)
}

// Un borrador no es visible por slug en el sitio público.
func TestActivityGetPublishedBySlug_Borrador(t *testing.T) {
	uc, _ := activityFixture()

	created, err := uc.Create(context.Background(), tcRoot(), dto.CreateActivityRequest{Name: "Caminata Río Claro"})
	require.NoError(t, err)
	require.NotEmpty(t, created.Slug)

	out, err := uc.GetPublishedBySlug(context.Background(), "root-1", created.Slug)
	require.NoError(t, err)
	assert.Nil(t, out)
}

// El slug se resuelve solo dentro del tenant dueño.
func TestActivityGetPublishedBySlug_OtroTenant(t *testing.T) {
	uc, activities := activityFixture()

	created, err := uc.Create(context.Background(), tcRoot(), dto.CreateActivityRequest{Name: "Caminata Río Claro"})
	require.NoError(t, err)
	activities.items[created.ID].Published = true

	out, err := uc.GetPublishedBySlug(context.Background(), "root-2", created.Slug)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestActivityCreate_SlugDuplicado(t *testing.T) {
	uc, _ := activityFixture()

	_, err := uc.Create(context.Background(), tcRoot(), dto.CreateActivityRequest{Name: "Caminata Río Claro"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), tcRoot(), dto.CreateActivityRequest{Name: "Caminata RÍO Claro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
