package usecase

import (
	"context"
	"testing"
	"time"

	"cv-builder/internal/adapter/repository"
	"cv-builder/internal/domain"
	"cv-builder/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(r Renderer) *CVService {
	svc := NewCVService(repository.NewMemoryCVRepo(), newTestExporter(r))
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCVServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(okRenderer())
	owner := uuid.New()

	in := testCV()
	in.ID = "client-supplied"
	created, err := svc.Create(ctx, owner, in)
	require.NoError(t, err)
	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "client-supplied", in.ID, "input must not be mutated")
	assert.True(t, created.LastUpdated.Equal(svc.now()))
	assert.NotNil(t, created.Experience)

	got, err := svc.Get(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", got.Title)

	got.Title = "Staff Engineer"
	updated, err := svc.Update(ctx, owner, created.ID, got)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	list, err := svc.List(ctx, owner, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Staff Engineer", list[0].Title)

	res, err := svc.Export(ctx, owner, created.ID, "classic", nil)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer.pdf", res.Filename)

	require.NoError(t, svc.Delete(ctx, owner, created.ID))
	_, err = svc.Get(ctx, owner, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCVServiceNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(okRenderer())
	owner := uuid.New()

	created, err := svc.Create(ctx, owner, testCV())
	require.NoError(t, err)

	other := uuid.New()
	_, err = svc.Get(ctx, other, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = svc.Export(ctx, other, created.ID, "", nil)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.Get(ctx, owner, "not-a-uuid")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, owner, "not-a-uuid"), apperror.ErrNotFound)
	_, err = svc.Update(ctx, owner, uuid.NewString(), testCV())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCVServiceRequiresCV(t *testing.T) {
	svc := newTestService(okRenderer())
	_, err := svc.Create(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	_, err = svc.Update(context.Background(), uuid.New(), uuid.NewString(), nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestCVServiceListClampsPaging(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(okRenderer())
	owner := uuid.New()
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, owner, &domain.CV{Title: "cv"})
		require.NoError(t, err)
	}
	list, err := svc.List(ctx, owner, 1000, -5)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
