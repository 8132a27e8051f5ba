package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-form/internal/entities"
	apperrors "employee-form/pkg/errors"
)

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheRepository()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))
	val, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	now = now.Add(2 * time.Minute)
	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_SetNXAndIncr(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheRepository()

	ok, err := cache.SetNX(ctx, "k", []byte("first"), 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.SetNX(ctx, "k", "second", 0)
	require.NoError(t, err)
	assert.False(t, ok)

	val, _ := cache.Get(ctx, "k")
	assert.Equal(t, "first", val)

	for i := int64(1); i <= 3; i++ {
		n, err := cache.Incr(ctx, "seq")
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	_, err = cache.Incr(ctx, "k")
	assert.Error(t, err, "нечисловое значение нельзя увеличить")
}

func TestEmployeeRepository_CreateAndDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewMemoryCacheRepository(), zap.NewNop())

	first := &entities.Employee{EmployeeName: "Ali  Valiev", Designation: "HR-001"}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, "HR-EMP-00001", first.ID)

	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ali  Valiev", stored.EmployeeName)

	err = repo.Create(ctx, &entities.Employee{EmployeeName: "ali valiev", Designation: "HR-002"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	_, err = repo.FindByID(ctx, "HR-EMP-99999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDesignationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDesignationRepository(NewMemoryCacheRepository())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.ReplaceAll(ctx, []entities.Designation{{Name: "HR-001"}, {Name: "HR-002"}}))

	found, err := repo.FindByName(ctx, "HR-002")
	require.NoError(t, err)
	assert.Equal(t, "HR-002", found.Label())

	_, err = repo.FindByName(ctx, "HR-404")
	assert.ErrorIs(t, err, apperrors.ErrDesignationNotFound)
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(NewMemoryCacheRepository())

	session := &entities.Session{SID: "sid-1", User: "Administrator", CSRFToken: "tok"}
	require.NoError(t, repo.Save(ctx, session, time.Hour))

	found, err := repo.FindBySID(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "tok", found.CSRFToken)

	require.NoError(t, repo.Delete(ctx, "sid-1"))
	_, err = repo.FindBySID(ctx, "sid-1")
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
}
