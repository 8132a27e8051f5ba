package seeders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-form/internal/repositories"
)

func TestParseDesignations(t *testing.T) {
	got, err := parseDesignations(" HR-001:Manager , Intern ,HR-009: ")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Manager", got[0].Label())
	assert.False(t, got[1].Title.Valid)
	assert.Equal(t, "HR-009", got[2].Label(), "пустой title не сохраняется")

	_, err = parseDesignations("HR-001,HR-001")
	assert.Error(t, err)
	_, err = parseDesignations(":Manager")
	assert.Error(t, err)
}

func TestSeedDesignations_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewDesignationRepository(repositories.NewMemoryCacheRepository())

	require.NoError(t, SeedDesignations(ctx, repo, "", zap.NewNop()))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(designationsData))
	assert.Equal(t, "HR-001", all[0].Name)
}
