package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/testhelpers"
)

func TestPerfumeService_ListAndFilter(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewPerfumeService(db)
	ctx := context.Background()

	seedPerfume(t, db, "Santal 33", "Le Labo", models.FamilyWoody)
	seedPerfume(t, db, "Another 13", "Le Labo", models.FamilyMusky)
	seedPerfume(t, db, "Delina", "Parfums de Marly", models.FamilyFloral)

	t.Run("unfiltered list", func(t *testing.T) {
		perfumes, err := svc.ListPerfumes(ctx, PerfumeFilter{})
		require.NoError(t, err)
		assert.Len(t, perfumes, 3)
	})

	t.Run("filter by family", func(t *testing.T) {
		perfumes, err := svc.ListPerfumes(ctx, PerfumeFilter{ScentFamily: models.FamilyWoody})
		require.NoError(t, err)
		require.Len(t, perfumes, 1)
		assert.Equal(t, "Santal 33", perfumes[0].Name)
	})

	t.Run("get by id", func(t *testing.T) {
		perfumes, err := svc.ListPerfumes(ctx, PerfumeFilter{})
		require.NoError(t, err)

		found, err := svc.GetPerfume(ctx, perfumes[0].ID)
		require.NoError(t, err)
		assert.Equal(t, perfumes[0].Name, found.Name)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := svc.GetPerfume(ctx, uuid.New())
		assert.Error(t, err)
	})
}

func TestPerfumeService_CreateDeduplicates(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewPerfumeService(db)
	ctx := context.Background()

	first, err := svc.CreatePerfume(ctx, &models.Perfume{
		Name:        "Santal 33",
		House:       "Le Labo",
		ScentFamily: models.FamilyWoody,
		Performance: models.PerformanceBalanced,
	})
	require.NoError(t, err)

	second, err := svc.CreatePerfume(ctx, &models.Perfume{
		Name:        "Santal 33",
		House:       "Le Labo",
		ScentFamily: models.FamilyAmber,
		Performance: models.PerformanceLoud,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.FamilyWoody, second.ScentFamily)

	var count int64
	db.Model(&models.Perfume{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPerfumeService_SearchKeywordFallback(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewPerfumeService(db)
	ctx := context.Background()

	seedPerfume(t, db, "Santal 33", "Le Labo", models.FamilyWoody)
	seedPerfume(t, db, "Delina", "Parfums de Marly", models.FamilyFloral)

	t.Run("match by name", func(t *testing.T) {
		perfumes, err := svc.SearchPerfumes(ctx, "santal")
		require.NoError(t, err)
		require.Len(t, perfumes, 1)
		assert.Equal(t, "Santal 33", perfumes[0].Name)
	})

	t.Run("match by house", func(t *testing.T) {
		perfumes, err := svc.SearchPerfumes(ctx, "marly")
		require.NoError(t, err)
		require.Len(t, perfumes, 1)
		assert.Equal(t, "Delina", perfumes[0].Name)
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		perfumes, err := svc.SearchPerfumes(ctx, "")
		require.NoError(t, err)
		assert.Len(t, perfumes, 2)
	})

	t.Run("no match", func(t *testing.T) {
		perfumes, err := svc.SearchPerfumes(ctx, "vetiver")
		require.NoError(t, err)
		assert.Empty(t, perfumes)
	})
}
