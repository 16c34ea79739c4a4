package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platescan/backend/internal/models"
	"github.com/platescan/backend/internal/testhelpers"
)

func insertRecordAt(t *testing.T, store *FoodStore, created time.Time, calories, proteins, fats float64) {
	t.Helper()
	err := store.Insert(context.Background(), &models.NutritionRecord{
		ID:        uuid.New(),
		CreatedAt: created,
		UpdatedAt: created,
		FoodName:  "Meal",
		Calories:  calories,
		Proteins:  proteins,
		Fats:      fats,
		Source:    models.SourceScan,
		Image:     "aGVsbG8=",
	})
	require.NoError(t, err)
}

func TestSummarizeLastDaysEmpty(t *testing.T) {
	store := NewFoodStore(testhelpers.NewTestDB(t))
	analytics := NewAnalyticsService(store)

	summaries, err := analytics.SummarizeLastDays(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.NotNil(t, summaries)
}

func TestSummarizeLastDaysOrdersAndSums(t *testing.T) {
	store := NewFoodStore(testhelpers.NewTestDB(t))
	analytics := NewAnalyticsService(store)

	now := time.Now()
	d1 := now.AddDate(0, 0, -2)
	d2 := now.AddDate(0, 0, -1)

	insertRecordAt(t, store, d1, 300, 12, 8)
	insertRecordAt(t, store, d1, 200, 8, 4)
	insertRecordAt(t, store, d2, 450, 20, 15)
	insertRecordAt(t, store, now, 250, 10, 5)

	summaries, err := analytics.SummarizeLastDays(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, d1.Local().Format("2006-01-02"), summaries[0].Date)
	assert.Equal(t, d2.Local().Format("2006-01-02"), summaries[1].Date)
	assert.Equal(t, now.Local().Format("2006-01-02"), summaries[2].Date)

	assert.Equal(t, 500, summaries[0].TotalCalories)
	assert.Equal(t, 20, summaries[0].TotalProteins)
	assert.Equal(t, 12, summaries[0].TotalFats)

	assert.Equal(t, 450, summaries[1].TotalCalories)
	assert.Equal(t, 250, summaries[2].TotalCalories)
}

func TestSummarizeLastDaysRoundsHalfUp(t *testing.T) {
	store := NewFoodStore(testhelpers.NewTestDB(t))
	analytics := NewAnalyticsService(store)

	now := time.Now()
	insertRecordAt(t, store, now, 100.25, 1.25, 0.3)
	insertRecordAt(t, store, now, 100.25, 1.25, 0.1)

	summaries, err := analytics.SummarizeLastDays(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	// 200.5 -> 201, 2.5 -> 3, 0.4 -> 0
	assert.Equal(t, 201, summaries[0].TotalCalories)
	assert.Equal(t, 3, summaries[0].TotalProteins)
	assert.Equal(t, 0, summaries[0].TotalFats)
}

func TestSummarizeLastDaysExcludesOldRecords(t *testing.T) {
	store := NewFoodStore(testhelpers.NewTestDB(t))
	analytics := NewAnalyticsService(store)

	now := time.Now()
	insertRecordAt(t, store, now.AddDate(0, 0, -10), 999, 99, 99)
	insertRecordAt(t, store, now, 250, 10, 5)

	summaries, err := analytics.SummarizeLastDays(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 250, summaries[0].TotalCalories)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3, roundHalfUp(2.5))
	assert.Equal(t, 2, roundHalfUp(2.4))
	assert.Equal(t, 3, roundHalfUp(2.6))
	assert.Equal(t, 0, roundHalfUp(0))
}
