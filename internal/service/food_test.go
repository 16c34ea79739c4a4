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

func TestFoodStoreInsertAndList(t *testing.T) {
	store := NewFoodStore(testhelpers.NewTestDB(t))
	ctx := context.Background()

	qty := 2.0
	now := time.Now()
	record := &models.NutritionRecord{
		ID:         uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
		FoodName:   "Paella",
		Calories:   640,
		Proteins:   32,
		Fats:       18,
		Source:     models.SourceRecipe,
		RecipeName: "Paella",
		Ingredients: models.IngredientList{
			{Name: "Rice", Unit: "g", Quantity: &qty},
		},
		Image: "aGVsbG8=",
	}
	require.NoError(t, store.Insert(ctx, record))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, "Paella", got.FoodName)
	assert.Equal(t, 640.0, got.Calories)
	assert.Equal(t, "aGVsbG8=", got.Image)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, "Rice", got.Ingredients[0].Name)
	require.NotNil(t, got.Ingredients[0].Quantity)
	assert.Equal(t, 2.0, *got.Ingredients[0].Quantity)
}

func TestFoodStoreListBySource(t *testing.T) {
	store := NewFoodStore(testhelpers.NewTestDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Insert(ctx, &models.NutritionRecord{
		ID: uuid.New(), CreatedAt: now, UpdatedAt: now,
		FoodName: "Salad", Calories: 250, Source: models.SourceScan,
	}))
	require.NoError(t, store.Insert(ctx, &models.NutritionRecord{
		ID: uuid.New(), CreatedAt: now, UpdatedAt: now,
		FoodName: "Paella", Calories: 640, Source: models.SourceRecipe, RecipeName: "Paella",
	}))

	recipes, err := store.ListBySource(ctx, models.SourceRecipe)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Paella", recipes[0].FoodName)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFoodStoreListSince(t *testing.T) {
	store := NewFoodStore(testhelpers.NewTestDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Insert(ctx, &models.NutritionRecord{
		ID: uuid.New(), CreatedAt: now.AddDate(0, 0, -9), UpdatedAt: now.AddDate(0, 0, -9),
		FoodName: "Old", Calories: 100, Source: models.SourceScan,
	}))
	require.NoError(t, store.Insert(ctx, &models.NutritionRecord{
		ID: uuid.New(), CreatedAt: now, UpdatedAt: now,
		FoodName: "Fresh", Calories: 200, Source: models.SourceScan,
	}))

	recent, err := store.ListSince(ctx, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Fresh", recent[0].FoodName)
}
