package service

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platescan/backend/internal/models"
	"github.com/platescan/backend/internal/testhelpers"
	"github.com/platescan/backend/internal/types"
)

var testImage = base64.StdEncoding.EncodeToString([]byte("fake-jpeg-bytes"))

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubCompletion struct {
	response   string
	err        error
	imageCalls int
	textCalls  int
	lastPrompt string
	lastImage  string
}

func (s *stubCompletion) AnalyzeImage(_ context.Context, prompt, imageDataURL string) (string, error) {
	s.imageCalls++
	s.lastPrompt = prompt
	s.lastImage = imageDataURL
	return s.response, s.err
}

func (s *stubCompletion) CompleteText(_ context.Context, _, prompt string) (string, error) {
	s.textCalls++
	s.lastPrompt = prompt
	return s.response, s.err
}

// countingStore counts writes on its way to the wrapped store.
type countingStore struct {
	RecordStore
	inserts int
}

func (s *countingStore) Insert(ctx context.Context, record *models.NutritionRecord) error {
	s.inserts++
	return s.RecordStore.Insert(ctx, record)
}

type failingStore struct {
	RecordStore
}

func (s *failingStore) Insert(context.Context, *models.NutritionRecord) error {
	return persistenceFailure("failed to store nutrition record", nil)
}

// memoryCache is an in-process ResponseCache for tests.
type memoryCache struct {
	entries map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]string)}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool) {
	raw, ok := c.entries[key]
	return raw, ok
}

func (c *memoryCache) Set(_ context.Context, key, raw string) { c.entries[key] = raw }

func (c *memoryCache) Delete(_ context.Context, key string) { delete(c.entries, key) }

func TestAnalyzeFoodPersistsValidatedRecord(t *testing.T) {
	llm := &stubCompletion{response: `{"foodName":"Salad","calories":250,"proteins":10,"fats":5}`}
	store := &countingStore{RecordStore: NewFoodStore(testhelpers.NewTestDB(t))}
	cache := newMemoryCache()
	svc := NewAnalysisService(llm, store, cache, nil, testLogger())

	record, err := svc.AnalyzeFood(context.Background(), types.FoodAnalysisRequest{ImageBase64: testImage})
	require.NoError(t, err)

	assert.Equal(t, "Salad", record.FoodName)
	assert.Equal(t, 250.0, record.Calories)
	assert.Equal(t, 10.0, record.Proteins)
	assert.Equal(t, 5.0, record.Fats)
	assert.Equal(t, models.SourceScan, record.Source)
	assert.Equal(t, testImage, record.Image)
	assert.NotEqual(t, "", record.ID.String())
	assert.True(t, record.UpdatedAt.Equal(record.CreatedAt))

	assert.Equal(t, 1, llm.imageCalls)
	assert.Equal(t, 1, store.inserts)
	assert.True(t, strings.HasPrefix(llm.lastImage, "data:image/jpeg;base64,"))

	// The raw response is evicted once the record is stored.
	assert.Empty(t, cache.entries)

	stored, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, record.ID, stored[0].ID)
}

func TestAnalyzeFoodMalformedResponseWritesNothing(t *testing.T) {
	llm := &stubCompletion{response: "not json"}
	store := &countingStore{RecordStore: NewFoodStore(testhelpers.NewTestDB(t))}
	svc := NewAnalysisService(llm, store, newMemoryCache(), nil, testLogger())

	record, err := svc.AnalyzeFood(context.Background(), types.FoodAnalysisRequest{ImageBase64: testImage})

	assert.Nil(t, record)
	assert.Equal(t, CodeMalformedResponse, CodeOf(err))
	assert.Equal(t, 0, store.inserts)
}

func TestAnalyzeFoodRejectsMissingImageBeforeUpstream(t *testing.T) {
	llm := &stubCompletion{response: `{"foodName":"Salad","calories":250,"proteins":10,"fats":5}`}
	store := &countingStore{RecordStore: NewFoodStore(testhelpers.NewTestDB(t))}
	svc := NewAnalysisService(llm, store, nil, nil, testLogger())

	_, err := svc.AnalyzeFood(context.Background(), types.FoodAnalysisRequest{})

	assert.Equal(t, CodeInvalidInput, CodeOf(err))
	assert.Equal(t, 0, llm.imageCalls)
	assert.Equal(t, 0, store.inserts)
}

func TestAnalyzeFoodReplaysCachedResponseAfterStoreFailure(t *testing.T) {
	llm := &stubCompletion{response: `{"foodName":"Salad","calories":250,"proteins":10,"fats":5}`}
	cache := newMemoryCache()
	req := types.FoodAnalysisRequest{ImageBase64: testImage}

	broken := NewAnalysisService(llm, &failingStore{}, cache, nil, testLogger())
	_, err := broken.AnalyzeFood(context.Background(), req)
	assert.Equal(t, CodePersistenceFailure, CodeOf(err))
	assert.Equal(t, 1, llm.imageCalls)
	assert.Len(t, cache.entries, 1)

	// Retry against a healthy store replays the cached text: the completion
	// call is not paid for twice.
	store := &countingStore{RecordStore: NewFoodStore(testhelpers.NewTestDB(t))}
	healthy := NewAnalysisService(llm, store, cache, nil, testLogger())
	record, err := healthy.AnalyzeFood(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Salad", record.FoodName)
	assert.Equal(t, 1, llm.imageCalls)
	assert.Equal(t, 1, store.inserts)
	assert.Empty(t, cache.entries)
}

func TestAnalyzeRecipePersistsEchoedContext(t *testing.T) {
	llm := &stubCompletion{response: `{"foodName":"Paella","calories":640,"proteins":32,"fats":18,` +
		`"recipeName":"Paella","ingredients":[{"igredientName":"Rice","igredientUnit":"g","quantity":2}]}`}
	store := &countingStore{RecordStore: NewFoodStore(testhelpers.NewTestDB(t))}
	svc := NewAnalysisService(llm, store, nil, nil, testLogger())

	qty := 2.0
	record, err := svc.AnalyzeRecipe(context.Background(), types.RecipeAnalysisRequest{
		ImageBase64: testImage,
		RecipeName:  "Paella",
		Ingredients: []types.RecipeIngredient{{Name: "Rice", Unit: "g", Quantity: &qty}},
		MoreDetails: "extra saffron",
	})
	require.NoError(t, err)

	assert.Equal(t, models.SourceRecipe, record.Source)
	assert.Equal(t, "Paella", record.RecipeName)
	require.Len(t, record.Ingredients, 1)
	assert.Equal(t, "Rice", record.Ingredients[0].Name)

	assert.Contains(t, llm.lastPrompt, "Recipe Name: Paella")
	assert.Contains(t, llm.lastPrompt, "- Rice (2 g)")
	assert.Contains(t, llm.lastPrompt, "Additional details: extra saffron")
}
