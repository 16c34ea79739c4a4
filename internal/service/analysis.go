package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/platescan/backend/internal/models"
	"github.com/platescan/backend/internal/types"
)

// AnalysisService runs the meal analysis pipeline: validate the payload,
// build the prompt, obtain the raw completion text (cached or live), parse
// and validate it, persist the record. Validation and persistence are atomic
// as a unit: either a fully validated record is stored or nothing is.
type AnalysisService struct {
	llm     CompletionClient
	store   RecordStore
	cache   ResponseCache
	archive PhotoArchive
	logger  *slog.Logger
}

// NewAnalysisService wires the pipeline. cache and archive may be nil, in
// which case raw-response replay and photo archiving are disabled.
func NewAnalysisService(llm CompletionClient, store RecordStore, cache ResponseCache, archive PhotoArchive, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{
		llm:     llm,
		store:   store,
		cache:   cache,
		archive: archive,
		logger:  logger,
	}
}

// AnalyzeFood performs a plain food scan.
func (s *AnalysisService) AnalyzeFood(ctx context.Context, req types.FoodAnalysisRequest) (*models.NutritionRecord, error) {
	return s.analyze(ctx, BuildScanPrompt(), req.ImageBase64, models.SourceScan)
}

// AnalyzeRecipe performs a recipe-assisted scan. The recipe context embedded
// in the prompt is echoed back by the service and persisted with the record.
func (s *AnalysisService) AnalyzeRecipe(ctx context.Context, req types.RecipeAnalysisRequest) (*models.NutritionRecord, error) {
	prompt := BuildRecipePrompt(req.RecipeName, req.ModelIngredients(), req.MoreDetails)
	return s.analyze(ctx, prompt, req.ImageBase64, models.SourceRecipe)
}

func (s *AnalysisService) analyze(ctx context.Context, prompt, imageBase64, source string) (*models.NutritionRecord, error) {
	if err := ValidateImagePayload(imageBase64); err != nil {
		return nil, err
	}

	raw, key, err := s.rawCompletion(ctx, prompt, imageBase64)
	if err != nil {
		return nil, err
	}

	result, err := ParseAnalysis(raw, source)
	if err != nil {
		return nil, err
	}

	// The estimate is paid for; keep its raw text around until the record is
	// safely stored so a retry after a persistence failure replays it.
	if s.cache != nil {
		s.cache.Set(ctx, key, raw)
	}

	now := time.Now()
	record := &models.NutritionRecord{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		FoodName:    result.FoodName,
		Calories:    result.Calories,
		Proteins:    result.Proteins,
		Fats:        result.Fats,
		Source:      source,
		RecipeName:  result.RecipeName,
		Ingredients: result.Ingredients,
		Image:       imageBase64,
	}

	if err := s.store.Insert(ctx, record); err != nil {
		// The raw response stays cached under key so a retry of the same
		// request does not pay for a second completion call.
		return nil, err
	}

	if s.cache != nil {
		s.cache.Delete(ctx, key)
	}
	if s.archive != nil {
		s.archive.Archive(ctx, record.ID.String(), imageBase64)
	}

	s.logger.Info("meal analysis stored",
		"record", record.ID, "source", source, "food", record.FoodName)

	return record, nil
}

// rawCompletion returns the raw completion text for the request, replaying a
// cached response from an earlier attempt when one exists.
func (s *AnalysisService) rawCompletion(ctx context.Context, prompt, imageBase64 string) (raw, key string, err error) {
	key = Fingerprint(prompt, imageBase64)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			s.logger.Info("replaying cached completion response", "key", key)
			return cached, key, nil
		}
	}

	raw, err = s.llm.AnalyzeImage(ctx, prompt, ImageDataURL(imageBase64))
	if err != nil {
		return "", key, err
	}
	return raw, key, nil
}
