package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/platescan/backend/internal/models"
	"github.com/platescan/backend/internal/types"
)

// GoalService derives a daily nutrition target from registered physiological
// parameters. The arithmetic is delegated to the completion capability under
// a fixed rule set; exact reproducibility is not guaranteed and the result
// is stored as opaque output, never recomputed locally.
type GoalService struct {
	llm    CompletionClient
	store  ProfileStore
	logger *slog.Logger
}

// NewGoalService creates a GoalService.
func NewGoalService(llm CompletionClient, store ProfileStore, logger *slog.Logger) *GoalService {
	return &GoalService{llm: llm, store: store, logger: logger}
}

// Register computes the goal for the given parameters and persists the
// resulting profile. Input ranges are enforced before any upstream call.
func (s *GoalService) Register(ctx context.Context, req types.RegisterRequest) (*models.UserProfile, error) {
	prompt := BuildGoalPrompt(req.Age, req.Gender, req.Weight, req.Height, req.PhysicalActivity, req.Goal)

	raw, err := s.llm.CompleteText(ctx, goalSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	goal, err := ParseGoal(raw)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &models.UserProfile{
		ID:               uuid.New(),
		CreatedAt:        now,
		UpdatedAt:        now,
		Age:              req.Age,
		Gender:           req.Gender,
		Weight:           req.Weight,
		Height:           req.Height,
		PhysicalActivity: req.PhysicalActivity,
		Goal:             req.Goal,
		NutritionalData:  *goal,
	}

	if err := s.store.Insert(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.Info("profile registered",
		"profile", profile.ID, "dailyCalories", goal.DailyCalories)

	return profile, nil
}

// Profiles returns all registered profiles ordered oldest first, so the
// last element is the current one.
func (s *GoalService) Profiles(ctx context.Context) ([]models.UserProfile, error) {
	return s.store.ListAll(ctx)
}

// Current returns the most recently registered profile, or nil when none
// exists.
func (s *GoalService) Current(ctx context.Context) (*models.UserProfile, error) {
	return s.store.Latest(ctx)
}
