package service

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/platescan/backend/internal/models"
)

// The completion service is known to sometimes wrap its JSON in a fenced
// code block. Everything here fails closed: any shape violation is a
// malformed_response and nothing downstream runs.

// AnalysisResult is the validated payload of a meal analysis response.
type AnalysisResult struct {
	FoodName    string
	Calories    float64
	Proteins    float64
	Fats        float64
	RecipeName  string
	Ingredients models.IngredientList
}

type analysisPayload struct {
	FoodName    string                 `json:"foodName"`
	Calories    *float64               `json:"calories"`
	Proteins    *float64               `json:"proteins"`
	Fats        *float64               `json:"fats"`
	RecipeName  string                 `json:"recipeName"`
	Ingredients *models.IngredientList `json:"ingredients"`
}

type goalPayload struct {
	DailyCalories  *float64       `json:"dailyCalories"`
	Macronutrients *models.Macros `json:"macronutrients"`
}

// stripFences removes surrounding ``` / ```json markers and whitespace.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func validNumber(f *float64) bool {
	return f != nil && !math.IsNaN(*f) && !math.IsInf(*f, 0)
}

// ParseAnalysis validates the raw completion text of a meal analysis.
// Both modes require a non-empty food name and numeric calories, proteins
// and fats. SourceRecipe additionally requires the echoed recipe name and
// ingredient array to be present; nested ingredient fields are passed
// through as received.
func ParseAnalysis(raw, source string) (*AnalysisResult, error) {
	var p analysisPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &p); err != nil {
		return nil, malformedResponse("analysis response is not valid JSON", err)
	}

	if p.FoodName == "" {
		return nil, malformedResponse("analysis response is missing foodName", nil)
	}
	if !validNumber(p.Calories) {
		return nil, malformedResponse("analysis response is missing numeric calories", nil)
	}
	if !validNumber(p.Proteins) {
		return nil, malformedResponse("analysis response is missing numeric proteins", nil)
	}
	if !validNumber(p.Fats) {
		return nil, malformedResponse("analysis response is missing numeric fats", nil)
	}

	result := &AnalysisResult{
		FoodName: p.FoodName,
		Calories: *p.Calories,
		Proteins: *p.Proteins,
		Fats:     *p.Fats,
	}

	if source == models.SourceRecipe {
		if p.RecipeName == "" {
			return nil, malformedResponse("analysis response is missing recipeName", nil)
		}
		if p.Ingredients == nil {
			return nil, malformedResponse("analysis response is missing ingredients", nil)
		}
		result.RecipeName = p.RecipeName
		result.Ingredients = *p.Ingredients
	}

	return result, nil
}

// ParseGoal validates the raw completion text of a goal computation.
func ParseGoal(raw string) (*models.NutritionGoal, error) {
	var p goalPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &p); err != nil {
		return nil, malformedResponse("goal response is not valid JSON", err)
	}

	if !validNumber(p.DailyCalories) {
		return nil, malformedResponse("goal response is missing numeric dailyCalories", nil)
	}
	if p.Macronutrients == nil {
		return nil, malformedResponse("goal response is missing macronutrients", nil)
	}

	return &models.NutritionGoal{
		DailyCalories:  *p.DailyCalories,
		Macronutrients: *p.Macronutrients,
	}, nil
}
