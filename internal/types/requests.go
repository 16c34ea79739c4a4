package types

import "github.com/platescan/backend/internal/models"

// FoodAnalysisRequest is the body of a plain food scan.
type FoodAnalysisRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

// FoodAnalysisResponse echoes the validated analysis back to the client.
type FoodAnalysisResponse struct {
	FoodName string  `json:"foodName"`
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Fats     float64 `json:"fats"`
}

// RecipeIngredient mirrors models.Ingredient on the request side. The
// misspelled field names are the fixed wire contract.
type RecipeIngredient struct {
	Name     string   `json:"igredientName" binding:"required"`
	Unit     string   `json:"igredientUnit" binding:"omitempty,oneof=ud g l"`
	Quantity *float64 `json:"quantity" binding:"omitempty,gt=0"`
}

// RecipeAnalysisRequest is the body of a recipe-assisted scan. The
// ingredient list is required but may be empty.
type RecipeAnalysisRequest struct {
	ImageBase64 string             `json:"imageBase64" binding:"required"`
	RecipeName  string             `json:"recipeName" binding:"required"`
	Ingredients []RecipeIngredient `json:"recipeIngredients" binding:"required"`
	MoreDetails string             `json:"moreDetails"`
}

// ModelIngredients converts the request ingredients to the persisted form.
func (r *RecipeAnalysisRequest) ModelIngredients() models.IngredientList {
	list := make(models.IngredientList, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		list = append(list, models.Ingredient{
			Name:     i.Name,
			Unit:     i.Unit,
			Quantity: i.Quantity,
		})
	}
	return list
}

// RecipeAnalysisResponse is the analysis echoed back for a recipe-assisted
// scan, including the recipe context reproduced by the service.
type RecipeAnalysisResponse struct {
	FoodName    string                `json:"foodName"`
	Calories    float64               `json:"calories"`
	Proteins    float64               `json:"proteins"`
	Fats        float64               `json:"fats"`
	RecipeName  string                `json:"recipeName"`
	Ingredients models.IngredientList `json:"ingredients"`
}

// RegisterRequest carries the physiological parameters submitted at
// registration. Ranges follow the registration form contract.
type RegisterRequest struct {
	Age              int     `json:"age" binding:"required,gte=1,lte=120"`
	Gender           string  `json:"gender" binding:"required,oneof=male female"`
	Weight           float64 `json:"weight" binding:"required,gte=20,lte=300"`
	Height           float64 `json:"height" binding:"required,gte=100,lte=250"`
	PhysicalActivity string  `json:"physicalActivity" binding:"required,oneof=sedentary light moderate very extra"`
	Goal             string  `json:"goal" binding:"required,oneof=lose maintain gain"`
}

// DailySummary is one day of the trailing intake aggregate. Sums are
// rounded to whole numbers.
type DailySummary struct {
	Date          string `json:"date"`
	TotalCalories int    `json:"totalCalories"`
	TotalProteins int    `json:"totalProteins"`
	TotalFats     int    `json:"totalFats"`
}
