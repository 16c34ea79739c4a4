package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/platescan/backend/internal/models"
)

// Prompt construction is pure: the same inputs always render byte-identical
// text. The instruction literals pin the exact response shape the completion
// service must follow; changing them changes the wire contract.

const scanPrompt = `Analyze this food image and return a JSON object with exactly this format, nothing else: {"foodName": "name of the food", "calories": number, "proteins": number, "fats": number}. Be precise with the calories estimation.`

const goalSystemPrompt = "You are a nutrition expert. Respond ONLY with valid JSON, no additional text or explanations."

// BuildScanPrompt returns the instruction for a plain food scan.
func BuildScanPrompt() string {
	return scanPrompt
}

// BuildRecipePrompt returns the instruction for a recipe-assisted scan. The
// recipe name and ingredient list are echoed into the expected response
// shape so the service is constrained to reproduce them.
func BuildRecipePrompt(recipeName string, ingredients models.IngredientList, moreDetails string) string {
	lines := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		lines = append(lines, ingredientLine(ing))
	}

	// Marshal of a struct slice is deterministic; an empty list renders as [].
	echoed, _ := json.Marshal(ingredients)

	var b strings.Builder
	b.WriteString("Analyze the following food image based on the provided recipe context.\n\n")
	b.WriteString("Recipe Name: " + recipeName + "\n\n")
	b.WriteString("Ingredients:\n" + strings.Join(lines, "\n") + "\n\n")
	b.WriteString("Return a JSON object with *only* this format (and nothing else):\n\n")
	b.WriteString("{\n")
	b.WriteString("  \"foodName\": \"name of the food\",\n")
	b.WriteString("  \"calories\": number,\n")
	b.WriteString("  \"proteins\": number,\n")
	b.WriteString("  \"fats\": number,\n")
	b.WriteString("  \"recipeName\": \"" + recipeName + "\",\n")
	b.WriteString("  \"ingredients\": " + string(echoed) + "\n")
	b.WriteString("}\n\n")
	b.WriteString("Be as precise as possible in estimating calories, proteins, and fats, considering both the image and the provided ingredients. When quantities are provided, use them to calculate the nutritional values more accurately.")
	if moreDetails != "" {
		b.WriteString("\n\nAdditional details: " + moreDetails)
	}
	return b.String()
}

// ingredientLine renders "- <name> (<quantity> <unit>)", omitting the
// parenthetical when no unit is given and the quantity when absent.
func ingredientLine(ing models.Ingredient) string {
	if ing.Unit == "" {
		return "- " + ing.Name
	}
	qty := ""
	if ing.Quantity != nil {
		qty = strconv.FormatFloat(*ing.Quantity, 'f', -1, 64)
	}
	return fmt.Sprintf("- %s (%s %s)", ing.Name, qty, ing.Unit)
}

// BuildGoalPrompt returns the instruction for the daily-goal computation.
// The arithmetic rules are conveyed to the completion service verbatim; the
// numbers are never recomputed locally.
func BuildGoalPrompt(age int, gender string, weight, height float64, physicalActivity, goal string) string {
	var b strings.Builder
	b.WriteString("Calculate daily nutritional needs for a person with the following characteristics:\n")
	fmt.Fprintf(&b, "- Age: %d years\n", age)
	fmt.Fprintf(&b, "- Gender: %s\n", gender)
	fmt.Fprintf(&b, "- Weight: %s kg\n", strconv.FormatFloat(weight, 'f', -1, 64))
	fmt.Fprintf(&b, "- Height: %s cm\n", strconv.FormatFloat(height, 'f', -1, 64))
	fmt.Fprintf(&b, "- Physical Activity Level: %s\n", physicalActivity)
	fmt.Fprintf(&b, "- Goal: %s weight\n\n", goal)
	b.WriteString("Return ONLY a JSON object with this exact format:\n")
	b.WriteString("{\n")
	b.WriteString("  \"dailyCalories\": number,\n")
	b.WriteString("  \"macronutrients\": {\n")
	b.WriteString("    \"proteins\": number,\n")
	b.WriteString("    \"carbs\": number,\n")
	b.WriteString("    \"fats\": number\n")
	b.WriteString("  }\n")
	b.WriteString("}\n\n")
	b.WriteString("Use these guidelines:\n")
	b.WriteString("- Proteins: 2g per kg of body weight\n")
	b.WriteString("- Fats: 25% of total calories\n")
	b.WriteString("- Carbs: Remaining calories\n")
	b.WriteString("- Adjust calories based on goal: -500 for weight loss, +500 for weight gain\n")
	b.WriteString("- Consider activity level in BMR calculation using Harris-Benedict equation\n")
	b.WriteString("- Round all numbers to whole numbers\n\n")
	b.WriteString("Remember: Return ONLY the JSON object, no additional text.")
	return b.String()
}
