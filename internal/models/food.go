package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Record sources. Plain scans carry only the image; recipe analyses carry
// the user-provided recipe context as well.
const (
	SourceScan   = "scan"
	SourceRecipe = "recipe"
)

// Ingredient units accepted on the wire: piece, gram, liter.
const (
	UnitPiece = "ud"
	UnitGram  = "g"
	UnitLiter = "l"
)

// Ingredient is one entry of a recipe's ingredient list. The field names,
// including the "igredientName" spelling, are part of the wire contract with
// the completion service and the original clients and must not be corrected.
type Ingredient struct {
	Name     string   `json:"igredientName"`
	Unit     string   `json:"igredientUnit,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
}

// IngredientList is a custom type for storing ingredient arrays in JSONB
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// NutritionRecord is a persisted meal analysis. Identity is assigned once at
// creation and the record is never mutated afterwards; UpdatedAt is set equal
// to CreatedAt.
type NutritionRecord struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	FoodName    string         `gorm:"size:255;not null" json:"foodName"`
	Calories    float64        `gorm:"type:float" json:"calories"`
	Proteins    float64        `gorm:"type:float" json:"proteins"`
	Fats        float64        `gorm:"type:float" json:"fats"`
	Source      string         `gorm:"size:16;not null;index" json:"source"`
	RecipeName  string         `gorm:"size:255" json:"recipeName,omitempty"`
	Ingredients IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients,omitempty"`
	// Base64-encoded JPEG, retained verbatim for provenance.
	Image string `gorm:"type:text" json:"image"`
}
