package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Macros holds a daily macronutrient target in grams.
type Macros struct {
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// NutritionGoal is the derived daily target returned by the goal
// computation. It is opaque output of the completion service and is never
// recomputed locally.
type NutritionGoal struct {
	DailyCalories  float64 `json:"dailyCalories"`
	Macronutrients Macros  `json:"macronutrients"`
}

// Value implements the driver.Valuer interface
func (g NutritionGoal) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan implements the sql.Scanner interface
func (g *NutritionGoal) Scan(value interface{}) error {
	if value == nil {
		*g = NutritionGoal{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T for NutritionGoal", value)
	}

	return json.Unmarshal(bytes, g)
}

// UserProfile holds the physiological parameters registered by a user plus
// the goal derived from them. The most recently created profile is treated
// as the current one.
type UserProfile struct {
	ID               uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
	Age              int           `gorm:"not null" json:"age"`
	Gender           string        `gorm:"size:16;not null" json:"gender"`
	Weight           float64       `gorm:"not null" json:"weight"`
	Height           float64       `gorm:"not null" json:"height"`
	PhysicalActivity string        `gorm:"size:16;not null" json:"physicalActivity"`
	Goal             string        `gorm:"size:16;not null" json:"goal"`
	NutritionalData  NutritionGoal `gorm:"type:jsonb" json:"nutritionalData"`
}
