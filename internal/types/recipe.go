package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
)

// Ingredient is a single line of a recipe's ingredient list. Optional
// ingredients still participate in restriction and allergy matching.
type Ingredient struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Optional bool    `json:"optional"`
}

// Nutrition holds per-serving totals; protein, carbs, fat and fiber are
// in grams.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

type Recipe struct {
	ID                 uuid.UUID                       `gorm:"type:text;primaryKey;column:id" json:"id"`
	Title              string                          `gorm:"not null;column:title" json:"title"`
	Description        string                          `gorm:"column:description" json:"description"`
	Ingredients        datatypes.JSONSlice[Ingredient] `gorm:"not null;column:ingredients" json:"ingredients"`
	Nutrition          datatypes.JSONType[Nutrition]   `gorm:"not null;column:nutritional_info_per_serving" json:"nutritional_info_per_serving"`
	PreparationTime    int                             `gorm:"not null;column:preparation_time" json:"preparation_time"`
	DifficultyLevel    string                          `gorm:"not null;column:difficulty_level" json:"difficulty_level"`
	MealType           string                          `gorm:"not null;column:meal_type" json:"meal_type"`
	RecipeInstructions string                          `gorm:"not null;column:recipe_instructions" json:"recipe_instructions"`
	CuisineType        *string                         `gorm:"column:cuisine_type" json:"cuisine_type"`
	Seasonal           bool                            `gorm:"not null;column:seasonal" json:"seasonal"`
	Tags               datatypes.JSONSlice[string]     `gorm:"not null;column:tags" json:"tags"`
	CreatedAt          time.Time                       `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt          time.Time                       `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (Recipe) TableName() string {
	return "recipes"
}

func (r *Recipe) Validate() error {
	nutrition := r.Nutrition.Data()
	if nutrition.Calories <= 0 {
		return apperr.Validationf("calories must be positive, got %v", nutrition.Calories)
	}
	if nutrition.Protein < 0 || nutrition.Carbs < 0 || nutrition.Fat < 0 || nutrition.Fiber < 0 {
		return apperr.Validationf("nutritional totals must not be negative")
	}
	if r.PreparationTime <= 0 {
		return apperr.Validationf("preparation time must be positive, got %d", r.PreparationTime)
	}
	if _, ok := validDifficulties[r.DifficultyLevel]; !ok {
		return apperr.Validationf("invalid difficulty level %q", r.DifficultyLevel)
	}
	if _, ok := validMealTypes[r.MealType]; !ok {
		return apperr.Validationf("invalid meal type %q", r.MealType)
	}
	return nil
}
