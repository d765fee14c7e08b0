package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecommendationIngredient is the snapshot form stored inside a
// generated recommendation; the optional flag is dropped on snapshot.
type RecommendationIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// DietRecommendation is a scored recipe instance generated for one user.
// Recommendations are produced fresh from the catalog on every request;
// the table holds previously generated rows addressed by id only.
type DietRecommendation struct {
	ID                 uuid.UUID                                     `gorm:"type:text;primaryKey;column:id" json:"id"`
	UserID             string                                        `gorm:"not null;index;column:user_id" json:"user_id"`
	Title              string                                        `gorm:"not null;column:title" json:"title"`
	Description        string                                        `gorm:"column:description" json:"description"`
	Ingredients        datatypes.JSONSlice[RecommendationIngredient] `gorm:"not null;column:ingredients" json:"ingredients"`
	Nutrition          datatypes.JSONType[Nutrition]                 `gorm:"not null;column:nutritional_info" json:"nutritional_info"`
	PreparationTime    int                                           `gorm:"not null;column:preparation_time" json:"preparation_time"`
	DifficultyLevel    string                                        `gorm:"not null;column:difficulty_level" json:"difficulty_level"`
	MealType           string                                        `gorm:"not null;column:meal_type" json:"meal_type"`
	RecipeInstructions string                                        `gorm:"not null;column:recipe_instructions" json:"recipe_instructions"`
	CreatedAt          time.Time                                     `gorm:"not null;column:created_at" json:"created_at"`
	IsPersonalized     bool                                          `gorm:"not null;column:is_personalized" json:"is_personalized"`
	RelevanceScore     float64                                       `gorm:"not null;column:relevance_score" json:"relevance_score"`
}

func (DietRecommendation) TableName() string {
	return "diet_recommendations"
}
