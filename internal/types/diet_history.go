package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
)

// DietHistory records one attempt at a recommendation or a custom diet
// item. DietItemID is a value reference only; the schema intentionally
// carries no foreign key so entries can exist before any profile does.
type DietHistory struct {
	ID            uuid.UUID `gorm:"type:text;primaryKey;column:id" json:"id"`
	UserID        string    `gorm:"not null;index;column:user_id" json:"user_id"`
	DietItemID    uuid.UUID `gorm:"type:text;not null;column:diet_item_id" json:"diet_item_id"`
	DateAttempted string    `gorm:"not null;column:date_attempted" json:"date_attempted"`
	Rating        *int      `gorm:"column:rating" json:"rating"`
	Notes         *string   `gorm:"column:notes" json:"notes"`
	WasPrepared   bool      `gorm:"not null;column:was_prepared" json:"was_prepared"`
	MealType      string    `gorm:"not null;column:meal_type" json:"meal_type"`
	CreatedAt     time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (DietHistory) TableName() string {
	return "diet_history"
}

func (h *DietHistory) Validate() error {
	if h.UserID == "" {
		return apperr.Validationf("user id must not be empty")
	}
	if h.Rating != nil {
		if *h.Rating < 1 || *h.Rating > 5 {
			return apperr.Validationf("rating must be between 1 and 5, got %d", *h.Rating)
		}
	}
	attempted, err := time.ParseInLocation(DateLayout, h.DateAttempted, time.Local)
	if err != nil {
		return apperr.Validationf("date attempted must be a %s date: %v", DateLayout, err)
	}
	today, err := time.ParseInLocation(DateLayout, time.Now().Format(DateLayout), time.Local)
	if err != nil {
		return apperr.Validationf("resolving current date: %v", err)
	}
	if attempted.After(today) {
		return apperr.Validationf("date attempted %s must not be in the future", h.DateAttempted)
	}
	if _, ok := validMealTypes[h.MealType]; !ok {
		return apperr.Validationf("invalid meal type %q", h.MealType)
	}
	return nil
}
