package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
)

type HealthProfile struct {
	ID                  uuid.UUID                   `gorm:"type:text;primaryKey;column:id" json:"id"`
	UserID              string                      `gorm:"uniqueIndex;not null;column:user_id" json:"user_id"`
	Age                 int                         `gorm:"not null;column:age" json:"age"`
	Gender              string                      `gorm:"not null;column:gender" json:"gender"`
	Weight              float64                     `gorm:"not null;column:weight" json:"weight"`
	Height              float64                     `gorm:"not null;column:height" json:"height"`
	ActivityLevel       string                      `gorm:"not null;column:activity_level" json:"activity_level"`
	HealthGoals         datatypes.JSONSlice[string] `gorm:"not null;column:health_goals" json:"health_goals"`
	DietaryPreferences  datatypes.JSONSlice[string] `gorm:"not null;column:dietary_preferences" json:"dietary_preferences"`
	DietaryRestrictions datatypes.JSONSlice[string] `gorm:"not null;column:dietary_restrictions" json:"dietary_restrictions"`
	Allergies           datatypes.JSONSlice[string] `gorm:"not null;column:allergies" json:"allergies"`
	CreatedAt           time.Time                   `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt           time.Time                   `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (HealthProfile) TableName() string {
	return "health_profiles"
}

func NewHealthProfile(userID string) *HealthProfile {
	now := time.Now().UTC()
	return &HealthProfile{
		ID:                  uuid.New(),
		UserID:              userID,
		Gender:              "prefer_not_to_say",
		ActivityLevel:       ActivityModerate,
		HealthGoals:         datatypes.JSONSlice[string]{},
		DietaryPreferences:  datatypes.JSONSlice[string]{},
		DietaryRestrictions: datatypes.JSONSlice[string]{},
		Allergies:           datatypes.JSONSlice[string]{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func (p *HealthProfile) Validate() error {
	if p.UserID == "" {
		return apperr.Validationf("user id must not be empty")
	}
	if p.Age < 18 || p.Age > 120 {
		return apperr.Validationf("age must be between 18 and 120, got %d", p.Age)
	}
	if p.Weight <= 0 {
		return apperr.Validationf("weight must be positive, got %v", p.Weight)
	}
	if p.Height <= 0 {
		return apperr.Validationf("height must be positive, got %v", p.Height)
	}
	if _, ok := validGenders[p.Gender]; !ok {
		return apperr.Validationf("invalid gender %q", p.Gender)
	}
	if _, ok := validActivityLevels[p.ActivityLevel]; !ok {
		return apperr.Validationf("invalid activity level %q", p.ActivityLevel)
	}

	// A tag the user prefers cannot simultaneously be one they avoid.
	prefs := make(map[string]struct{}, len(p.DietaryPreferences))
	for _, pref := range p.DietaryPreferences {
		prefs[pref] = struct{}{}
	}
	for _, restriction := range p.DietaryRestrictions {
		if _, ok := prefs[restriction]; ok {
			return apperr.Validationf("dietary restriction %q cannot be in preferences", restriction)
		}
	}
	for _, allergy := range p.Allergies {
		if _, ok := prefs[allergy]; ok {
			return apperr.Validationf("allergy %q cannot be in preferences", allergy)
		}
	}
	return nil
}
