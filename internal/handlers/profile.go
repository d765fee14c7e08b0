package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
	"github.com/smartdiet/smartdiet-backend/internal/services"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type healthProfileRequest struct {
	ID                  *string  `json:"id"`
	UserID              string   `json:"user_id"`
	Age                 int      `json:"age"`
	Gender              string   `json:"gender"`
	Weight              float64  `json:"weight"`
	Height              float64  `json:"height"`
	ActivityLevel       string   `json:"activity_level"`
	HealthGoals         []string `json:"health_goals"`
	DietaryPreferences  []string `json:"dietary_preferences"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Allergies           []string `json:"allergies"`
}

func (ph *ProfileHandler) SaveProfile(c *gin.Context) {
	var req healthProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	profile := &types.HealthProfile{
		UserID:              req.UserID,
		Age:                 req.Age,
		Gender:              req.Gender,
		Weight:              req.Weight,
		Height:              req.Height,
		ActivityLevel:       req.ActivityLevel,
		HealthGoals:         datatypes.JSONSlice[string](req.HealthGoals),
		DietaryPreferences:  datatypes.JSONSlice[string](req.DietaryPreferences),
		DietaryRestrictions: datatypes.JSONSlice[string](req.DietaryRestrictions),
		Allergies:           datatypes.JSONSlice[string](req.Allergies),
	}
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			RespondAppError(c, apperr.Parsef("invalid profile id %q: %v", *req.ID, err))
			return
		}
		profile.ID = id
	}

	saved, err := ph.profileService.Save(c.Request.Context(), profile)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"profile": saved})
}

// GetProfile returns a null profile for unknown users: absence is not an
// error here, the recommendation flow relies on it.
func (ph *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.Param("userID")
	profile, err := ph.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"profile": profile})
}

func (ph *ProfileHandler) DeleteProfile(c *gin.Context) {
	userID := c.Param("userID")
	if err := ph.profileService.Delete(c.Request.Context(), userID); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
