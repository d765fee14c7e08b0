package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
	"github.com/smartdiet/smartdiet-backend/internal/services"
)

type RecommendationHandler struct {
	recService services.RecommendationService
}

func NewRecommendationHandler(recService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recService: recService}
}

func (rh *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID := c.Param("userID")
	recommendations, err := rh.recService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"recommendations": recommendations})
}

func (rh *RecommendationHandler) GetRecommendationByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondAppError(c, apperr.Parsef("invalid recommendation id %q: %v", c.Param("id"), err))
		return
	}
	rec, err := rh.recService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	if rec == nil {
		RespondAppError(c, apperr.NotFoundf("handlers.GetRecommendationByID", "recommendation %s not found", id))
		return
	}
	RespondOK(c, gin.H{"recommendation": rec})
}
