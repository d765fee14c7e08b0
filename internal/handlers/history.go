package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
	"github.com/smartdiet/smartdiet-backend/internal/repos"
	"github.com/smartdiet/smartdiet-backend/internal/services"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

type HistoryHandler struct {
	historyService services.HistoryService
}

func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

type dietEntryRequest struct {
	UserID        string  `json:"user_id"`
	DietItemID    string  `json:"diet_item_id"`
	DateAttempted string  `json:"date_attempted"`
	Rating        *int    `json:"rating"`
	Notes         *string `json:"notes"`
	WasPrepared   bool    `json:"was_prepared"`
	MealType      string  `json:"meal_type"`
}

type updateDietEntryRequest struct {
	Rating      *int    `json:"rating"`
	Notes       *string `json:"notes"`
	WasPrepared *bool   `json:"was_prepared"`
}

func (hh *HistoryHandler) LogEntry(c *gin.Context) {
	var req dietEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	dietItemID, err := uuid.Parse(req.DietItemID)
	if err != nil {
		RespondAppError(c, apperr.Parsef("invalid diet item id %q: %v", req.DietItemID, err))
		return
	}

	entry := &types.DietHistory{
		UserID:        req.UserID,
		DietItemID:    dietItemID,
		DateAttempted: req.DateAttempted,
		Rating:        req.Rating,
		Notes:         req.Notes,
		WasPrepared:   req.WasPrepared,
		MealType:      req.MealType,
	}
	logged, err := hh.historyService.Log(c.Request.Context(), entry)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"entry": logged})
}

func (hh *HistoryHandler) ListHistory(c *gin.Context) {
	filter, err := historyFilterFromQuery(c)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	entries, err := hh.historyService.List(c.Request.Context(), filter)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"entries": entries})
}

func (hh *HistoryHandler) CountHistory(c *gin.Context) {
	filter, err := historyFilterFromQuery(c)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	// Pagination never applies to a count.
	filter.Limit = nil
	filter.Offset = nil
	count, err := hh.historyService.Count(c.Request.Context(), filter)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"count": count})
}

func (hh *HistoryHandler) UpdateEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondAppError(c, apperr.Parsef("invalid diet entry id %q: %v", c.Param("id"), err))
		return
	}
	var req updateDietEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	patch := repos.HistoryPatch{
		Rating:      req.Rating,
		Notes:       req.Notes,
		WasPrepared: req.WasPrepared,
	}
	if err := hh.historyService.Update(c.Request.Context(), id, patch); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (hh *HistoryHandler) DeleteEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondAppError(c, apperr.Parsef("invalid diet entry id %q: %v", c.Param("id"), err))
		return
	}
	if err := hh.historyService.Delete(c.Request.Context(), id); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func historyFilterFromQuery(c *gin.Context) (repos.HistoryFilter, error) {
	filter := repos.HistoryFilter{UserID: c.Param("userID")}
	if v, ok := c.GetQuery("start_date"); ok {
		filter.StartDate = &v
	}
	if v, ok := c.GetQuery("end_date"); ok {
		filter.EndDate = &v
	}
	if v, ok := c.GetQuery("meal_type"); ok {
		filter.MealType = &v
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		return filter, err
	}
	filter.Limit = limit
	offset, err := intQuery(c, "offset")
	if err != nil {
		return filter, err
	}
	filter.Offset = offset
	return filter, nil
}

func intQuery(c *gin.Context, key string) (*int, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.Parsef("query parameter %s must be an integer, got %q", key, raw)
	}
	if v < 0 {
		return nil, apperr.Parsef("query parameter %s must not be negative, got %d", key, v)
	}
	return &v, nil
}
