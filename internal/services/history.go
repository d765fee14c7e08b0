package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/repos"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

type HistoryService interface {
	Log(ctx context.Context, entry *types.DietHistory) (*types.DietHistory, error)
	List(ctx context.Context, filter repos.HistoryFilter) ([]*types.DietHistory, error)
	Count(ctx context.Context, filter repos.HistoryFilter) (int64, error)
	Update(ctx context.Context, id uuid.UUID, patch repos.HistoryPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type historyService struct {
	db          *gorm.DB
	log         *logger.Logger
	historyRepo repos.DietHistoryRepo
}

func NewHistoryService(db *gorm.DB, log *logger.Logger, historyRepo repos.DietHistoryRepo) HistoryService {
	serviceLog := log.With("service", "HistoryService")
	return &historyService{db: db, log: serviceLog, historyRepo: historyRepo}
}

func (hs *historyService) Log(ctx context.Context, entry *types.DietHistory) (*types.DietHistory, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := hs.historyRepo.Create(ctx, nil, entry); err != nil {
		hs.log.Error("Failed to log diet entry", "user_id", entry.UserID, "error", err)
		return nil, err
	}
	hs.log.Info("Logged diet entry", "user_id", entry.UserID, "meal_type", entry.MealType)
	return entry, nil
}

func (hs *historyService) List(ctx context.Context, filter repos.HistoryFilter) ([]*types.DietHistory, error) {
	if err := validateHistoryFilter(filter); err != nil {
		return nil, err
	}
	return hs.historyRepo.List(ctx, nil, filter)
}

func (hs *historyService) Count(ctx context.Context, filter repos.HistoryFilter) (int64, error) {
	if err := validateHistoryFilter(filter); err != nil {
		return 0, err
	}
	return hs.historyRepo.Count(ctx, nil, filter)
}

func (hs *historyService) Update(ctx context.Context, id uuid.UUID, patch repos.HistoryPatch) error {
	if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 5) {
		return apperr.Validationf("rating must be between 1 and 5, got %d", *patch.Rating)
	}
	return hs.historyRepo.Update(ctx, nil, id, patch)
}

func (hs *historyService) Delete(ctx context.Context, id uuid.UUID) error {
	return hs.historyRepo.Delete(ctx, nil, id)
}

func validateHistoryFilter(filter repos.HistoryFilter) error {
	if filter.UserID == "" {
		return apperr.Validationf("user id must not be empty")
	}
	if filter.StartDate != nil {
		if _, err := time.Parse(types.DateLayout, *filter.StartDate); err != nil {
			return apperr.Parsef("start date must be a %s date: %v", types.DateLayout, err)
		}
	}
	if filter.EndDate != nil {
		if _, err := time.Parse(types.DateLayout, *filter.EndDate); err != nil {
			return apperr.Parsef("end date must be a %s date: %v", types.DateLayout, err)
		}
	}
	if filter.MealType != nil && !types.IsValidMealType(*filter.MealType) {
		return apperr.Validationf("invalid meal type %q", *filter.MealType)
	}
	return nil
}
