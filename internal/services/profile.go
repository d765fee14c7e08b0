package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/repos"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

type ProfileService interface {
	Save(ctx context.Context, profile *types.HealthProfile) (*types.HealthProfile, error)
	Get(ctx context.Context, userID string) (*types.HealthProfile, error)
	Delete(ctx context.Context, userID string) error
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.HealthProfileRepo
	historyRepo repos.DietHistoryRepo
	recRepo     repos.RecommendationRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.HealthProfileRepo, historyRepo repos.DietHistoryRepo, recRepo repos.RecommendationRepo) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{
		db:          db,
		log:         serviceLog,
		profileRepo: profileRepo,
		historyRepo: historyRepo,
		recRepo:     recRepo,
	}
}

// Save validates and upserts the profile keyed by user id. Validation
// failures never reach the store.
func (ps *profileService) Save(ctx context.Context, profile *types.HealthProfile) (*types.HealthProfile, error) {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := ps.profileRepo.Save(ctx, nil, profile); err != nil {
		ps.log.Error("Failed to save health profile", "user_id", profile.UserID, "error", err)
		return nil, err
	}
	ps.log.Info("Saved health profile", "user_id", profile.UserID)
	return profile, nil
}

func (ps *profileService) Get(ctx context.Context, userID string) (*types.HealthProfile, error) {
	return ps.profileRepo.GetByUserID(ctx, nil, userID)
}

// Delete removes the profile together with every diet-history and
// recommendation row owned by the user, in one transaction. No reader
// ever observes a partially cascaded delete.
func (ps *profileService) Delete(ctx context.Context, userID string) error {
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ps.historyRepo.DeleteByUserID(ctx, tx, userID); err != nil {
			return err
		}
		if err := ps.recRepo.DeleteByUserID(ctx, tx, userID); err != nil {
			return err
		}
		return ps.profileRepo.DeleteByUserID(ctx, tx, userID)
	})
	if err != nil {
		ps.log.Error("Failed to delete health profile", "user_id", userID, "error", err)
		return err
	}
	ps.log.Info("Deleted health profile and dependent rows", "user_id", userID)
	return nil
}
