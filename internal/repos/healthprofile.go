package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

type HealthProfileRepo interface {
	Save(ctx context.Context, tx *gorm.DB, profile *types.HealthProfile) error
	GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*types.HealthProfile, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID string) error
}

type healthProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthProfileRepo(db *gorm.DB, baseLog *logger.Logger) HealthProfileRepo {
	repoLog := baseLog.With("repo", "HealthProfileRepo")
	return &healthProfileRepo{db: db, log: repoLog}
}

// Save inserts or, when a row for the same user_id exists, overwrites every
// mutable column. created_at is deliberately absent from the update set so
// the first insert's value survives upserts.
func (hr *healthProfileRepo) Save(ctx context.Context, tx *gorm.DB, profile *types.HealthProfile) error {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"age", "gender", "weight", "height", "activity_level",
				"health_goals", "dietary_preferences", "dietary_restrictions",
				"allergies", "updated_at",
			}),
		}).
		Create(profile).Error
	if err != nil {
		return apperr.Storage("store.SaveProfile", err)
	}

	// On conflict the stored row keeps the original id and created_at;
	// reload so the caller sees the persisted identity, not the fresh one.
	var stored types.HealthProfile
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", profile.UserID).
		First(&stored).Error; err != nil {
		return apperr.Storage("store.SaveProfile", err)
	}
	profile.ID = stored.ID
	profile.CreatedAt = stored.CreatedAt
	profile.UpdatedAt = stored.UpdatedAt
	return nil
}

func (hr *healthProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID string) (*types.HealthProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	var profile types.HealthProfile
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage("store.GetProfile", err)
	}
	return &profile, nil
}

func (hr *healthProfileRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID string) error {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.HealthProfile{}).Error; err != nil {
		return apperr.Storage("store.DeleteProfile", err)
	}
	return nil
}
