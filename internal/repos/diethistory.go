package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartdiet/smartdiet-backend/internal/apperr"
	"github.com/smartdiet/smartdiet-backend/internal/logger"
	"github.com/smartdiet/smartdiet-backend/internal/types"
)

// HistoryFilter describes the optional conjunctive criteria of a history
// query. Dates are YYYY-MM-DD strings; string comparison in SQL matches
// chronological order for that layout.
type HistoryFilter struct {
	UserID    string
	StartDate *string
	EndDate   *string
	MealType  *string
	Limit     *int
	Offset    *int
}

// HistoryPatch carries the fields of a partial update; nil means "leave
// unchanged".
type HistoryPatch struct {
	Rating      *int
	Notes       *string
	WasPrepared *bool
}

type DietHistoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entry *types.DietHistory) error
	List(ctx context.Context, tx *gorm.DB, filter HistoryFilter) ([]*types.DietHistory, error)
	Count(ctx context.Context, tx *gorm.DB, filter HistoryFilter) (int64, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch HistoryPatch) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID string) error
}

type dietHistoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDietHistoryRepo(db *gorm.DB, baseLog *logger.Logger) DietHistoryRepo {
	repoLog := baseLog.With("repo", "DietHistoryRepo")
	return &dietHistoryRepo{db: db, log: repoLog}
}

// applyHistoryFilter is the single place filter predicates are built.
// Each predicate is appended together with its bound value, so List and
// Count can never disagree on parameter alignment.
func applyHistoryFilter(q *gorm.DB, f HistoryFilter) *gorm.DB {
	q = q.Where("user_id = ?", f.UserID)
	if f.StartDate != nil {
		q = q.Where("date_attempted >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date_attempted <= ?", *f.EndDate)
	}
	if f.MealType != nil {
		q = q.Where("meal_type = ?", *f.MealType)
	}
	return q
}

func (dr *dietHistoryRepo) Create(ctx context.Context, tx *gorm.DB, entry *types.DietHistory) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if err := transaction.WithContext(ctx).Create(entry).Error; err != nil {
		return apperr.Storage("store.LogDietEntry", err)
	}
	return nil
}

func (dr *dietHistoryRepo) List(ctx context.Context, tx *gorm.DB, filter HistoryFilter) ([]*types.DietHistory, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	q := applyHistoryFilter(transaction.WithContext(ctx).Model(&types.DietHistory{}), filter).
		Order("date_attempted DESC")
	if filter.Limit != nil {
		q = q.Limit(*filter.Limit)
	}
	if filter.Offset != nil {
		q = q.Offset(*filter.Offset)
	}

	var entries []*types.DietHistory
	if err := q.Find(&entries).Error; err != nil {
		return nil, apperr.Storage("store.GetDietHistory", err)
	}
	return entries, nil
}

func (dr *dietHistoryRepo) Count(ctx context.Context, tx *gorm.DB, filter HistoryFilter) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var count int64
	q := applyHistoryFilter(transaction.WithContext(ctx).Model(&types.DietHistory{}), filter)
	if err := q.Count(&count).Error; err != nil {
		return 0, apperr.Storage("store.GetDietHistoryCount", err)
	}
	return count, nil
}

// Update writes only the supplied fields and always refreshes updated_at.
// A patch with no fields set is a valid call: the row's updated_at still
// moves, and a missing id is still reported as not found.
func (dr *dietHistoryRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, patch HistoryPatch) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if patch.Rating != nil {
		updates["rating"] = *patch.Rating
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if patch.WasPrepared != nil {
		updates["was_prepared"] = *patch.WasPrepared
	}

	res := transaction.WithContext(ctx).
		Model(&types.DietHistory{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return apperr.Storage("store.UpdateDietEntry", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("store.UpdateDietEntry", "diet entry %s not found", id)
	}
	return nil
}

func (dr *dietHistoryRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.DietHistory{})
	if res.Error != nil {
		return apperr.Storage("store.DeleteDietEntry", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("store.DeleteDietEntry", "diet entry %s not found", id)
	}
	return nil
}

func (dr *dietHistoryRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID string) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.DietHistory{}).Error; err != nil {
		return apperr.Storage("store.DeleteDietHistoryByUser", err)
	}
	return nil
}
