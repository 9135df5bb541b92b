package repository

import (
	"context"
	"errors"

	"nanumi/internal/domain/user"
	"nanumi/pkg/apperrors"

	"gorm.io/gorm"
)

type PostgresBlacklistRepository struct {
	db *gorm.DB
}

func NewBlacklistRepository(db *gorm.DB) BlacklistRepository {
	return &PostgresBlacklistRepository{db: db}
}

// Create is idempotent: re-blocking an already blocked target is a no-op.
func (r *PostgresBlacklistRepository) Create(ctx context.Context, b *user.Blacklist) error {
	res := r.db.WithContext(ctx).Create(b)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil
		}
		return res.Error
	}
	return nil
}

func (r *PostgresBlacklistRepository) Delete(ctx context.Context, userID, targetID int64) error {
	res := r.db.WithContext(ctx).
		Delete(&user.Blacklist{}, "user_id = ? AND target_id = ?", userID, targetID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *PostgresBlacklistRepository) GetTargetIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&user.Blacklist{}).
		Where("user_id = ?", userID).
		Pluck("target_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresBlacklistRepository) GetBlockerIDs(ctx context.Context, targetID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&user.Blacklist{}).
		Where("target_id = ?", targetID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
