package repository

import (
	"context"
	"errors"

	"nanumi/internal/domain/product"
	"nanumi/pkg/apperrors"

	"gorm.io/gorm"
)

type PostgresMatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Create(ctx context.Context, m *product.Match) error {
	res := r.db.WithContext(ctx).Create(m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateMatch
		}
		return res.Error
	}
	return nil
}

func (r *PostgresMatchRepository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&product.Match{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresMatchRepository) GetByProductAndUser(ctx context.Context, productID, userID int64) (product.Match, error) {
	var m product.Match
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND user_id = ?", productID, userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.Match{}, apperrors.ErrMatchNotFound
		}
		return product.Match{}, err
	}
	return m, nil
}

// MarkMatching is idempotent; setting true on an already-matching row is
// not an error.
func (r *PostgresMatchRepository) MarkMatching(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&product.Match{}).
		Where("id = ?", id).
		Update("is_matching", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrMatchNotFound
	}
	return nil
}
