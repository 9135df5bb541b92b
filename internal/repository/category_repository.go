package repository

import (
	"context"
	"errors"

	"nanumi/internal/domain/product"
	"nanumi/pkg/apperrors"

	"gorm.io/gorm"
)

type PostgresCategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id int64) (product.Category, error) {
	var c product.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.Category{}, apperrors.ErrCategoryNotFound
		}
		return product.Category{}, err
	}
	return c, nil
}
