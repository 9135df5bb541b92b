package repository

import (
	"context"
	"errors"

	"nanumi/internal/domain/product"
	"nanumi/pkg/apperrors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(ctx context.Context, p *product.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id int64) (product.Product, error) {
	var p product.Product
	err := r.db.WithContext(ctx).
		Preload("Matches").
		Preload("Images").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.Product{}, apperrors.ErrProductNotFound
		}
		return product.Product{}, err
	}
	return p, nil
}

func (r *PostgresProductRepository) Update(ctx context.Context, p product.Product) error {
	res := r.db.WithContext(ctx).Omit(clause.Associations).Save(&p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&product.Product{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) GetAllByAddress(ctx context.Context, addressID int64) ([]product.Product, error) {
	var products []product.Product
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("address_id = ? AND is_deleted = ?", addressID, false).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PostgresProductRepository) GetAllByAddressAndCategory(ctx context.Context, addressID, categoryID int64) ([]product.Product, error) {
	var products []product.Product
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("address_id = ? AND category_id = ? AND is_deleted = ?", addressID, categoryID, false).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetGivingByUser returns products the user listed that have not been
// handed over yet.
func (r *PostgresProductRepository) GetGivingByUser(ctx context.Context, userID int64) ([]product.Product, error) {
	var products []product.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ? AND is_matched = ?", userID, false, false).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetGivenByUser returns products the user listed that found a receiver.
func (r *PostgresProductRepository) GetGivenByUser(ctx context.Context, userID int64) ([]product.Product, error) {
	var products []product.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ? AND is_matched = ?", userID, false, true).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetMatchingByUser returns the user's open products that already have at
// least one application.
func (r *PostgresProductRepository) GetMatchingByUser(ctx context.Context, userID int64) ([]product.Product, error) {
	var products []product.Product
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ? AND is_matched = ?", userID, false, false).
		Where("EXISTS (SELECT 1 FROM matches WHERE matches.product_id = products.id)").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetReceivedByUser returns products the user received through a match that
// went to a chat room.
func (r *PostgresProductRepository) GetReceivedByUser(ctx context.Context, userID int64) ([]product.Product, error) {
	var products []product.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN matches ON matches.product_id = products.id").
		Where("matches.user_id = ? AND matches.is_matching = ?", userID, true).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
