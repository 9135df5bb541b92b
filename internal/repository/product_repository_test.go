package repository

import (
	"context"
	"testing"
	"time"

	"nanumi/internal/domain/product"
	"nanumi/pkg/apperrors"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProduct(t *testing.T, db *gorm.DB, ownerID int64, matched bool) product.Product {
	t.Helper()
	p := product.Product{
		Name:      "lamp",
		UserID:    ownerID,
		IsMatched: matched,
		AddressID: 1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestProductRepositorySoftDelete(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, 1, false)
	req.NoError(repo.SoftDelete(ctx, p.ID))

	_, err := repo.GetByID(ctx, p.ID)
	req.ErrorIs(err, apperrors.ErrProductNotFound)

	// Deleting twice reports not found, the row is already gone from the
	// repository's point of view.
	req.ErrorIs(repo.SoftDelete(ctx, p.ID), apperrors.ErrProductNotFound)
}

func TestProductRepositoryUserViews(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	const giver, receiver = int64(1), int64(2)

	giving := seedProduct(t, db, giver, false)
	given := seedProduct(t, db, giver, true)
	applied := seedProduct(t, db, giver, false)

	req.NoError(db.Create(&product.Match{ProductID: applied.ID, UserID: receiver, IsMatching: false, CreatedAt: time.Now()}).Error)
	req.NoError(db.Create(&product.Match{ProductID: given.ID, UserID: receiver, IsMatching: true, CreatedAt: time.Now()}).Error)

	got, err := repo.GetGivingByUser(ctx, giver)
	req.NoError(err)
	req.Len(got, 2)
	ids := []int64{got[0].ID, got[1].ID}
	req.Contains(ids, giving.ID)
	req.Contains(ids, applied.ID)

	got, err = repo.GetGivenByUser(ctx, giver)
	req.NoError(err)
	req.Len(got, 1)
	req.Equal(given.ID, got[0].ID)

	got, err = repo.GetMatchingByUser(ctx, giver)
	req.NoError(err)
	req.Len(got, 1)
	req.Equal(applied.ID, got[0].ID)

	got, err = repo.GetReceivedByUser(ctx, receiver)
	req.NoError(err)
	req.Len(got, 1)
	req.Equal(given.ID, got[0].ID)
}
