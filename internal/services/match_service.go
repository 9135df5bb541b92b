package services

import (
	"context"
	"errors"
	"time"

	"nanumi/internal/domain/product"
	"nanumi/internal/repository"
	"nanumi/pkg/apperrors"
	"nanumi/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// matchCapacity is the fixed number of applications a product accepts
// before it auto-closes. A business rule, not configuration.
const matchCapacity = 3

type MatchResult struct {
	Accepted bool
	MatchID  int64
}

type MatchService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMatchService(db *gorm.DB, log *logger.Logger) *MatchService {
	return &MatchService{db: db, log: log}
}

// Apply registers applicantID for the product. The count-then-write runs in
// one transaction with the product row locked, so two concurrent applicants
// cannot both take the last slot. Exactly one write happens per call:
// either the new match row or the closing update, never both.
func (s *MatchService) Apply(ctx context.Context, productID, applicantID int64) (MatchResult, error) {
	var result MatchResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p product.Product
		if err := forUpdate(tx).
			Where("id = ? AND is_deleted = ?", productID, false).
			First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProductNotFound
			}
			return err
		}

		matches := repository.NewMatchRepository(tx)
		count, err := matches.CountByProduct(ctx, productID)
		if err != nil {
			return err
		}

		if count >= matchCapacity {
			if err := tx.Model(&product.Product{}).
				Where("id = ?", productID).
				Update("is_closed", true).Error; err != nil {
				return err
			}
			result = MatchResult{Accepted: false}
			return nil
		}

		m := product.Match{
			ProductID:  productID,
			UserID:     applicantID,
			IsMatching: false,
			CreatedAt:  time.Now(),
		}
		if err := matches.Create(ctx, &m); err != nil {
			return err
		}
		result = MatchResult{Accepted: true, MatchID: m.ID}
		return nil
	})
	if err != nil {
		return MatchResult{}, err
	}

	if !result.Accepted {
		s.log.Infof("product %d reached capacity, closed", productID)
	}
	return result, nil
}

// forUpdate row-locks the selected rows. SQLite serializes writers on its
// own and rejects the FOR UPDATE syntax, so the clause is postgres-only.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
