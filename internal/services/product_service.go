package services

import (
	"context"
	"time"

	"nanumi/internal/domain/product"
	"nanumi/internal/repository"
	"nanumi/pkg/logger"
)

type CreateProductInput struct {
	Name       string
	Content    string
	CategoryID int64
	Images     []string
}

type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	users      repository.UserRepository
	log        *logger.Logger
}

func NewProductService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	users repository.UserRepository,
	log *logger.Logger,
) *ProductService {
	return &ProductService{products: products, categories: categories, users: users, log: log}
}

func (s *ProductService) Create(ctx context.Context, ownerID int64, in CreateProductInput) (product.Product, error) {
	if _, err := s.categories.GetByID(ctx, in.CategoryID); err != nil {
		return product.Product{}, err
	}
	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return product.Product{}, err
	}

	p := product.Product{
		Name:       in.Name,
		Content:    in.Content,
		IsClosed:   false,
		IsDeleted:  false,
		UserID:     owner.ID,
		CategoryID: in.CategoryID,
		AddressID:  owner.AddressID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	for _, url := range in.Images {
		p.Images = append(p.Images, product.ProductImage{ImageURL: url})
	}

	if err := s.products.Create(ctx, &p); err != nil {
		return product.Product{}, err
	}
	return p, nil
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (product.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id int64, in CreateProductInput) error {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.categories.GetByID(ctx, in.CategoryID); err != nil {
		return err
	}
	p.Name = in.Name
	p.Content = in.Content
	p.CategoryID = in.CategoryID
	p.UpdatedAt = time.Now()
	return s.products.Update(ctx, p)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.products.SoftDelete(ctx, id)
}

// ListNearby lists open products in the viewer's neighborhood, optionally
// narrowed to one category.
func (s *ProductService) ListNearby(ctx context.Context, viewerID int64, categoryID *int64) ([]product.Product, error) {
	viewer, err := s.users.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if categoryID == nil {
		return s.products.GetAllByAddress(ctx, viewer.AddressID)
	}
	if _, err := s.categories.GetByID(ctx, *categoryID); err != nil {
		return nil, err
	}
	return s.products.GetAllByAddressAndCategory(ctx, viewer.AddressID, *categoryID)
}

func (s *ProductService) GivingByUser(ctx context.Context, userID int64) ([]product.Product, error) {
	return s.products.GetGivingByUser(ctx, userID)
}

func (s *ProductService) GivenByUser(ctx context.Context, userID int64) ([]product.Product, error) {
	return s.products.GetGivenByUser(ctx, userID)
}

func (s *ProductService) MatchingByUser(ctx context.Context, userID int64) ([]product.Product, error) {
	return s.products.GetMatchingByUser(ctx, userID)
}

func (s *ProductService) ReceivedByUser(ctx context.Context, userID int64) ([]product.Product, error) {
	return s.products.GetReceivedByUser(ctx, userID)
}
