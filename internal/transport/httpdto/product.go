package httpdto

import (
	"time"

	"nanumi/internal/domain/product"
	"nanumi/internal/services"
)

type CreateProductRequest struct {
	UserID     int64    `json:"userId" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	Content    string   `json:"content"`
	CategoryID int64    `json:"categoryId" binding:"required"`
	Images     []string `json:"images"`
}

func (r CreateProductRequest) ToInput() services.CreateProductInput {
	return services.CreateProductInput{
		Name:       r.Name,
		Content:    r.Content,
		CategoryID: r.CategoryID,
		Images:     r.Images,
	}
}

type UpdateProductRequest struct {
	Name       string `json:"name" binding:"required"`
	Content    string `json:"content"`
	CategoryID int64  `json:"categoryId" binding:"required"`
}

func (r UpdateProductRequest) ToInput() services.CreateProductInput {
	return services.CreateProductInput{
		Name:       r.Name,
		Content:    r.Content,
		CategoryID: r.CategoryID,
	}
}

type ApplyRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}

type ApplyResponse struct {
	Accepted bool   `json:"accepted"`
	MatchID  *int64 `json:"matchId,omitempty"`
}

func FromMatchResult(r services.MatchResult) ApplyResponse {
	res := ApplyResponse{Accepted: r.Accepted}
	if r.Accepted {
		res.MatchID = &r.MatchID
	}
	return res
}

type ProductResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	CategoryID int64     `json:"categoryId"`
	Closed     bool      `json:"closed"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromProduct(p product.Product) ProductResponse {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.ImageURL)
	}
	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Content:    p.Content,
		CategoryID: p.CategoryID,
		Closed:     p.IsClosed,
		Images:     images,
		CreatedAt:  p.CreatedAt,
	}
}

func FromProductSlice(items []product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromProduct(p))
	}
	return out
}
