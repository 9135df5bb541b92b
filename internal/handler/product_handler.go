package handler

import (
	"net/http"
	"strconv"

	"nanumi/internal/services"
	"nanumi/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products *services.ProductService
	matches  *services.MatchService
}

func NewProductHandler(products *services.ProductService, matches *services.MatchService) *ProductHandler {
	return &ProductHandler{products: products, matches: matches}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req httpdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	p, err := h.products.Create(c.Request.Context(), req.UserID, req.ToInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(httpdto.FromProduct(p)))
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid product id", "INVALID_REQUEST"))
		return
	}

	p, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromProduct(p)))
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid product id", "INVALID_REQUEST"))
		return
	}
	var req httpdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	if err := h.products.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse("updated"))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid product id", "INVALID_REQUEST"))
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse("deleted"))
}

// Apply handles an application to receive the product.
func (h *ProductHandler) Apply(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid product id", "INVALID_REQUEST"))
		return
	}
	var req httpdto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	result, err := h.matches.Apply(c.Request.Context(), productID, req.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromMatchResult(result)))
}

func (h *ProductHandler) ListNearby(c *gin.Context) {
	viewerID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid user id", "INVALID_REQUEST"))
		return
	}

	var categoryID *int64
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid category id", "INVALID_REQUEST"))
			return
		}
		categoryID = &id
	}

	items, err := h.products.ListNearby(c.Request.Context(), viewerID, categoryID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromProductSlice(items)))
}

// ListByUser serves the "my products" screens; view selects which one.
func (h *ProductHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid user id", "INVALID_REQUEST"))
		return
	}

	ctx := c.Request.Context()
	var items []httpdto.ProductResponse
	switch view := c.DefaultQuery("view", "giving"); view {
	case "giving":
		list, err := h.products.GivingByUser(ctx, userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		items = httpdto.FromProductSlice(list)
	case "given":
		list, err := h.products.GivenByUser(ctx, userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		items = httpdto.FromProductSlice(list)
	case "matching":
		list, err := h.products.MatchingByUser(ctx, userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		items = httpdto.FromProductSlice(list)
	case "received":
		list, err := h.products.ReceivedByUser(ctx, userID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		items = httpdto.FromProductSlice(list)
	default:
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("unknown view", "INVALID_REQUEST"))
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(items))
}
