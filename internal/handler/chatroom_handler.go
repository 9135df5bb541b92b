package handler

import (
	"net/http"
	"strconv"

	"nanumi/internal/services"
	"nanumi/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

type ChatRoomHandler struct {
	rooms *services.ChatRoomService
}

func NewChatRoomHandler(rooms *services.ChatRoomService) *ChatRoomHandler {
	return &ChatRoomHandler{rooms: rooms}
}

func (h *ChatRoomHandler) Create(c *gin.Context) {
	var req httpdto.CreateChatRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid request", "INVALID_REQUEST"))
		return
	}

	ref, err := h.rooms.Create(c.Request.Context(), req.RequesterID, req.OpponentID, req.ProductID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, httpdto.NewSuccessResponse(httpdto.ChatRoomCreatedResponse{
		RoomID:    ref.RoomID,
		ProductID: ref.ProductID,
	}))
}

func (h *ChatRoomHandler) ListForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid user id", "INVALID_REQUEST"))
		return
	}

	items, err := h.rooms.ListForUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromChatRoomSummarySlice(items)))
}

func (h *ChatRoomHandler) History(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid room id", "INVALID_REQUEST"))
		return
	}

	msgs, err := h.rooms.History(c.Request.Context(), roomID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.FromChatMessageSlice(msgs)))
}

func (h *ChatRoomHandler) Report(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid room id", "INVALID_REQUEST"))
		return
	}

	reported, err := h.rooms.Report(c.Request.Context(), roomID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(httpdto.ReportResponse{Reported: reported}))
}
