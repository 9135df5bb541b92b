package httpdto

import (
	"time"

	"nanumi/internal/domain/message"
	"nanumi/internal/services"
)

type CreateChatRoomRequest struct {
	RequesterID int64 `json:"requesterId" binding:"required"`
	OpponentID  int64 `json:"opponentId" binding:"required"`
	ProductID   int64 `json:"productId" binding:"required"`
}

type ChatRoomCreatedResponse struct {
	RoomID    int64 `json:"roomId"`
	ProductID int64 `json:"productId"`
}

type ChatRoomSummaryResponse struct {
	RoomID             int64      `json:"roomId"`
	ProductID          int64      `json:"productId"`
	OpponentID         int64      `json:"opponentId"`
	OpponentNickname   string     `json:"opponentNickname"`
	OpponentProfileURL string     `json:"opponentProfileUrl"`
	Blocked            bool       `json:"blocked"`
	LastMessage        string     `json:"lastMessage,omitempty"`
	LastMessageTime    *time.Time `json:"lastMessageTime,omitempty"`
}

func FromChatRoomSummary(s services.ChatRoomSummary) ChatRoomSummaryResponse {
	return ChatRoomSummaryResponse{
		RoomID:             s.RoomID,
		ProductID:          s.ProductID,
		OpponentID:         s.OpponentID,
		OpponentNickname:   s.OpponentNickname,
		OpponentProfileURL: s.OpponentProfileURL,
		Blocked:            s.Blocked,
		LastMessage:        s.LastMessage,
		LastMessageTime:    s.LastMessageTime,
	}
}

func FromChatRoomSummarySlice(items []services.ChatRoomSummary) []ChatRoomSummaryResponse {
	out := make([]ChatRoomSummaryResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromChatRoomSummary(s))
	}
	return out
}

type ChatMessageResponse struct {
	Type     string `json:"type"`
	Sender   int64  `json:"sender"`
	Message  string `json:"message"`
	SendTime string `json:"sendTime"`
}

func FromChatMessageSlice(items []message.ChatMessage) []ChatMessageResponse {
	out := make([]ChatMessageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ChatMessageResponse{
			Type:     string(m.Type),
			Sender:   m.Sender,
			Message:  m.Message,
			SendTime: m.SendTime,
		})
	}
	return out
}

type ReportResponse struct {
	Reported bool `json:"reported"`
}

type BlockRequest struct {
	TargetID int64 `json:"targetId" binding:"required"`
}
