package chatroom

import "time"

// ChatRoom represents the chat_rooms table. UserID is the requester who
// opened the room, OpponentID the matched applicant. The opponent display
// fields are a point-in-time snapshot taken at creation; the listing view
// resolves the live user instead.
//
// The unique index on (opponent_id, product_id) is what makes duplicate
// detection atomic under concurrent creates.
type ChatRoom struct {
	ID                 int64 `gorm:"primaryKey;autoIncrement"`
	UserID             int64 `gorm:"index"`
	OpponentID         int64 `gorm:"index:idx_chatroom_opponent_product,unique"`
	ProductID          int64 `gorm:"index:idx_chatroom_opponent_product,unique"`
	OpponentNickname   string
	OpponentProfileURL string
	Activate           bool
	CreatedAt          time.Time
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}
