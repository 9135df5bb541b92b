package notify

import (
	"context"
	"fmt"
)

// Event is the wire envelope published on user channels.
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

const TypeChatRoom = "CHATROOM"

// ChatRoomPayload announces a freshly created room to one participant.
// OpponentID is the other side of the room from the recipient's view.
type ChatRoomPayload struct {
	OpponentID int64 `json:"opponentId"`
	RoomID     int64 `json:"roomId"`
}

type Publisher interface {
	Publish(ctx context.Context, channel string, event Event) error
}

// UserChannel addresses one user's notification stream.
func UserChannel(userID int64) string {
	return fmt.Sprintf("user/%d", userID)
}
