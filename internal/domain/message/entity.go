package message

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Type string

const (
	TypeText   Type = "TEXT"
	TypeImage  Type = "IMAGE"
	TypeSystem Type = "SYSTEM"
)

// ChatMessage is one entry of the append-only chat history, stored in the
// MongoDB "chat" collection. This service only reads it; the messaging
// gateway owns the write path.
type ChatMessage struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Type     Type               `bson:"type"`
	RoomID   int64              `bson:"roomId"`
	Sender   int64              `bson:"sender"`
	Message  string             `bson:"message"`
	SendTime string             `bson:"sendTime"`
}

// SendTime is encoded as "2023-04-12 PM 02:31 45:123": date, half-day
// marker, 12-hour clock, then seconds and milliseconds separated by a colon.
// Go layouts cannot express a colon before the fractional part, so parsing
// rewrites that last separator to a dot first.
const sendTimeLayout = "2006-01-02 PM 03:04 05.000"

func ParseSendTime(s string) (time.Time, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 || i+1 >= len(s) {
		return time.Time{}, fmt.Errorf("malformed send time %q", s)
	}
	t, err := time.Parse(sendTimeLayout, s[:i]+"."+s[i+1:])
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed send time %q: %w", s, err)
	}
	return t, nil
}

// FormatSendTime renders t in the wire encoding. The reverse of
// ParseSendTime; used by seeds and tests, the live write path is external.
func FormatSendTime(t time.Time) string {
	s := t.Format(sendTimeLayout)
	i := strings.LastIndex(s, ".")
	return s[:i] + ":" + s[i+1:]
}
