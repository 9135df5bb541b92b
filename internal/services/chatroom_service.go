package services

import (
	"context"
	"errors"
	"time"

	"nanumi/internal/domain/chatroom"
	"nanumi/internal/domain/message"
	"nanumi/internal/notify"
	"nanumi/internal/repository"
	"nanumi/pkg/apperrors"
	"nanumi/pkg/logger"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// historyLimit is how many messages the room history endpoint returns.
const historyLimit = 20

type ChatRoomRef struct {
	RoomID    int64
	ProductID int64
}

type ChatRoomSummary struct {
	RoomID             int64
	ProductID          int64
	OpponentID         int64
	OpponentNickname   string
	OpponentProfileURL string
	Blocked            bool
	LastMessage        string
	LastMessageTime    *time.Time
}

type ChatRoomService struct {
	db        *gorm.DB
	rooms     repository.ChatRoomRepository
	users     repository.UserRepository
	blacklist repository.BlacklistRepository
	messages  repository.MessageRepository
	notifier  notify.Publisher
	log       *logger.Logger
}

func NewChatRoomService(
	db *gorm.DB,
	rooms repository.ChatRoomRepository,
	users repository.UserRepository,
	blacklist repository.BlacklistRepository,
	messages repository.MessageRepository,
	notifier notify.Publisher,
	log *logger.Logger,
) *ChatRoomService {
	return &ChatRoomService{
		db:        db,
		rooms:     rooms,
		users:     users,
		blacklist: blacklist,
		messages:  messages,
		notifier:  notifier,
		log:       log,
	}
}

// Create opens a chat room between the requester and a matched applicant
// for one product. The match flag update and the room insert commit in one
// transaction; duplicate rooms are rejected through the unique
// (opponent, product) key. Creation is not idempotent: on
// ErrDuplicateChatRoom the caller should fetch the existing room rather
// than retry.
func (s *ChatRoomService) Create(ctx context.Context, requesterID, opponentID, productID int64) (ChatRoomRef, error) {
	var room chatroom.ChatRoom
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		matches := repository.NewMatchRepository(tx)
		rooms := repository.NewChatRoomRepository(tx)
		users := repository.NewUserRepository(tx)

		m, err := matches.GetByProductAndUser(ctx, productID, opponentID)
		if err != nil {
			return err
		}
		if err := matches.MarkMatching(ctx, m.ID); err != nil {
			return err
		}

		opponent, err := users.GetByID(ctx, opponentID)
		if err != nil {
			return err
		}

		room = chatroom.ChatRoom{
			UserID:             requesterID,
			OpponentID:         opponentID,
			ProductID:          productID,
			OpponentNickname:   opponent.Nickname,
			OpponentProfileURL: opponent.ProfileURL,
			Activate:           true,
			CreatedAt:          time.Now(),
		}
		return rooms.Create(ctx, &room)
	})
	if err != nil {
		return ChatRoomRef{}, err
	}

	// The room is committed; a lost notification must not undo it.
	s.announce(ctx, requesterID, notify.ChatRoomPayload{OpponentID: opponentID, RoomID: room.ID})
	s.announce(ctx, opponentID, notify.ChatRoomPayload{OpponentID: requesterID, RoomID: room.ID})

	return ChatRoomRef{RoomID: room.ID, ProductID: productID}, nil
}

func (s *ChatRoomService) announce(ctx context.Context, userID int64, payload notify.ChatRoomPayload) {
	event := notify.Event{
		Type:      notify.TypeChatRoom,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}
	if err := s.notifier.Publish(ctx, notify.UserChannel(userID), event); err != nil {
		s.log.Errorf("failed to notify user %d of room %d: %v", userID, payload.RoomID, err)
	}
}

// ListForUser builds the "my chat rooms" view: for every room the user sits
// in, the live opponent identity, the symmetric blocked flag and the latest
// message. Rooms whose opponent no longer resolves are skipped; a room with
// an unreadable history degrades to no last message instead of failing the
// listing.
func (s *ChatRoomService) ListForUser(ctx context.Context, userID int64) ([]ChatRoomSummary, error) {
	rooms, err := s.rooms.GetAllContainingUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	targets, err := s.blacklist.GetTargetIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	blockers, err := s.blacklist.GetBlockerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	blocked := lo.Union(targets, blockers)

	summaries := make([]ChatRoomSummary, 0, len(rooms))
	for _, room := range rooms {
		opponentID := room.OpponentID
		if opponentID == userID {
			opponentID = room.UserID
		}

		opponent, err := s.users.GetByID(ctx, opponentID)
		if errors.Is(err, apperrors.ErrUserNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		summary := ChatRoomSummary{
			RoomID:             room.ID,
			ProductID:          room.ProductID,
			OpponentID:         opponentID,
			OpponentNickname:   opponent.Nickname,
			OpponentProfileURL: opponent.ProfileURL,
			Blocked:            lo.Contains(blocked, opponentID),
		}

		msgs, err := s.messages.GetLatestByRoom(ctx, room.ID, 1)
		if err != nil {
			s.log.Warnf("failed to load last message for room %d: %v", room.ID, err)
		} else if len(msgs) > 0 {
			if t, err := message.ParseSendTime(msgs[0].SendTime); err != nil {
				s.log.Warnf("room %d: %v", room.ID, err)
			} else {
				summary.LastMessage = msgs[0].Message
				summary.LastMessageTime = &t
			}
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// History returns the most recent messages of a room, newest first.
func (s *ChatRoomService) History(ctx context.Context, roomID int64) ([]message.ChatMessage, error) {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.messages.GetLatestByRoom(ctx, roomID, historyLimit)
}

// Report disables a room. Reporting an unknown room is not an error, it
// just reports nothing. The transition is one-way; no un-report exists.
func (s *ChatRoomService) Report(ctx context.Context, roomID int64) (bool, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if errors.Is(err, apperrors.ErrChatRoomNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	room.Activate = false
	if err := s.rooms.Update(ctx, room); err != nil {
		return false, err
	}
	return true, nil
}
