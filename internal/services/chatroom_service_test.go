package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"nanumi/internal/domain/chatroom"
	"nanumi/internal/domain/message"
	"nanumi/internal/domain/product"
	"nanumi/internal/domain/user"
	"nanumi/internal/notify"
	"nanumi/internal/repository"
	"nanumi/pkg/apperrors"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newChatRoomService(db *gorm.DB, msgs *fakeMessageStore, notifier *fakeNotifier) *ChatRoomService {
	if msgs == nil {
		msgs = &fakeMessageStore{byRoom: map[int64][]message.ChatMessage{}}
	}
	if notifier == nil {
		notifier = &fakeNotifier{}
	}
	return NewChatRoomService(
		db,
		repository.NewChatRoomRepository(db),
		repository.NewUserRepository(db),
		repository.NewBlacklistRepository(db),
		msgs,
		notifier,
		testLogger(),
	)
}

func TestChatRoomServiceCreate(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := newChatRoomService(db, nil, notifier)
	ctx := context.Background()

	giver := createUser(t, db, "giver")
	applicant := createUser(t, db, "applicant")
	p := createProduct(t, db, giver.ID)
	m := createMatch(t, db, p.ID, applicant.ID, false)

	ref, err := svc.Create(ctx, giver.ID, applicant.ID, p.ID)
	req.NoError(err)
	req.NotZero(ref.RoomID)
	req.Equal(p.ID, ref.ProductID)

	var room chatroom.ChatRoom
	req.NoError(db.First(&room, ref.RoomID).Error)
	req.Equal(giver.ID, room.UserID)
	req.Equal(applicant.ID, room.OpponentID)
	req.Equal(applicant.Nickname, room.OpponentNickname)
	req.True(room.Activate)

	var updated product.Match
	req.NoError(db.First(&updated, m.ID).Error)
	req.True(updated.IsMatching)

	// One notification per participant, each naming the other side.
	req.Len(notifier.events, 2)
	req.Equal(notify.UserChannel(giver.ID), notifier.events[0].Channel)
	req.Equal(notify.UserChannel(applicant.ID), notifier.events[1].Channel)
	for i, opponentID := range []int64{applicant.ID, giver.ID} {
		req.Equal(notify.TypeChatRoom, notifier.events[i].Event.Type)
		payload, ok := notifier.events[i].Event.Payload.(notify.ChatRoomPayload)
		req.True(ok)
		req.Equal(opponentID, payload.OpponentID)
		req.Equal(ref.RoomID, payload.RoomID)
	}
}

func TestChatRoomServiceCreate_Duplicate(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	svc := newChatRoomService(db, nil, nil)
	ctx := context.Background()

	giver := createUser(t, db, "giver")
	applicant := createUser(t, db, "applicant")
	p := createProduct(t, db, giver.ID)
	createMatch(t, db, p.ID, applicant.ID, false)

	_, err := svc.Create(ctx, giver.ID, applicant.ID, p.ID)
	req.NoError(err)

	_, err = svc.Create(ctx, giver.ID, applicant.ID, p.ID)
	req.ErrorIs(err, apperrors.ErrDuplicateChatRoom)

	var count int64
	req.NoError(db.Model(&chatroom.ChatRoom{}).Count(&count).Error)
	req.EqualValues(1, count)
}

func TestChatRoomServiceCreate_NoMatch(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	notifier := &fakeNotifier{}
	svc := newChatRoomService(db, nil, notifier)

	giver := createUser(t, db, "giver")
	stranger := createUser(t, db, "stranger")
	p := createProduct(t, db, giver.ID)

	_, err := svc.Create(context.Background(), giver.ID, stranger.ID, p.ID)
	req.ErrorIs(err, apperrors.ErrMatchNotFound)
	req.Empty(notifier.events)
}

func TestChatRoomServiceCreate_MatchAlreadyMatching(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	svc := newChatRoomService(db, nil, nil)

	giver := createUser(t, db, "giver")
	applicant := createUser(t, db, "applicant")
	p := createProduct(t, db, giver.ID)
	m := createMatch(t, db, p.ID, applicant.ID, true)

	_, err := svc.Create(context.Background(), giver.ID, applicant.ID, p.ID)
	req.NoError(err)

	var after product.Match
	req.NoError(db.First(&after, m.ID).Error)
	req.True(after.IsMatching)
}

func TestChatRoomServiceCreate_NotifyFailureIsSwallowed(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	notifier := &fakeNotifier{err: errors.New("redis down")}
	svc := newChatRoomService(db, nil, notifier)

	giver := createUser(t, db, "giver")
	applicant := createUser(t, db, "applicant")
	p := createProduct(t, db, giver.ID)
	createMatch(t, db, p.ID, applicant.ID, false)

	ref, err := svc.Create(context.Background(), giver.ID, applicant.ID, p.ID)
	req.NoError(err)

	// The room committed even though no notification went out.
	var room chatroom.ChatRoom
	req.NoError(db.First(&room, ref.RoomID).Error)
}

func TestChatRoomServiceListForUser(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	msgs := &fakeMessageStore{byRoom: map[int64][]message.ChatMessage{}}
	svc := newChatRoomService(db, msgs, nil)
	ctx := context.Background()

	me := createUser(t, db, "me")
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	p1 := createProduct(t, db, me.ID)
	p2 := createProduct(t, db, bob.ID)

	// Room opened by me towards alice, and one opened by bob towards me.
	roomWithAlice := chatroom.ChatRoom{
		UserID: me.ID, OpponentID: alice.ID, ProductID: p1.ID,
		Activate: true, CreatedAt: time.Now(),
	}
	req.NoError(db.Create(&roomWithAlice).Error)
	roomWithBob := chatroom.ChatRoom{
		UserID: bob.ID, OpponentID: me.ID, ProductID: p2.ID,
		Activate: true, CreatedAt: time.Now(),
	}
	req.NoError(db.Create(&roomWithBob).Error)

	msgs.byRoom[roomWithAlice.ID] = []message.ChatMessage{
		{Type: message.TypeText, RoomID: roomWithAlice.ID, Sender: alice.ID,
			Message: "still available?", SendTime: "2023-04-12 PM 02:31 45:123"},
		{Type: message.TypeText, RoomID: roomWithAlice.ID, Sender: me.ID,
			Message: "hello", SendTime: "2023-04-12 PM 02:30 10:000"},
	}

	summaries, err := svc.ListForUser(ctx, me.ID)
	req.NoError(err)
	req.Len(summaries, 2)

	withAlice := summaries[0]
	req.Equal(roomWithAlice.ID, withAlice.RoomID)
	req.Equal(alice.ID, withAlice.OpponentID)
	req.Equal("alice", withAlice.OpponentNickname)
	req.Equal("still available?", withAlice.LastMessage)
	req.NotNil(withAlice.LastMessageTime)
	req.Equal(
		time.Date(2023, 4, 12, 14, 31, 45, 123_000_000, time.UTC),
		withAlice.LastMessageTime.UTC(),
	)

	// The second room sits on the opposite side of the pair and has no
	// history yet.
	withBob := summaries[1]
	req.Equal(bob.ID, withBob.OpponentID)
	req.Empty(withBob.LastMessage)
	req.Nil(withBob.LastMessageTime)
}

func TestChatRoomServiceListForUser_SkipsUnresolvedOpponent(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	svc := newChatRoomService(db, nil, nil)

	me := createUser(t, db, "me")
	ghost := createUser(t, db, "ghost")
	alice := createUser(t, db, "alice")
	p := createProduct(t, db, me.ID)
	p2 := createProduct(t, db, me.ID)

	room1 := chatroom.ChatRoom{UserID: me.ID, OpponentID: ghost.ID, ProductID: p.ID, Activate: true, CreatedAt: time.Now()}
	req.NoError(db.Create(&room1).Error)
	room2 := chatroom.ChatRoom{UserID: me.ID, OpponentID: alice.ID, ProductID: p2.ID, Activate: true, CreatedAt: time.Now()}
	req.NoError(db.Create(&room2).Error)

	req.NoError(db.Model(&user.User{}).Where("id = ?", ghost.ID).Update("is_deleted", true).Error)

	summaries, err := svc.ListForUser(context.Background(), me.ID)
	req.NoError(err)
	req.Len(summaries, 1)
	req.Equal(alice.ID, summaries[0].OpponentID)
}

func TestChatRoomServiceListForUser_BlockedEitherDirection(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	svc := newChatRoomService(db, nil, nil)
	ctx := context.Background()

	me := createUser(t, db, "me")
	blockedByMe := createUser(t, db, "blockedByMe")
	blocksMe := createUser(t, db, "blocksMe")
	neutral := createUser(t, db, "neutral")

	for _, opponent := range []user.User{blockedByMe, blocksMe, neutral} {
		p := createProduct(t, db, me.ID)
		room := chatroom.ChatRoom{UserID: me.ID, OpponentID: opponent.ID, ProductID: p.ID, Activate: true, CreatedAt: time.Now()}
		req.NoError(db.Create(&room).Error)
	}

	req.NoError(db.Create(&user.Blacklist{UserID: me.ID, TargetID: blockedByMe.ID, CreatedAt: time.Now()}).Error)
	req.NoError(db.Create(&user.Blacklist{UserID: blocksMe.ID, TargetID: me.ID, CreatedAt: time.Now()}).Error)

	summaries, err := svc.ListForUser(ctx, me.ID)
	req.NoError(err)
	req.Len(summaries, 3)

	byOpponent := map[int64]bool{}
	for _, s := range summaries {
		byOpponent[s.OpponentID] = s.Blocked
	}
	req.True(byOpponent[blockedByMe.ID])
	req.True(byOpponent[blocksMe.ID])
	req.False(byOpponent[neutral.ID])
}

func TestChatRoomServiceListForUser_MalformedSendTime(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	msgs := &fakeMessageStore{byRoom: map[int64][]message.ChatMessage{}}
	svc := newChatRoomService(db, msgs, nil)

	me := createUser(t, db, "me")
	alice := createUser(t, db, "alice")
	p := createProduct(t, db, me.ID)
	room := chatroom.ChatRoom{UserID: me.ID, OpponentID: alice.ID, ProductID: p.ID, Activate: true, CreatedAt: time.Now()}
	req.NoError(db.Create(&room).Error)

	msgs.byRoom[room.ID] = []message.ChatMessage{
		{Type: message.TypeText, RoomID: room.ID, Sender: alice.ID, Message: "hi", SendTime: "not a timestamp"},
	}

	// The room still lists; only the last-message fields are dropped.
	summaries, err := svc.ListForUser(context.Background(), me.ID)
	req.NoError(err)
	req.Len(summaries, 1)
	req.Empty(summaries[0].LastMessage)
	req.Nil(summaries[0].LastMessageTime)
}

func TestChatRoomServiceReport(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	svc := newChatRoomService(db, nil, nil)
	ctx := context.Background()

	reported, err := svc.Report(ctx, 5)
	req.NoError(err)
	req.False(reported)

	me := createUser(t, db, "me")
	alice := createUser(t, db, "alice")
	p := createProduct(t, db, me.ID)
	room := chatroom.ChatRoom{UserID: me.ID, OpponentID: alice.ID, ProductID: p.ID, Activate: true, CreatedAt: time.Now()}
	req.NoError(db.Create(&room).Error)

	reported, err = svc.Report(ctx, room.ID)
	req.NoError(err)
	req.True(reported)

	var after chatroom.ChatRoom
	req.NoError(db.First(&after, room.ID).Error)
	req.False(after.Activate)
}

func TestChatRoomServiceHistory(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	msgs := &fakeMessageStore{byRoom: map[int64][]message.ChatMessage{}}
	svc := newChatRoomService(db, msgs, nil)
	ctx := context.Background()

	_, err := svc.History(ctx, 42)
	req.ErrorIs(err, apperrors.ErrChatRoomNotFound)

	me := createUser(t, db, "me")
	alice := createUser(t, db, "alice")
	p := createProduct(t, db, me.ID)
	room := chatroom.ChatRoom{UserID: me.ID, OpponentID: alice.ID, ProductID: p.ID, Activate: true, CreatedAt: time.Now()}
	req.NoError(db.Create(&room).Error)

	for i := 0; i < 25; i++ {
		msgs.byRoom[room.ID] = append(msgs.byRoom[room.ID], message.ChatMessage{
			Type: message.TypeText, RoomID: room.ID, Sender: alice.ID, Message: "m",
		})
	}

	history, err := svc.History(ctx, room.ID)
	req.NoError(err)
	req.Len(history, 20)
}
