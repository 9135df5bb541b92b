package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"nanumi/internal/domain/message"
	"nanumi/internal/domain/product"
	"nanumi/internal/domain/user"
	"nanumi/internal/notify"
	"nanumi/pkg/database"
	"nanumi/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, nickname string) user.User {
	t.Helper()
	u := user.User{
		Email:      nickname + "@nanumi.dev",
		Nickname:   nickname,
		ProfileURL: "https://cdn.nanumi.dev/profiles/" + nickname + ".png",
		AddressID:  1,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func createProduct(t *testing.T, db *gorm.DB, ownerID int64) product.Product {
	t.Helper()
	p := product.Product{
		Name:       "old chair",
		Content:    "still solid",
		UserID:     ownerID,
		CategoryID: 1,
		AddressID:  1,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func createMatch(t *testing.T, db *gorm.DB, productID, userID int64, isMatching bool) product.Match {
	t.Helper()
	m := product.Match{
		ProductID:  productID,
		UserID:     userID,
		IsMatching: isMatching,
		CreatedAt:  time.Now(),
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

// fakeMessageStore stands in for the MongoDB history; messages are kept
// newest-first per room, the order the real store returns.
type fakeMessageStore struct {
	byRoom map[int64][]message.ChatMessage
	err    error
}

func (f *fakeMessageStore) GetLatestByRoom(_ context.Context, roomID int64, limit int64) ([]message.ChatMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	msgs := f.byRoom[roomID]
	if int64(len(msgs)) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

type publishedEvent struct {
	Channel string
	Event   notify.Event
}

type fakeNotifier struct {
	events []publishedEvent
	err    error
}

func (f *fakeNotifier) Publish(_ context.Context, channel string, event notify.Event) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, publishedEvent{Channel: channel, Event: event})
	return nil
}

func testLogger() *logger.Logger {
	return logger.NewNop()
}
