package repository

import (
	"context"

	"nanumi/internal/domain/chatroom"
	"nanumi/internal/domain/message"
	"nanumi/internal/domain/product"
	"nanumi/internal/domain/user"
)

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	GetByID(ctx context.Context, id int64) (product.Product, error)
	Update(ctx context.Context, p product.Product) error
	SoftDelete(ctx context.Context, id int64) error

	GetAllByAddress(ctx context.Context, addressID int64) ([]product.Product, error)
	GetAllByAddressAndCategory(ctx context.Context, addressID, categoryID int64) ([]product.Product, error)

	// User-centric views, mirroring the "my products" screens.
	GetGivingByUser(ctx context.Context, userID int64) ([]product.Product, error)
	GetGivenByUser(ctx context.Context, userID int64) ([]product.Product, error)
	GetMatchingByUser(ctx context.Context, userID int64) ([]product.Product, error)
	GetReceivedByUser(ctx context.Context, userID int64) ([]product.Product, error)
}

type MatchRepository interface {
	Create(ctx context.Context, m *product.Match) error
	CountByProduct(ctx context.Context, productID int64) (int64, error)
	GetByProductAndUser(ctx context.Context, productID, userID int64) (product.Match, error)
	MarkMatching(ctx context.Context, id int64) error
}

type ChatRoomRepository interface {
	Create(ctx context.Context, r *chatroom.ChatRoom) error
	GetByID(ctx context.Context, id int64) (chatroom.ChatRoom, error)
	GetByOpponentAndProduct(ctx context.Context, opponentID, productID int64) (chatroom.ChatRoom, error)
	GetAllContainingUser(ctx context.Context, userID int64) ([]chatroom.ChatRoom, error)
	Update(ctx context.Context, r chatroom.ChatRoom) error
}

type BlacklistRepository interface {
	Create(ctx context.Context, b *user.Blacklist) error
	Delete(ctx context.Context, userID, targetID int64) error
	GetTargetIDs(ctx context.Context, userID int64) ([]int64, error)
	GetBlockerIDs(ctx context.Context, targetID int64) ([]int64, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (product.Category, error)
}

// MessageRepository is the read-side boundary to the message store. The
// write path belongs to the messaging gateway, not this service.
type MessageRepository interface {
	GetLatestByRoom(ctx context.Context, roomID int64, limit int64) ([]message.ChatMessage, error)
}
