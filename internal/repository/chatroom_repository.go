package repository

import (
	"context"
	"errors"

	"nanumi/internal/domain/chatroom"
	"nanumi/pkg/apperrors"

	"gorm.io/gorm"
)

type PostgresChatRoomRepository struct {
	db *gorm.DB
}

func NewChatRoomRepository(db *gorm.DB) ChatRoomRepository {
	return &PostgresChatRoomRepository{db: db}
}

// Create relies on the (opponent_id, product_id) unique index for duplicate
// detection, so two concurrent creates for the same pair cannot both commit.
func (r *PostgresChatRoomRepository) Create(ctx context.Context, room *chatroom.ChatRoom) error {
	res := r.db.WithContext(ctx).Create(room)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateChatRoom
		}
		return res.Error
	}
	return nil
}

func (r *PostgresChatRoomRepository) GetByID(ctx context.Context, id int64) (chatroom.ChatRoom, error) {
	var room chatroom.ChatRoom
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chatroom.ChatRoom{}, apperrors.ErrChatRoomNotFound
		}
		return chatroom.ChatRoom{}, err
	}
	return room, nil
}

func (r *PostgresChatRoomRepository) GetByOpponentAndProduct(ctx context.Context, opponentID, productID int64) (chatroom.ChatRoom, error) {
	var room chatroom.ChatRoom
	err := r.db.WithContext(ctx).
		Where("opponent_id = ? AND product_id = ?", opponentID, productID).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chatroom.ChatRoom{}, apperrors.ErrChatRoomNotFound
		}
		return chatroom.ChatRoom{}, err
	}
	return room, nil
}

// GetAllContainingUser returns rooms where the user sits on either side,
// in primary-key order.
func (r *PostgresChatRoomRepository) GetAllContainingUser(ctx context.Context, userID int64) ([]chatroom.ChatRoom, error) {
	var rooms []chatroom.ChatRoom
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR opponent_id = ?", userID, userID).
		Order("id").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *PostgresChatRoomRepository) Update(ctx context.Context, room chatroom.ChatRoom) error {
	res := r.db.WithContext(ctx).Save(&room)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrChatRoomNotFound
	}
	return nil
}
