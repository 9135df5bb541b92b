package services

import (
	"context"
	"time"

	"nanumi/internal/domain/user"
	"nanumi/internal/repository"
)

type UserService struct {
	users     repository.UserRepository
	blacklist repository.BlacklistRepository
}

func NewUserService(users repository.UserRepository, blacklist repository.BlacklistRepository) *UserService {
	return &UserService{users: users, blacklist: blacklist}
}

// Block records a directed block from userID to targetID. Blocking twice
// is a no-op.
func (s *UserService) Block(ctx context.Context, userID, targetID int64) error {
	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.blacklist.Create(ctx, &user.Blacklist{
		UserID:    userID,
		TargetID:  targetID,
		CreatedAt: time.Now(),
	})
}

func (s *UserService) Unblock(ctx context.Context, userID, targetID int64) error {
	return s.blacklist.Delete(ctx, userID, targetID)
}
