package apperrors

import "errors"

// Expected business outcomes. Repositories translate raw store errors into
// these so services and handlers can branch without knowing the store.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrMatchNotFound    = errors.New("match not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAddressNotFound  = errors.New("address not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrChatRoomNotFound = errors.New("chat room not found")

	ErrDuplicateChatRoom = errors.New("chat room already exists")
	ErrDuplicateMatch    = errors.New("match already exists")

	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// IsNotFound reports whether err is one of the per-entity not-found values.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrMatchNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrAddressNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrChatRoomNotFound)
}
