package user

import "time"

// User represents the users table. Written by the account flows outside this
// service; read-only here.
type User struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Email      string `gorm:"size:100;uniqueIndex"`
	Nickname   string `gorm:"size:40;not null"`
	ProfileURL string
	AddressID  int64
	IsDeleted  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Address represents the addresses table (city/district/neighborhood rows).
type Address struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:60;not null"`
}

// Blacklist is a directed block relation: UserID blocked TargetID.
// Visibility is symmetric, derived by reading both directions.
type Blacklist struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"index:idx_blacklist_pair,unique"`
	TargetID  int64 `gorm:"index:idx_blacklist_pair,unique"`
	CreatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

func (Address) TableName() string {
	return "addresses"
}

func (Blacklist) TableName() string {
	return "blacklists"
}
