package database

import (
	"fmt"
	"time"

	"nanumi/config"
	"nanumi/internal/domain/chatroom"
	"nanumi/internal/domain/product"
	"nanumi/internal/domain/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the relational store. TranslateError is required: duplicate
// key violations must surface as gorm.ErrDuplicatedKey for the repositories
// to map them to business conflicts.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get generic database object: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// AutoMigrate creates or updates all relational tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&user.Address{},
		&user.Blacklist{},
		&product.Category{},
		&product.Product{},
		&product.ProductImage{},
		&product.Match{},
		&chatroom.ChatRoom{},
	)
}
