package database

import (
	"fmt"
	"log"
	"time"

	"nanumi/internal/domain/product"
	"nanumi/internal/domain/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed loads development fixtures: the category list, one address and a
// handful of demo users. Idempotent; existing rows are left alone.
func Seed(db *gorm.DB) error {
	log.Println("Starting database seeding...")

	categories := []product.Category{
		{Name: "Furniture"},
		{Name: "Electronics"},
		{Name: "Books"},
		{Name: "Clothing"},
		{Name: "Kitchen"},
		{Name: "Etc"},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	address := user.Address{Name: "Yeoksam-dong"}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&address).Error; err != nil {
		return fmt.Errorf("failed to seed address: %w", err)
	}

	for i := 1; i <= 3; i++ {
		u := user.User{
			Email:      fmt.Sprintf("demo%d@nanumi.dev", i),
			Nickname:   fmt.Sprintf("demo%d", i),
			ProfileURL: fmt.Sprintf("https://cdn.nanumi.dev/profiles/demo%d.png", i),
			AddressID:  address.ID,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&u).Error; err != nil {
			return fmt.Errorf("failed to seed user %d: %w", i, err)
		}
	}

	log.Println("Database seeding completed successfully!")
	return nil
}
