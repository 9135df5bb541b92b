package product

import "time"

// Product represents the products table. A product accepts applications only
// while IsClosed is false; IsDeleted is a soft-delete flag.
type Product struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	Name       string
	Content    string
	IsClosed   bool
	IsDeleted  bool
	IsMatched  bool
	UserID     int64 `gorm:"index"`
	CategoryID int64
	AddressID  int64 `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relationships
	Matches []Match        `gorm:"foreignKey:ProductID"`
	Images  []ProductImage `gorm:"foreignKey:ProductID"`
}

// Match is one user's application to receive one product. At most one row
// per (product, applicant) pair. IsMatching flips to true once a chat room
// has been opened for the pair and never flips back.
type Match struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	ProductID  int64 `gorm:"index:idx_match_product_user,unique"`
	UserID     int64 `gorm:"index:idx_match_product_user,unique"`
	IsMatching bool
	CreatedAt  time.Time
}

type ProductImage struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	ProductID int64 `gorm:"index"`
	ImageURL  string
}

type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:20;not null"`
}

func (Product) TableName() string {
	return "products"
}

func (Match) TableName() string {
	return "matches"
}

func (ProductImage) TableName() string {
	return "product_images"
}

func (Category) TableName() string {
	return "categories"
}
