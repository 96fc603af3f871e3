package model

import "time"

// Book — books table. A marketplace listing owned by one seller.
type Book struct {
	ID         int64     `gorm:"primaryKey"                         json:"id"`
	Title      string    `gorm:"not null"                           json:"title"`
	Price      float64   `gorm:"not null;default:0"                 json:"price"`
	SellerID   int64     `gorm:"not null"                           json:"seller_id"`
	Department string    `gorm:"not null;default:''"                json:"department"`
	Image      string    `gorm:"not null;default:''"                json:"image"`
	Location   string    `gorm:"not null;default:''"                json:"location"`
	Stock      int       `gorm:"not null;default:1"                 json:"stock"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (Book) TableName() string { return "books" }
