package model

import "time"

// Feedback — feedback table. Append-only.
type Feedback struct {
	ID        int64     `gorm:"primaryKey"                         json:"id"`
	UserID    int64     `gorm:"not null"                           json:"user_id"`
	Content   string    `gorm:"not null"                           json:"content"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (Feedback) TableName() string { return "feedback" }
