package model

import "time"

// Session — sessions table. Append-only mentorship booking record;
// no conflict or overlap checking.
type Session struct {
	ID         int64     `gorm:"primaryKey"                         json:"id"`
	UserID     int64     `gorm:"not null"                           json:"user_id"`
	MentorName string    `gorm:"not null"                           json:"mentor_name"`
	Date       string    `gorm:"not null"                           json:"date"` // YYYY-MM-DD
	Time       string    `gorm:"not null"                           json:"time"` // HH:MM
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (Session) TableName() string { return "sessions" }
