package model

import "time"

// Contest — contests table. Seeded catalog entity.
type Contest struct {
	ID          int64  `gorm:"primaryKey"          json:"id"`
	Title       string `gorm:"not null"            json:"title"`
	Date        string `gorm:"not null"            json:"date"`
	Description string `gorm:"not null;default:''" json:"description"`
}

// TableName sets the table name.
func (Contest) TableName() string { return "contests" }

// ContestRegistration — contest_registrations table.
// Composite primary key rejects duplicate registration at the store level.
// Score fields are filled once the user submits answers.
type ContestRegistration struct {
	UserID      int64      `gorm:"primaryKey;autoIncrement:false"     json:"user_id"`
	ContestID   int64      `gorm:"primaryKey;autoIncrement:false"     json:"contest_id"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Score       *int       `json:"score,omitempty"`
	Percentage  *int       `json:"percentage,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TableName sets the table name.
func (ContestRegistration) TableName() string { return "contest_registrations" }

// Question — questions table.
// Options are stored as JSON text and decoded through StringList;
// CorrectOption is the zero-based index into Options.
type Question struct {
	ID            int64      `gorm:"primaryKey"                   json:"id"`
	ContestID     int64      `gorm:"not null"                     json:"contest_id"`
	Question      string     `gorm:"not null"                     json:"question"`
	Options       StringList `gorm:"type:text;not null"           json:"options"`
	CorrectOption int        `gorm:"not null;default:0"           json:"-"`
}

// TableName sets the table name.
func (Question) TableName() string { return "questions" }
