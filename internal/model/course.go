package model

import "time"

// Course — courses table. Read-mostly catalog entity, seeded once.
type Course struct {
	ID          int64  `gorm:"primaryKey"          json:"id"`
	Title       string `gorm:"not null"            json:"title"`
	Description string `gorm:"not null;default:''" json:"description"`
	Department  string `gorm:"not null;default:''" json:"department"`
	Instructor  string `gorm:"not null;default:''" json:"instructor"`
	Image       string `gorm:"not null;default:''" json:"image"`
	NotesURL    string `gorm:"not null;default:''" json:"notes_url"`
	VideoURL    string `gorm:"not null;default:''" json:"video_url"`
}

// TableName sets the table name.
func (Course) TableName() string { return "courses" }

// Enrollment — enrollments table.
// Composite primary key prevents duplicate enrollment at the store level.
type Enrollment struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false"     json:"user_id"`
	CourseID  int64     `gorm:"primaryKey;autoIncrement:false"     json:"course_id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Course *Course `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
}

// TableName sets the table name.
func (Enrollment) TableName() string { return "enrollments" }
