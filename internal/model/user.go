package model

import "time"

// Progress track names accepted by the progress update endpoint.
const (
	TrackCoding        = "coding"
	TrackAptitude      = "aptitude"
	TrackCommunication = "communication"
)

// User — users table.
// Progress counters are 0-100 integers, one per skill track.
type User struct {
	ID               int64     `gorm:"primaryKey"                          json:"id"`
	Name             string    `gorm:"not null"                            json:"name"`
	Email            string    `gorm:"not null;uniqueIndex"                json:"email"`
	PasswordHash     string    `gorm:"not null"                            json:"-"`
	Department       string    `gorm:"not null;default:''"                 json:"department"`
	CodingProgress   int       `gorm:"not null;default:0"                  json:"coding_progress"`
	AptitudeProgress int       `gorm:"not null;default:0"                  json:"aptitude_progress"`
	CommProgress     int       `gorm:"column:comm_progress;not null;default:0" json:"comm_progress"`
	Subscription     string    `gorm:"not null;default:'free'"             json:"subscription"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"  json:"created_at"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
