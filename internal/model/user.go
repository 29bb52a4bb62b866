package model

import "time"

// AdminID is the id of the seeded administrator account.
const AdminID int64 = 0

// User represents an account in the system.
// Rows are never physically removed; see Deleted.
type User struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name          string     `json:"name" gorm:"size:64;uniqueIndex;not null"`
	DisplayName   string     `json:"display" gorm:"size:255"`
	PasswordHash  string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	AuthLevel     Level      `json:"auth" gorm:"not null;default:0"`
	Token         *string    `json:"-" gorm:"size:512;uniqueIndex"`
	TokenIssuedAt *time.Time `json:"-"`
	Deleted       bool       `json:"deleted" gorm:"not null;default:false;index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName pins the table name.
func (User) TableName() string { return "users" }

// Identity returns the session view of the user.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:      u.ID,
		Name:    u.Name,
		Display: u.DisplayName,
		Level:   u.AuthLevel,
	}
}

// Identity is the resolved holder of a session token.
// A nil *Identity stands for an anonymous caller.
type Identity struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Display string `json:"display"`
	Level   Level  `json:"auth"`
}

// LevelOf returns the level of id, treating nil as anonymous.
func LevelOf(id *Identity) Level {
	if id == nil {
		return LevelNull
	}
	return id.Level
}
