package domain

import "time"

// User is the persisted account record. Email is unique (stored lower-cased)
// and Password always holds a bcrypt hash, never the plaintext.
type User struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	LastName  string    `gorm:"size:50" json:"lastName"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Location  string    `gorm:"size:255" json:"location"`
	Password  string    `gorm:"not null" json:"-"` // Never return password in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the User model.
func (User) TableName() string {
	return "users"
}
