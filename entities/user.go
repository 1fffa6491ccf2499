package entities

import "time"

// User is an account holder. Passwords are stored bcrypt-hashed and never
// serialized.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"size:50" json:"first_name"`
	LastName    string    `gorm:"size:50" json:"last_name"`
	Email       string    `gorm:"size:100;uniqueIndex" json:"email"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`
	Password    string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
