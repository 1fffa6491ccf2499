package entities

import "time"

// Device is a physical monitoring unit. The ID is the pre-provisioned serial
// number (UUID); it is never generated at signup, only claimed from the
// Registered allow-list.
type Device struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	DeviceName     string    `gorm:"size:100" json:"device_name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	ZipCode        string    `gorm:"size:7" json:"zip_code"`
	UserID         *uint     `gorm:"index" json:"user_id"`
	TempLowerAlert *float64  `json:"temp_lower_alert"`
	TempUpperAlert *float64  `json:"temp_upper_alert"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Device) TableName() string { return "devices" }

// Registered is the pre-provisioned serial number allow-list. The flag flips
// false to true exactly once, when a signup claims the serial.
type Registered struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Registered bool   `json:"registered"`
}

func (Registered) TableName() string { return "registered" }
