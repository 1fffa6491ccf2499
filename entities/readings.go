package entities

import "time"

// Reading rows are append-only: one row per sample, per stream, per device.
// The surrogate id doubles as the tiebreak when two samples share a
// timestamp.

type Temperature struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Temperature float64   `json:"temperature"`
	CreatedAt   time.Time `json:"created_at"`
	DeviceID    string    `gorm:"index" json:"device_id"`
}

func (Temperature) TableName() string { return "temperature" }

type Humidity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Humidity  float64   `json:"humidity"`
	CreatedAt time.Time `json:"created_at"`
	DeviceID  string    `gorm:"index" json:"device_id"`
}

func (Humidity) TableName() string { return "humidity" }

type Motion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Motion    bool      `json:"motion"`
	CreatedAt time.Time `json:"created_at"`
	DeviceID  string    `gorm:"index" json:"device_id"`
}

func (Motion) TableName() string { return "motion" }

type Button struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	DeviceListening bool      `json:"device_listening"`
	CreatedAt       time.Time `json:"created_at"`
	DeviceID        string    `gorm:"index" json:"device_id"`
}

func (Button) TableName() string { return "button" }

type Alarm struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IsAlarm   bool      `json:"is_alarm"`
	CreatedAt time.Time `json:"created_at"`
	DeviceID  string    `gorm:"index" json:"device_id"`
}

func (Alarm) TableName() string { return "alarm" }
