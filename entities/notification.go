package entities

import "time"

// Notification is a per-device alert record. IsRead flips false to true via
// acknowledgement and never reverts.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ContentType string    `gorm:"size:50" json:"content_type"`
	Content     string    `gorm:"size:300" json:"content"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
	DeviceID    string    `gorm:"index" json:"device_id"`
}

func (Notification) TableName() string { return "notifications" }
