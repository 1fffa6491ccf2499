package repositories

import (
	"time"

	"home-monitor/entities"
)

// UserSettingsUpdate is an explicit partial update: only non-nil fields are
// written, each mapped to a fixed column.
type UserSettingsUpdate struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Password    *string // already hashed by the caller
}

// LiveReading is the latest value of each sensor stream, resolved
// independently. A stream with no rows yields a nil field.
type LiveReading struct {
	Temperature *float64
	Humidity    *float64
	Alarm       *bool
}

// HistoricalBucket is a min/max summary of temperature and humidity grouped
// by a time bucket.
type HistoricalBucket struct {
	MinTemp  float64 `json:"min_temp"`
	MaxTemp  float64 `json:"max_temp"`
	MinHumid float64 `json:"min_humid"`
	MaxHumid float64 `json:"max_humid"`
	Bucket   string  `json:"date" gorm:"column:bucket"`
}

// AlarmEvent is one moment the alarm stream recorded true.
type AlarmEvent struct {
	Date string `json:"date"`
	Hour string `json:"hour"`
}

// Sample is one batch entry of sensor values reported by a device; it fans
// out to the five reading tables.
type Sample struct {
	TemperatureC float64   `json:"temperature_c"`
	Humidity     float64   `json:"humidity"`
	Motion       bool      `json:"motion"`
	Alarm        bool      `json:"alarm"`
	Button       bool      `json:"button"`
	CreatedAt    time.Time `json:"created_at"`
}

type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

type AccountRepository interface {
	CountUserByEmail(email string) (int64, error)
	CountUserByID(id uint) (int64, error)
	FindUserByEmail(email string) (*entities.User, error)
	CountAllowlisted(deviceID string) (int64, error)
	CountClaimed(deviceID string) (int64, error)
	// CreateWithDevice inserts the user and their device and claims the
	// allow-list entry in a single transaction.
	CreateWithDevice(user *entities.User, device *entities.Device) error
	FindUserSettings(userID uint) (*entities.User, error)
	UpdateUserSettings(userID uint, update *UserSettingsUpdate) error
}

type DeviceRepository interface {
	GetByID(id string) (*entities.Device, error)
	GetByUserID(userID uint) ([]entities.Device, error)
	BelongsToUser(deviceID string, userID uint) (bool, error)
}

type ReadingRepository interface {
	Latest(deviceID string) (*LiveReading, error)
	Historical(deviceID string, window Window) ([]HistoricalBucket, error)
	HistoricalAlarm(deviceID string) ([]AlarmEvent, error)
	AppendBatch(deviceID string, samples []Sample) error
}

type NotificationRepository interface {
	Create(n *entities.Notification) error
	GetByUserID(userID uint) ([]entities.Notification, error)
	BelongsToUser(notificationID uint, userID uint) (bool, error)
	MarkRead(notificationID uint) error
}
