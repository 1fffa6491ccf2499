package repositories

import (
	"home-monitor/db"
	"home-monitor/entities"
)

type notificationPgRepository struct {
	db db.Database
}

func NewNotificationPgRepository(database db.Database) NotificationRepository {
	return &notificationPgRepository{db: database}
}

func (r *notificationPgRepository) Create(n *entities.Notification) error {
	return r.db.GetDB().Create(n).Error
}

func (r *notificationPgRepository) GetByUserID(userID uint) ([]entities.Notification, error) {
	var notifications []entities.Notification
	err := r.db.GetDB().
		Where("device_id IN (?)", r.db.GetDB().Model(&entities.Device{}).Select("id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationPgRepository) BelongsToUser(notificationID uint, userID uint) (bool, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Notification{}).
		Where("id = ? AND device_id IN (?)", notificationID,
			r.db.GetDB().Model(&entities.Device{}).Select("id").Where("user_id = ?", userID)).
		Count(&count).Error
	return count > 0, err
}

// MarkRead flips is_read to true. Re-acknowledging an already-read
// notification is a no-op success.
func (r *notificationPgRepository) MarkRead(notificationID uint) error {
	return r.db.GetDB().Model(&entities.Notification{}).
		Where("id = ?", notificationID).
		Update("is_read", true).Error
}
