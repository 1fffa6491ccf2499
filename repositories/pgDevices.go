package repositories

import (
	"errors"

	"home-monitor/apperrors"
	"home-monitor/db"
	"home-monitor/entities"

	"gorm.io/gorm"
)

type devicePgRepository struct {
	db db.Database
}

func NewDevicePgRepository(database db.Database) DeviceRepository {
	return &devicePgRepository{db: database}
}

func (r *devicePgRepository) GetByID(id string) (*entities.Device, error) {
	var device entities.Device
	err := r.db.GetDB().Where("id = ?", id).First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *devicePgRepository) GetByUserID(userID uint) ([]entities.Device, error) {
	var devices []entities.Device
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&devices).Error
	return devices, err
}

func (r *devicePgRepository) BelongsToUser(deviceID string, userID uint) (bool, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Device{}).
		Where("id = ? AND user_id = ?", deviceID, userID).Count(&count).Error
	return count > 0, err
}
