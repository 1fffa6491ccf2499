package repositories

import (
	"errors"
	"time"

	"home-monitor/apperrors"
	"home-monitor/db"
	"home-monitor/entities"

	"gorm.io/gorm"
)

type accountPgRepository struct {
	db db.Database
}

func NewAccountPgRepository(database db.Database) AccountRepository {
	return &accountPgRepository{db: database}
}

func (r *accountPgRepository) CountUserByEmail(email string) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *accountPgRepository) CountUserByID(id uint) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.User{}).Where("id = ?", id).Count(&count).Error
	return count, err
}

func (r *accountPgRepository) FindUserByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *accountPgRepository) CountAllowlisted(deviceID string) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Registered{}).Where("id = ?", deviceID).Count(&count).Error
	return count, err
}

func (r *accountPgRepository) CountClaimed(deviceID string) (int64, error) {
	var count int64
	err := r.db.GetDB().Model(&entities.Registered{}).
		Where("id = ? AND registered = ?", deviceID, true).Count(&count).Error
	return count, err
}

// CreateWithDevice runs the signup write as one transaction: user insert,
// device insert bound to the new user id, allow-list claim. A failure at any
// step rolls back the whole write.
func (r *accountPgRepository) CreateWithDevice(user *entities.User, device *entities.Device) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		device.UserID = &user.ID
		if err := tx.Create(device).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Registered{}).
			Where("id = ?", device.ID).
			Update("registered", true).Error
	})
}

func (r *accountPgRepository) FindUserSettings(userID uint) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserSettings writes only the provided fields, each mapped to a fixed
// column. No dynamically assembled SQL.
func (r *accountPgRepository) UpdateUserSettings(userID uint, update *UserSettingsUpdate) error {
	columns := map[string]interface{}{}
	if update.FirstName != nil {
		columns["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		columns["last_name"] = *update.LastName
	}
	if update.Email != nil {
		columns["email"] = *update.Email
	}
	if update.PhoneNumber != nil {
		columns["phone_number"] = *update.PhoneNumber
	}
	if update.Password != nil {
		columns["password"] = *update.Password
	}
	if len(columns) == 0 {
		return nil
	}
	columns["updated_at"] = time.Now().UTC()
	return r.db.GetDB().Model(&entities.User{}).Where("id = ?", userID).Updates(columns).Error
}
