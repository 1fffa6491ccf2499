package usecases

import (
	"home-monitor/auth"
	"home-monitor/entities"
	"home-monitor/repositories"
)

// SettingsUpdateInput carries the optional profile fields a user may change.
type SettingsUpdateInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Password    *string
}

type UserUseCase struct {
	accounts repositories.AccountRepository
	devices  repositories.DeviceRepository
}

func NewUserUseCase(accounts repositories.AccountRepository, devices repositories.DeviceRepository) *UserUseCase {
	return &UserUseCase{accounts: accounts, devices: devices}
}

func (uc *UserUseCase) Settings(userID uint) (*entities.User, error) {
	return uc.accounts.FindUserSettings(userID)
}

// UpdateSettings applies a partial profile update. A new password is hashed
// before it reaches the store.
func (uc *UserUseCase) UpdateSettings(userID uint, in SettingsUpdateInput) error {
	update := &repositories.UserSettingsUpdate{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}
	if in.Password != nil {
		hashed, err := auth.HashPassword(*in.Password)
		if err != nil {
			return err
		}
		update.Password = &hashed
	}
	return uc.accounts.UpdateUserSettings(userID, update)
}

func (uc *UserUseCase) Devices(userID uint) ([]entities.Device, error) {
	return uc.devices.GetByUserID(userID)
}

// OwnsDevice reports whether the device belongs to the user.
func (uc *UserUseCase) OwnsDevice(deviceID string, userID uint) (bool, error) {
	return uc.devices.BelongsToUser(deviceID, userID)
}

// Device returns a device by serial number.
func (uc *UserUseCase) Device(deviceID string) (*entities.Device, error) {
	return uc.devices.GetByID(deviceID)
}
