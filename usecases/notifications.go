package usecases

import (
	"home-monitor/apperrors"
	"home-monitor/entities"
	"home-monitor/repositories"
)

// SMSSender delivers an outbound alert text to the operator number.
type SMSSender interface {
	Send(body string) error
}

type NotificationUseCase struct {
	notifications repositories.NotificationRepository
	sms           SMSSender
}

func NewNotificationUseCase(notifications repositories.NotificationRepository, sms SMSSender) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, sms: sms}
}

func (uc *NotificationUseCase) List(userID uint) ([]entities.Notification, error) {
	return uc.notifications.GetByUserID(userID)
}

// Acknowledge marks a notification read on behalf of userID. Fails when the
// notification's device is not owned by the user. Acknowledging twice is a
// no-op success.
func (uc *NotificationUseCase) Acknowledge(notificationID uint, userID uint) error {
	owned, err := uc.notifications.BelongsToUser(notificationID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return apperrors.ErrNotAuthorized
	}
	return uc.notifications.MarkRead(notificationID)
}

// RecordAlarm stores an alarm notification for the device and texts the
// operator.
func (uc *NotificationUseCase) RecordAlarm(deviceID, message string) error {
	n := &entities.Notification{
		ContentType: "Alarm",
		Content:     message,
		DeviceID:    deviceID,
	}
	if err := uc.notifications.Create(n); err != nil {
		return err
	}
	return uc.sms.Send(message)
}

// Notify sends an alert text without recording a notification row.
func (uc *NotificationUseCase) Notify(message string) error {
	return uc.sms.Send(message)
}
