package usecases

import (
	"errors"
	"testing"

	"home-monitor/apperrors"
	"home-monitor/entities"
)

type stubNotificationRepo struct {
	notifications []entities.Notification
	owner         map[uint]uint // notificationID -> userID
	markReadCalls int
}

func newStubNotificationRepo() *stubNotificationRepo {
	return &stubNotificationRepo{owner: make(map[uint]uint)}
}

func (s *stubNotificationRepo) Create(n *entities.Notification) error {
	n.ID = uint(len(s.notifications) + 1)
	s.notifications = append(s.notifications, *n)
	return nil
}

func (s *stubNotificationRepo) GetByUserID(userID uint) ([]entities.Notification, error) {
	var out []entities.Notification
	for id, owner := range s.owner {
		for _, n := range s.notifications {
			if n.ID == id && owner == userID {
				out = append(out, n)
			}
		}
	}
	return out, nil
}

func (s *stubNotificationRepo) BelongsToUser(notificationID uint, userID uint) (bool, error) {
	return s.owner[notificationID] == userID, nil
}

func (s *stubNotificationRepo) MarkRead(notificationID uint) error {
	s.markReadCalls++
	for i := range s.notifications {
		if s.notifications[i].ID == notificationID {
			s.notifications[i].IsRead = true
		}
	}
	return nil
}

type stubSMS struct {
	sent []string
	err  error
}

func (s *stubSMS) Send(body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, body)
	return nil
}

func TestAcknowledgeMarksOwnedNotification(t *testing.T) {
	repo := newStubNotificationRepo()
	repo.notifications = append(repo.notifications, entities.Notification{ID: 1})
	repo.owner[1] = 5
	uc := NewNotificationUseCase(repo, &stubSMS{})

	if err := uc.Acknowledge(1, 5); err != nil {
		t.Fatalf("Acknowledge: %v", err)
	}
	if !repo.notifications[0].IsRead {
		t.Error("notification not marked read")
	}
}

func TestAcknowledgeIsIdempotent(t *testing.T) {
	repo := newStubNotificationRepo()
	repo.notifications = append(repo.notifications, entities.Notification{ID: 1, IsRead: true})
	repo.owner[1] = 5
	uc := NewNotificationUseCase(repo, &stubSMS{})

	if err := uc.Acknowledge(1, 5); err != nil {
		t.Fatalf("second Acknowledge: %v", err)
	}
	if !repo.notifications[0].IsRead {
		t.Error("notification lost its read state")
	}
}

func TestAcknowledgeRejectsForeignNotification(t *testing.T) {
	repo := newStubNotificationRepo()
	repo.notifications = append(repo.notifications, entities.Notification{ID: 1})
	repo.owner[1] = 5
	uc := NewNotificationUseCase(repo, &stubSMS{})

	err := uc.Acknowledge(1, 99)
	if !errors.Is(err, apperrors.ErrNotAuthorized) {
		t.Fatalf("Acknowledge error = %v, want ErrNotAuthorized", err)
	}
	if repo.markReadCalls != 0 {
		t.Error("MarkRead called for a foreign notification")
	}
}

func TestRecordAlarmStoresAndTexts(t *testing.T) {
	repo := newStubNotificationRepo()
	sms := &stubSMS{}
	uc := NewNotificationUseCase(repo, sms)

	if err := uc.RecordAlarm("123e4567-e89b-12d3-a456-426614174000", "Alarm triggered in the kitchen"); err != nil {
		t.Fatalf("RecordAlarm: %v", err)
	}
	if len(repo.notifications) != 1 {
		t.Fatalf("got %d notifications, want 1", len(repo.notifications))
	}
	n := repo.notifications[0]
	if n.ContentType != "Alarm" || n.Content != "Alarm triggered in the kitchen" {
		t.Errorf("stored notification = %+v", n)
	}
	if len(sms.sent) != 1 || sms.sent[0] != "Alarm triggered in the kitchen" {
		t.Errorf("sms sent = %v", sms.sent)
	}
}

func TestNotifySendsWithoutStoring(t *testing.T) {
	repo := newStubNotificationRepo()
	sms := &stubSMS{}
	uc := NewNotificationUseCase(repo, sms)

	if err := uc.Notify("Front door alarm"); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if len(repo.notifications) != 0 {
		t.Error("Notify stored a notification row")
	}
	if len(sms.sent) != 1 {
		t.Errorf("sms sent = %v, want one message", sms.sent)
	}
}
