package usecases

import (
	"errors"
	"testing"
	"time"

	"home-monitor/apperrors"
	"home-monitor/auth"
	"home-monitor/entities"
	"home-monitor/repositories"
)

// stubAccountRepo is an in-memory AccountRepository for use case tests.
type stubAccountRepo struct {
	users     []entities.User
	devices   []entities.Device
	allowlist map[string]bool // serial -> claimed
	createErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{allowlist: make(map[string]bool)}
}

func (s *stubAccountRepo) CountUserByEmail(email string) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.Email == email {
			n++
		}
	}
	return n, nil
}

func (s *stubAccountRepo) CountUserByID(id uint) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.ID == id {
			n++
		}
	}
	return n, nil
}

func (s *stubAccountRepo) FindUserByEmail(email string) (*entities.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i], nil
		}
	}
	return nil, nil
}

func (s *stubAccountRepo) CountAllowlisted(deviceID string) (int64, error) {
	if _, ok := s.allowlist[deviceID]; ok {
		return 1, nil
	}
	return 0, nil
}

func (s *stubAccountRepo) CountClaimed(deviceID string) (int64, error) {
	if claimed, ok := s.allowlist[deviceID]; ok && claimed {
		return 1, nil
	}
	return 0, nil
}

func (s *stubAccountRepo) CreateWithDevice(user *entities.User, device *entities.Device) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = uint(len(s.users) + 1)
	device.UserID = &user.ID
	s.users = append(s.users, *user)
	s.devices = append(s.devices, *device)
	s.allowlist[device.ID] = true
	return nil
}

func (s *stubAccountRepo) FindUserSettings(userID uint) (*entities.User, error) {
	for i := range s.users {
		if s.users[i].ID == userID {
			return &s.users[i], nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *stubAccountRepo) UpdateUserSettings(userID uint, update *repositories.UserSettingsUpdate) error {
	for i := range s.users {
		if s.users[i].ID == userID {
			if update.Email != nil {
				s.users[i].Email = *update.Email
			}
			if update.Password != nil {
				s.users[i].Password = *update.Password
			}
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

type stubGeocoder struct {
	lat, lon float64
	err      error
	calls    int
}

func (g *stubGeocoder) Lookup(zipCode string) (float64, float64, error) {
	g.calls++
	return g.lat, g.lon, g.err
}

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("access", "refresh", 30*time.Minute, 7*24*time.Hour)
}

func validSignup() SignupInput {
	return SignupInput{
		FirstName:    "Hana",
		LastName:     "Sato",
		Email:        "hana@example.com",
		PhoneNumber:  "090-1234-5678",
		ZipCode:      "1600022",
		SerialNumber: "123e4567-e89b-12d3-a456-426614174000",
		Password:     "pass-word-1",
	}
}

func TestSignupCreatesUserAndClaimsSerial(t *testing.T) {
	repo := newStubAccountRepo()
	repo.allowlist["123e4567-e89b-12d3-a456-426614174000"] = false
	geo := &stubGeocoder{lat: 35.68, lon: 139.76}
	uc := NewAuthUseCase(repo, geo, testIssuer())

	if err := uc.Signup(validSignup()); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if len(repo.users) != 1 || len(repo.devices) != 1 {
		t.Fatalf("got %d users, %d devices, want 1 and 1", len(repo.users), len(repo.devices))
	}
	user := repo.users[0]
	if user.Password == "pass-word-1" {
		t.Error("password stored in plain text")
	}
	if !auth.VerifyPassword("pass-word-1", user.Password) {
		t.Error("stored password hash does not verify")
	}
	device := repo.devices[0]
	if device.Latitude != 35.68 || device.Longitude != 139.76 {
		t.Errorf("device coordinates = (%v, %v), want geocoded (35.68, 139.76)", device.Latitude, device.Longitude)
	}
	if device.UserID == nil || *device.UserID != user.ID {
		t.Error("device not linked to the created user")
	}
	if !repo.allowlist[device.ID] {
		t.Error("serial not marked claimed")
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo()
	repo.users = append(repo.users, entities.User{ID: 1, Email: "hana@example.com"})
	repo.allowlist["123e4567-e89b-12d3-a456-426614174000"] = false
	geo := &stubGeocoder{}
	uc := NewAuthUseCase(repo, geo, testIssuer())

	err := uc.Signup(validSignup())
	if !errors.Is(err, apperrors.ErrUserAlreadyExists) {
		t.Fatalf("Signup error = %v, want ErrUserAlreadyExists", err)
	}
	if geo.calls != 0 {
		t.Error("geocoder called despite a failed guard")
	}
}

func TestSignupRejectsUnknownSerial(t *testing.T) {
	repo := newStubAccountRepo()
	uc := NewAuthUseCase(repo, &stubGeocoder{}, testIssuer())

	err := uc.Signup(validSignup())
	if !errors.Is(err, apperrors.ErrSerialNumberNotFound) {
		t.Fatalf("Signup error = %v, want ErrSerialNumberNotFound", err)
	}
}

func TestSignupRejectsClaimedSerial(t *testing.T) {
	repo := newStubAccountRepo()
	repo.allowlist["123e4567-e89b-12d3-a456-426614174000"] = true
	uc := NewAuthUseCase(repo, &stubGeocoder{}, testIssuer())

	err := uc.Signup(validSignup())
	if !errors.Is(err, apperrors.ErrSerialNumberAlreadyRegistered) {
		t.Fatalf("Signup error = %v, want ErrSerialNumberAlreadyRegistered", err)
	}
}

func TestSignupGeocodeFailureLeavesNothingBehind(t *testing.T) {
	repo := newStubAccountRepo()
	repo.allowlist["123e4567-e89b-12d3-a456-426614174000"] = false
	uc := NewAuthUseCase(repo, &stubGeocoder{err: apperrors.ErrUpstreamRequest}, testIssuer())

	err := uc.Signup(validSignup())
	if !errors.Is(err, apperrors.ErrUpstreamRequest) {
		t.Fatalf("Signup error = %v, want ErrUpstreamRequest", err)
	}
	if len(repo.users) != 0 || len(repo.devices) != 0 {
		t.Error("failed signup left user or device rows behind")
	}
	if repo.allowlist["123e4567-e89b-12d3-a456-426614174000"] {
		t.Error("failed signup claimed the serial")
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	repo := newStubAccountRepo()
	hash, err := auth.HashPassword("pass-word-1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo.users = append(repo.users, entities.User{ID: 9, Email: "hana@example.com", Password: hash})
	uc := NewAuthUseCase(repo, &stubGeocoder{}, testIssuer())

	pair, err := uc.Login("hana@example.com", "pass-word-1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("token pair has an empty token")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Error("access and refresh tokens are identical")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newStubAccountRepo()
	hash, err := auth.HashPassword("pass-word-1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo.users = append(repo.users, entities.User{ID: 9, Email: "hana@example.com", Password: hash})
	uc := NewAuthUseCase(repo, &stubGeocoder{}, testIssuer())

	_, unknownErr := uc.Login("nobody@example.com", "pass-word-1")
	_, wrongErr := uc.Login("hana@example.com", "bad-password")

	if !errors.Is(unknownErr, apperrors.ErrIncorrectEmailOrPassword) {
		t.Errorf("unknown email error = %v, want ErrIncorrectEmailOrPassword", unknownErr)
	}
	if !errors.Is(wrongErr, apperrors.ErrIncorrectEmailOrPassword) {
		t.Errorf("wrong password error = %v, want ErrIncorrectEmailOrPassword", wrongErr)
	}
}

func TestCurrentUserRejectsDeletedSubject(t *testing.T) {
	repo := newStubAccountRepo()
	issuer := testIssuer()
	uc := NewAuthUseCase(repo, &stubGeocoder{}, issuer)

	token, err := issuer.IssueAccessToken(12)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	if _, err := uc.CurrentUser(token); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("CurrentUser error = %v, want ErrUserNotFound", err)
	}
}

func TestCurrentUserAcceptsLivingSubject(t *testing.T) {
	repo := newStubAccountRepo()
	repo.users = append(repo.users, entities.User{ID: 12, Email: "hana@example.com"})
	issuer := testIssuer()
	uc := NewAuthUseCase(repo, &stubGeocoder{}, issuer)

	token, err := issuer.IssueAccessToken(12)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	userID, err := uc.CurrentUser(token)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if userID != 12 {
		t.Errorf("CurrentUser = %d, want 12", userID)
	}
}
