package usecases

import (
	"home-monitor/apperrors"
	"home-monitor/auth"
	"home-monitor/entities"
	"home-monitor/repositories"
)

// Geocoder resolves a zip code to coordinates at signup time.
type Geocoder interface {
	Lookup(zipCode string) (float64, float64, error)
}

type SignupInput struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	ZipCode      string
	SerialNumber string
	Password     string
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUseCase struct {
	accounts repositories.AccountRepository
	geocoder Geocoder
	tokens   *auth.TokenIssuer
}

func NewAuthUseCase(accounts repositories.AccountRepository, geocoder Geocoder, tokens *auth.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, geocoder: geocoder, tokens: tokens}
}

// Signup runs the registration protocol in order, short-circuiting on the
// first failed guard: email free, serial allow-listed, serial unclaimed.
// The final write (user + device + claim) is atomic in the store.
func (uc *AuthUseCase) Signup(in SignupInput) error {
	count, err := uc.accounts.CountUserByEmail(in.Email)
	if err != nil {
		return err
	}
	if count != 0 {
		return apperrors.ErrUserAlreadyExists
	}

	allowlisted, err := uc.accounts.CountAllowlisted(in.SerialNumber)
	if err != nil {
		return err
	}
	if allowlisted == 0 {
		return apperrors.ErrSerialNumberNotFound
	}

	claimed, err := uc.accounts.CountClaimed(in.SerialNumber)
	if err != nil {
		return err
	}
	if claimed > 0 {
		return apperrors.ErrSerialNumberAlreadyRegistered
	}

	lat, lon, err := uc.geocoder.Lookup(in.ZipCode)
	if err != nil {
		return err
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return err
	}

	user := &entities.User{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Password:    hashed,
	}
	device := &entities.Device{
		ID:        in.SerialNumber,
		Latitude:  lat,
		Longitude: lon,
		ZipCode:   in.ZipCode,
	}
	return uc.accounts.CreateWithDevice(user, device)
}

// Login verifies credentials and issues an access/refresh pair. Unknown
// email and wrong password yield the identical error so accounts cannot be
// enumerated.
func (uc *AuthUseCase) Login(email, password string) (*TokenPair, error) {
	user, err := uc.accounts.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrIncorrectEmailOrPassword
	}

	if !auth.VerifyPassword(password, user.Password) {
		return nil, apperrors.ErrIncorrectEmailOrPassword
	}

	access, err := uc.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := uc.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// CurrentUser verifies a bearer token and confirms the subject still exists.
func (uc *AuthUseCase) CurrentUser(token string) (uint, error) {
	payload, err := uc.tokens.VerifyAccessToken(token)
	if err != nil {
		return 0, err
	}
	count, err := uc.accounts.CountUserByID(payload.UserID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, apperrors.ErrUserNotFound
	}
	return payload.UserID, nil
}
