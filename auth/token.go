package auth

import (
	"errors"
	"strconv"
	"time"

	"home-monitor/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer mints and verifies HS256 access and refresh tokens. The two
// token kinds are signed with independent secrets so a refresh token never
// passes access verification. Tokens are self-contained: validity is
// signature plus expiry, nothing server-side.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// TokenPayload is the verified content of a token.
type TokenPayload struct {
	UserID    uint
	ExpiresAt time.Time
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccessToken signs an access token for the user.
func (t *TokenIssuer) IssueAccessToken(userID uint) (string, error) {
	return t.sign(userID, t.accessSecret, t.accessTTL)
}

// IssueRefreshToken signs a refresh token for the user.
func (t *TokenIssuer) IssueRefreshToken(userID uint) (string, error) {
	return t.sign(userID, t.refreshSecret, t.refreshTTL)
}

func (t *TokenIssuer) sign(userID uint, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccessToken validates signature and claims of an access token.
// A malformed token, bad signature, or missing subject/expiry yields
// ErrTokenValidation; a past expiry yields ErrTokenExpired.
func (t *TokenIssuer) VerifyAccessToken(token string) (*TokenPayload, error) {
	return verify(token, t.accessSecret)
}

// VerifyRefreshToken validates a refresh token.
func (t *TokenIssuer) VerifyRefreshToken(token string) (*TokenPayload, error) {
	return verify(token, t.refreshSecret)
}

func verify(token string, secret []byte) (*TokenPayload, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenValidation
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, apperrors.ErrTokenValidation
	}
	if claims.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, apperrors.ErrTokenValidation
	}
	return &TokenPayload{UserID: uint(userID), ExpiresAt: claims.ExpiresAt.Time}, nil
}
