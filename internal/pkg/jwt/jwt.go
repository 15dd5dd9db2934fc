package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidTokenType = errors.New("unexpected token type")

type Service interface {
	GenerateAccessToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string) (token string, expiresAt int64, err error)
	// VerifyRefreshToken checks signature, expiry and type, and returns the user id claim.
	VerifyRefreshToken(ctx context.Context, token string) (userID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	ClearRefreshTokenCookie() *http.Cookie
}

type JWTService struct {
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	secureCookie    bool
	tokenAuth       *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService parses the token lifetimes (Go durations such as "15m" or "168h").
func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string, secureCookie bool) (Service, error) {
	accessTTL, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	refreshTTL, err := time.ParseDuration(refreshTokenExpirationTime)
	if err != nil {
		return nil, err
	}

	return &JWTService{
		accessTokenTTL:  accessTTL,
		refreshTokenTTL: refreshTTL,
		secureCookie:    secureCookie,
		tokenAuth:       jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}, nil
}

func (j *JWTService) GenerateAccessToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenTTL).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"type":    TokenTypeAccess,
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.refreshTokenTTL).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"exp":     expiresAt,
		"type":    TokenTypeRefresh,
		// jti keeps two refresh tokens issued within the same second distinct
		"jti": uuid.NewString(),
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) VerifyRefreshToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return "", err
	}
	if tokenType, _ := claims["type"].(string); tokenType != TokenTypeRefresh {
		return "", ErrInvalidTokenType
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", jwt.ErrInvalidJWT()
	}
	return userID, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) ClearRefreshTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}
