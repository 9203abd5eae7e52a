package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session token errors
var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

// DefaultSessionCookie is the name of the cookie carrying the session token.
const DefaultSessionCookie = "campussphere_session"

// SessionConfig defines session token settings
type SessionConfig struct {
	SecretKey   string
	TokenExp    time.Duration
	TokenIssuer string
	CookieName  string
}

// SessionService issues and validates the signed session tokens stored in the
// session cookie.
type SessionService struct {
	config SessionConfig
}

// NewSessionService creates a new session service
func NewSessionService(config SessionConfig) *SessionService {
	if config.CookieName == "" {
		config.CookieName = DefaultSessionCookie
	}
	return &SessionService{
		config: config,
	}
}

// SessionClaims defines the fields persisted in the session token
type SessionClaims struct {
	UserID   int64  `json:"userId"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}

// CookieName returns the configured session cookie name
func (s *SessionService) CookieName() string {
	return s.config.CookieName
}

// TokenMaxAge returns the session lifetime in seconds, for the cookie Max-Age attribute
func (s *SessionService) TokenMaxAge() int {
	return int(s.config.TokenExp.Seconds())
}

// IssueToken creates a signed session token for the given principal fields
func (s *SessionService) IssueToken(userID int64, role, email, fullName string) (string, error) {
	now := time.Now()

	claims := &SessionClaims{
		UserID:   userID,
		Role:     role,
		Email:    email,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// ValidateToken validates a session token and returns its claims
func (s *SessionService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
