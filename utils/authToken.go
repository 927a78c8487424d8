package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/o1egl/paseto"
)

const tokenIssuer = "medicore"

// TokenClaims is the identity carried by an access token.
type TokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// refreshClaims is the payload of an encrypted PASETO refresh token.
type refreshClaims struct {
	UserID string    `json:"userId"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Expiry time.Time `json:"expiry"`
}

// TokenManager issues signed JWT access tokens and PASETO v2 refresh tokens.
type TokenManager struct {
	signingKey   []byte
	symmetricKey []byte
	accessTTL    time.Duration
	refreshTTL   time.Duration
	now          func() time.Time
}

func NewTokenManager(jwtSecret, symmetricKey string, accessTTL, refreshTTL time.Duration) (*TokenManager, error) {
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("symmetric key must be 32 bytes long, got %d", len(symmetricKey))
	}
	if jwtSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &TokenManager{
		signingKey:   []byte(jwtSecret),
		symmetricKey: []byte(symmetricKey),
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
		now:          time.Now,
	}, nil
}

// GenerateTokens generates both the access token and refresh token for the given identity.
func (m *TokenManager) GenerateTokens(userID, email, role string) (accessToken, refreshToken string, err error) {
	accessToken, err = m.GenerateAccessToken(userID, email, role)
	if err != nil {
		return "", "", err
	}

	now := m.now()
	claims := refreshClaims{UserID: userID, Email: email, Role: role, Expiry: now.Add(m.refreshTTL)}
	refreshToken, err = paseto.NewV2().Encrypt(m.symmetricKey, claims, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}

// GenerateAccessToken generates only the access token.
func (m *TokenManager) GenerateAccessToken(userID, email, role string) (string, error) {
	now := m.now()
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, nil
}

// ValidateToken verifies signature and expiry and, when roles are given,
// requires the token's role to be one of them.
func (m *TokenManager) ValidateToken(tokenString string, requiredRoles ...string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, Unauthorized("Invalid Token")
	}
	if claims.ExpiresAt == nil {
		return nil, Unauthorized("Invalid Token")
	}

	if len(requiredRoles) == 0 {
		return claims, nil
	}
	for _, role := range requiredRoles {
		if claims.Role == role {
			return claims, nil
		}
	}
	return nil, Unauthorized("Not Authorized")
}

// Refresh exchanges a valid refresh token for a new access token.
func (m *TokenManager) Refresh(refreshToken string) (string, *TokenClaims, error) {
	var claims refreshClaims
	if err := paseto.NewV2().Decrypt(refreshToken, m.symmetricKey, &claims, nil); err != nil {
		return "", nil, Unauthorized("Invalid refresh token")
	}
	if m.now().After(claims.Expiry) {
		return "", nil, Unauthorized("Refresh token expired")
	}

	accessToken, err := m.GenerateAccessToken(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return "", nil, err
	}
	return accessToken, &TokenClaims{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

// RefreshTTL is the lifetime of issued refresh tokens.
func (m *TokenManager) RefreshTTL() time.Duration {
	return m.refreshTTL
}
