package service

import "time"

// Claims carries the authenticated identity extracted from a verified token.
type Claims struct {
	UserID string
	Role   string
}

// TokenService defines the interface for issuing and validating the access
// and refresh token pair. This abstracts the token format (JWT) from the use
// cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a
	// given user. Only the access token carries the role, for stateless
	// authorization.
	GenerateTokens(userID string, role string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured refresh token lifetime.
	GetRefreshTokenDuration() time.Duration
}
