package types

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// OAuthProvider wraps the Google identity service. Implementations hold
// no token state, credentials always flow through arguments.
type OAuthProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, *GoogleClaims, error)
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	Revoke(ctx context.Context, token string) error
}

// TokenStore persists one token record per user email.
type TokenStore interface {
	FindByEmail(ctx context.Context, email string) (*UserToken, error)
	Create(ctx context.Context, t *UserToken) error
	UpdateTokens(ctx context.Context, email, accessToken, refreshToken string, expiresAt time.Time) error
	Delete(ctx context.Context, email string) error
}

// DriveService wraps the remote file-listing API.
type DriveService interface {
	ListFiles(ctx context.Context, accessToken string) ([]*FileMetadata, error)
	GetQuota(ctx context.Context, accessToken string) (*StorageQuota, error)
}
