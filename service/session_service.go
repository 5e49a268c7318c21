package service

import (
	"context"
	"net/http"
	"time"

	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/types"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/util"
)

// SessionService keeps the storage-provider session usable. It holds
// no token state itself, tokens live in the store and flow through
// arguments.
type SessionService struct {
	provider   types.OAuthProvider
	tokenStore types.TokenStore
}

func NewSessionService(provider types.OAuthProvider, tokenStore types.TokenStore) *SessionService {
	return &SessionService{
		provider:   provider,
		tokenStore: tokenStore,
	}
}

// EnsureValidSession returns an access token that is safe to use for
// API calls. A stored token that has expired triggers exactly one
// refresh and one persistence write; a valid one triggers neither.
// The passed record is updated in place so the caller sees the
// installed credentials.
func (s *SessionService) EnsureValidSession(ctx context.Context, t *types.UserToken) (string, error) {
	if !isAccessTokenExpired(t.ExpiresAt) {
		return t.AccessToken, nil
	}

	newToken, err := s.provider.Refresh(ctx, t.RefreshToken)
	if err != nil {
		return "", err
	}

	// Google omits the refresh token on plain refreshes, keep the
	// stored one in that case.
	refreshToken := newToken.RefreshToken
	if len(refreshToken) == 0 {
		refreshToken = t.RefreshToken
	}

	if err := s.tokenStore.UpdateTokens(ctx, t.UserEmail, newToken.AccessToken, refreshToken, newToken.Expiry); err != nil {
		return "", util.NewAppError(
			http.StatusInternalServerError,
			"failed to update the stored tokens",
			"SessionService, EnsureValidSession() error: ",
			err,
		)
	}

	t.AccessToken = newToken.AccessToken
	t.RefreshToken = refreshToken
	t.ExpiresAt = newToken.Expiry

	return newToken.AccessToken, nil
}

// Millisecond comparison, same clock reading on both sides.
func isAccessTokenExpired(expiresAt time.Time) bool {
	return expiresAt.UnixMilli() < time.Now().UnixMilli()
}
