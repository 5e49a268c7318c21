package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/types"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestAuthURL(t *testing.T) {
	provider := &mockProvider{
		authURL: "https://accounts.google.com/o/oauth2/auth?access_type=offline",
	}
	svc := NewAccountService(provider, newMockTokenStore())

	authURL, err := svc.AuthURL()
	require.NoError(t, err)
	assert.Equal(t, provider.authURL, authURL)
}

func TestCompleteAuth_NewUser(t *testing.T) {
	expiry := time.Now().Add(time.Hour)
	provider := &mockProvider{
		exchangeEmail: "user@example.com",
		exchangeToken: &oauth2.Token{
			AccessToken:  "access_token",
			RefreshToken: "refresh_token",
			Expiry:       expiry,
		},
	}
	store := newMockTokenStore()

	svc := NewAccountService(provider, store)

	email, err := svc.CompleteAuth(context.Background(), "auth_code")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
	assert.Equal(t, 1, store.createCalls)
	assert.Equal(t, 0, store.updateCalls)

	created := store.records["user@example.com"]
	require.NotNil(t, created)
	assert.Equal(t, "access_token", created.AccessToken)
	assert.Equal(t, "refresh_token", created.RefreshToken)
	assert.Equal(t, expiry, created.ExpiresAt)
}

func TestCompleteAuth_ExistingUser(t *testing.T) {
	existing := &types.UserToken{
		UserEmail:    "user@example.com",
		AccessToken:  "old_access_token",
		RefreshToken: "old_refresh_token",
		ExpiresAt:    time.Now().Add(-time.Hour),
	}
	provider := &mockProvider{
		exchangeEmail: "user@example.com",
		exchangeToken: &oauth2.Token{
			AccessToken:  "new_access_token",
			RefreshToken: "new_refresh_token",
			Expiry:       time.Now().Add(time.Hour),
		},
	}
	store := newMockTokenStore(existing)

	svc := NewAccountService(provider, store)

	_, err := svc.CompleteAuth(context.Background(), "auth_code")
	require.NoError(t, err)

	// Re-auth updates the record instead of creating a second one.
	assert.Equal(t, 0, store.createCalls)
	assert.Equal(t, 1, store.updateCalls)
	assert.Equal(t, "new_access_token", store.records["user@example.com"].AccessToken)
	assert.Equal(t, "new_refresh_token", store.records["user@example.com"].RefreshToken)
}

func TestCompleteAuth_ExistingUserNoRefreshToken(t *testing.T) {
	existing := &types.UserToken{
		UserEmail:    "user@example.com",
		AccessToken:  "old_access_token",
		RefreshToken: "old_refresh_token",
		ExpiresAt:    time.Now().Add(-time.Hour),
	}
	provider := &mockProvider{
		exchangeEmail: "user@example.com",
		exchangeToken: &oauth2.Token{
			AccessToken: "new_access_token",
			Expiry:      time.Now().Add(time.Hour),
		},
	}
	store := newMockTokenStore(existing)

	svc := NewAccountService(provider, store)

	_, err := svc.CompleteAuth(context.Background(), "auth_code")
	require.NoError(t, err)
	assert.Equal(t, "old_refresh_token", store.records["user@example.com"].RefreshToken)
}

func TestRevokeAndDelete(t *testing.T) {
	u := &types.UserToken{
		UserEmail:   "user@example.com",
		AccessToken: "access_token",
	}
	provider := &mockProvider{}
	store := newMockTokenStore(u)

	svc := NewAccountService(provider, store)

	err := svc.RevokeAndDelete(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, provider.revokeCalls)
	assert.Equal(t, 1, store.deleteCalls)
	assert.Nil(t, store.records["user@example.com"])
}

func TestRevokeAndDelete_UnknownUser(t *testing.T) {
	provider := &mockProvider{}
	store := newMockTokenStore()

	svc := NewAccountService(provider, store)

	err := svc.RevokeAndDelete(context.Background(), "nobody@example.com")
	require.Error(t, err)

	appErr, ok := err.(*util.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Status)

	// Nothing revoked, nothing deleted.
	assert.Equal(t, 0, provider.revokeCalls)
	assert.Equal(t, 0, store.deleteCalls)
}

func TestRevokeAndDelete_RevokeFails(t *testing.T) {
	u := &types.UserToken{
		UserEmail:   "user@example.com",
		AccessToken: "access_token",
	}
	provider := &mockProvider{
		revokeErr: util.NewAppError(500, "failed to revoke the access token"),
	}
	store := newMockTokenStore(u)

	svc := NewAccountService(provider, store)

	err := svc.RevokeAndDelete(context.Background(), "user@example.com")
	assert.Error(t, err)

	// The record stays so revocation can be retried.
	assert.Equal(t, 0, store.deleteCalls)
	assert.NotNil(t, store.records["user@example.com"])
}
