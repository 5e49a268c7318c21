package service

import (
	"context"
	"net/http"

	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/types"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/util"
)

// AccountService handles the account lifecycle: authorization, token
// storage and revocation.
type AccountService struct {
	provider   types.OAuthProvider
	tokenStore types.TokenStore
}

func NewAccountService(provider types.OAuthProvider, tokenStore types.TokenStore) *AccountService {
	return &AccountService{
		provider:   provider,
		tokenStore: tokenStore,
	}
}

// AuthURL returns a URL to the provider's consent page.
func (s *AccountService) AuthURL() (string, error) {
	state, err := util.GenerateRandomState(32)
	if err != nil {
		return "", util.NewAppError(
			http.StatusInternalServerError,
			"failed to generate the state",
			"AccountService, AuthURL() error: ",
			err,
		)
	}

	authURL := s.provider.AuthURL(state)
	if len(authURL) == 0 {
		return "", util.NewAppError(
			http.StatusInternalServerError,
			"no authentication URL was generated",
		)
	}

	return authURL, nil
}

// CompleteAuth exchanges the authorization `code`, verifies the user's
// identity and upserts the token record. Re-authorization replaces the
// stored tokens: a fresh consent invalidates the previously issued
// refresh token, so keeping the old record around would leave the user
// with dead credentials.
func (s *AccountService) CompleteAuth(ctx context.Context, code string) (string, error) {
	token, claims, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return "", err
	}
	if len(claims.Email) == 0 {
		return "", util.NewAppError(
			http.StatusInternalServerError,
			"no email claim in the id_token",
			"AccountService, CompleteAuth() error",
		)
	}

	existing, err := s.tokenStore.FindByEmail(ctx, claims.Email)
	if err != nil {
		return "", util.NewAppError(
			http.StatusInternalServerError,
			"failed to retrieve the user",
			"AccountService, CompleteAuth() error: ",
			err,
		)
	}

	if existing != nil {
		// A re-auth response may omit the refresh token, keep the
		// stored one then.
		refreshToken := token.RefreshToken
		if len(refreshToken) == 0 {
			refreshToken = existing.RefreshToken
		}

		if err := s.tokenStore.UpdateTokens(ctx, claims.Email, token.AccessToken, refreshToken, token.Expiry); err != nil {
			return "", util.NewAppError(
				http.StatusInternalServerError,
				"failed to update the user",
				"AccountService, CompleteAuth() error: ",
				err,
			)
		}

		return claims.Email, nil
	}

	u := &types.UserToken{
		UserEmail:    claims.Email,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	}
	if err := s.tokenStore.Create(ctx, u); err != nil {
		return "", util.NewAppError(
			http.StatusInternalServerError,
			"failed to create the user",
			"AccountService, CompleteAuth() error: ",
			err,
		)
	}

	return claims.Email, nil
}

// RevokeAndDelete revokes the stored access token and then deletes the
// record. Revocation goes first: if it fails the record stays, so the
// call can be retried.
func (s *AccountService) RevokeAndDelete(ctx context.Context, email string) error {
	u, err := s.tokenStore.FindByEmail(ctx, email)
	if err != nil {
		return util.NewAppError(
			http.StatusInternalServerError,
			"failed to retrieve the user",
			"AccountService, RevokeAndDelete() error: ",
			err,
		)
	}
	if u == nil {
		return util.NewAppError(
			http.StatusNotFound,
			"user not found",
		)
	}

	if err := s.provider.Revoke(ctx, u.AccessToken); err != nil {
		return err
	}

	if err := s.tokenStore.Delete(ctx, email); err != nil {
		return util.NewAppError(
			http.StatusInternalServerError,
			"failed to delete the user",
			"AccountService, RevokeAndDelete() error: ",
			err,
		)
	}

	return nil
}
