package store

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/config"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/setting"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/types"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/util"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleProvider wraps the Google identity service. It only holds the
// immutable OAuth config and the ID token verifier, never credentials;
// every request works with its own token so concurrent users can't
// stomp on each other's session.
type GoogleProvider struct {
	config   *oauth2.Config
	verifier *oidc.IDTokenVerifier
}

func NewGoogleProvider(ctx context.Context, env config.EnvConfig) (*GoogleProvider, error) {
	// OIDC discovery gives us Google's signing keys for ID token
	// verification.
	provider, err := oidc.NewProvider(ctx, setting.GoogleIssuer)
	if err != nil {
		return nil, util.NewAppError(
			http.StatusInternalServerError,
			"failed to set up the google oidc provider",
			"NewGoogleProvider error: ",
			err,
		)
	}

	cfg := &oauth2.Config{
		ClientID:     env.ClientID,
		ClientSecret: env.ClientSecret,
		RedirectURL:  env.RedirectURL,
		Scopes:       setting.Scopes,
		Endpoint:     google.Endpoint,
	}

	return &GoogleProvider{
		config:   cfg,
		verifier: provider.Verifier(&oidc.Config{ClientID: env.ClientID}),
	}, nil
}

// AuthURL returns a URL to Google's consent page. Offline access type
// makes sure a refresh token is issued with the first authorization.
func (g *GoogleProvider) AuthURL(state string) string {
	return g.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange swaps the authorization `code` for OAuth tokens and returns
// the verified ID token claims alongside. The email claim is only
// trusted after the token signature checks out against Google's
// published keys.
func (g *GoogleProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, *types.GoogleClaims, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, nil, util.NewAppError(
			http.StatusInternalServerError,
			"failed to authenticate",
			"GoogleProvider, Exchange() error: ",
			err,
		)
	}
	if token == nil || !token.Valid() {
		return nil, nil, util.NewAppError(
			http.StatusBadRequest,
			"invalid oauth token",
			"GoogleProvider, Exchange() error",
		)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, nil, util.NewAppError(
			http.StatusInternalServerError,
			"no id_token in the token response",
			"GoogleProvider, Exchange() error",
		)
	}

	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, nil, util.NewAppError(
			http.StatusInternalServerError,
			"failed to verify the id_token",
			"GoogleProvider, Exchange() error: ",
			err,
		)
	}

	var claims types.GoogleClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, nil, util.NewAppError(
			http.StatusInternalServerError,
			"failed to parse the id_token claims",
			"GoogleProvider, Exchange() error: ",
			err,
		)
	}

	return token, &claims, nil
}

// Refresh mints a new access token from `refreshToken`. A failure here
// means the refresh token itself is invalid or revoked, the caller
// must fail the request instead of retrying.
func (g *GoogleProvider) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	tokenSrc := g.config.TokenSource(ctx, &oauth2.Token{
		RefreshToken: refreshToken,
	})

	newToken, err := tokenSrc.Token()
	if err != nil {
		return nil, util.NewAppError(
			http.StatusInternalServerError,
			"failed to refresh the access token",
			"GoogleProvider, Refresh() error: ",
			err,
		)
	}

	return newToken, nil
}

// Revoke invalidates `token` at Google's revocation endpoint.
func (g *GoogleProvider) Revoke(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, setting.GoogleRevokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return util.NewAppError(
			http.StatusInternalServerError,
			"failed to revoke the access token",
			"GoogleProvider, Revoke() error: ",
			err,
		)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return util.NewAppError(
			http.StatusInternalServerError,
			"failed to revoke the access token",
			"GoogleProvider, Revoke() error: ",
			err,
		)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return util.NewAppError(
			http.StatusInternalServerError,
			"failed to revoke the access token",
			"GoogleProvider, Revoke() error: ",
			"status not ok",
		)
	}

	return nil
}
