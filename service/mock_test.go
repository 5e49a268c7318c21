package service

import (
	"context"
	"time"

	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/types"
	"golang.org/x/oauth2"
)

// Mock Provider
type mockProvider struct {
	authURL       string
	exchangeToken *oauth2.Token
	exchangeEmail string
	exchangeErr   error
	refreshToken  *oauth2.Token
	refreshErr    error
	revokeErr     error

	exchangeCalls int
	refreshCalls  int
	revokeCalls   int
}

func (m *mockProvider) AuthURL(state string) string {
	return m.authURL
}

func (m *mockProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, *types.GoogleClaims, error) {
	m.exchangeCalls++
	if m.exchangeErr != nil {
		return nil, nil, m.exchangeErr
	}
	return m.exchangeToken, &types.GoogleClaims{Email: m.exchangeEmail}, nil
}

func (m *mockProvider) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	m.refreshCalls++
	if m.refreshErr != nil {
		return nil, m.refreshErr
	}
	return m.refreshToken, nil
}

func (m *mockProvider) Revoke(ctx context.Context, token string) error {
	m.revokeCalls++
	return m.revokeErr
}

// Mock TokenStore backed by a map.
type mockTokenStore struct {
	records map[string]*types.UserToken

	findErr   error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
	deleteCalls int
}

func newMockTokenStore(records ...*types.UserToken) *mockTokenStore {
	m := &mockTokenStore{
		records: make(map[string]*types.UserToken),
	}
	for _, r := range records {
		m.records[r.UserEmail] = r
	}
	return m
}

func (m *mockTokenStore) FindByEmail(ctx context.Context, email string) (*types.UserToken, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.records[email], nil
}

func (m *mockTokenStore) Create(ctx context.Context, t *types.UserToken) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	m.records[t.UserEmail] = t
	return nil
}

func (m *mockTokenStore) UpdateTokens(ctx context.Context, email, accessToken, refreshToken string, expiresAt time.Time) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	if r, ok := m.records[email]; ok {
		r.AccessToken = accessToken
		r.RefreshToken = refreshToken
		r.ExpiresAt = expiresAt
	}
	return nil
}

func (m *mockTokenStore) Delete(ctx context.Context, email string) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.records, email)
	return nil
}

// Mock DriveService
type mockDriveService struct {
	files    []*types.FileMetadata
	quota    *types.StorageQuota
	listErr  error
	quotaErr error
}

func (m *mockDriveService) ListFiles(ctx context.Context, accessToken string) ([]*types.FileMetadata, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.files, nil
}

func (m *mockDriveService) GetQuota(ctx context.Context, accessToken string) (*types.StorageQuota, error) {
	if m.quotaErr != nil {
		return nil, m.quotaErr
	}
	return m.quota, nil
}
