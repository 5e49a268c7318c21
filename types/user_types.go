package types

import "time"

type UserToken struct {
	UserEmail    string    `json:"user_email"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GoogleClaims are the ID token claims we care about after verification.
type GoogleClaims struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
}
