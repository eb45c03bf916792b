package dto

import "time"

// LoginRequest defines the credentials for an email+password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the client.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// GoogleExchangeCodeRequest carries an OAuth authorization code from the
// frontend redirect flow.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// LoginResponse returns the access token and the authenticated profile.
type LoginResponse struct {
	AccessToken string          `json:"accessToken"`
	ExpiresAt   time.Time       `json:"expiresAt"`
	Profile     ProfileResponse `json:"profile"`
	Permission  string          `json:"permission"`
}
