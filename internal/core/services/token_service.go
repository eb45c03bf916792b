package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/MboaHealth/hospital_admin_app/internal/utils"
	"github.com/MboaHealth/hospital_admin_app/pkg/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// TokenService issues JWT access tokens and opaque refresh tokens, and
// verifies Google ID tokens for the external sign-in flow.
type TokenService struct {
	cfg         *config.Config
	profileRepo portsrepo.ProfileRepositoryFacade
	oauthConfig *oauth2.Config

	// googleValidate is swappable in tests; defaults to idtoken.Validate.
	googleValidate func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

func NewTokenService(cfg *config.Config, profileRepo portsrepo.ProfileRepositoryFacade) *TokenService {
	return &TokenService{
		cfg:         cfg,
		profileRepo: profileRepo,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		googleValidate: idtoken.Validate,
	}
}

var _ portssvc.TokenSvcFacade = (*TokenService)(nil)

func (s *TokenService) GenerateAccessToken(ctx context.Context, profile *domain.Profile) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(profile.ProfileID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, nil
}

// GenerateRefreshToken creates an opaque refresh token and stores its hash
// on the profile, rotating out any previous token.
func (s *TokenService) GenerateRefreshToken(ctx context.Context, profile *domain.Profile) (string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	token, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	hash := utils.HashRefreshToken(token)
	expiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.profileRepo.UpdateRefreshToken(ctx, profile.ProfileID, &hash, &expiry); err != nil {
		logger.Error("Failed to store refresh token", slog.String("error", err.Error()), slog.String("profile_id", profile.ProfileID))
		return "", time.Time{}, err
	}

	return token, expiry, nil
}

// ValidateAndParseRefreshToken checks the presented refresh token against
// the stored hash and expiry. Any mismatch maps to ErrUnauthorized.
func (s *TokenService) ValidateAndParseRefreshToken(ctx context.Context, profileID string, refreshToken string) (*domain.Profile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to load profile for refresh", slog.String("error", err.Error()), slog.String("profile_id", profileID))
		return nil, err
	}

	if profile.RefreshTokenHash == nil || profile.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*profile.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(refreshToken, *profile.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return profile, nil
}

// ValidateGoogleIDToken verifies the token signature and audience against
// the configured client ID and extracts the identity claims.
func (s *TokenService) ValidateGoogleIDToken(ctx context.Context, idTokenStr string) (*portssvc.GoogleIdentity, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("google sign-in is not configured")
	}

	payload, err := s.googleValidate(ctx, idTokenStr, s.cfg.GoogleClientID)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		return nil, apperrors.ErrUnauthorized
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, apperrors.ErrUnauthorized
	}
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = email
	}

	return &portssvc.GoogleIdentity{Email: email, FullName: name}, nil
}

// ExchangeGoogleCode redeems an OAuth authorization code and returns the ID
// token from Google's response. The caller validates it separately.
func (s *TokenService) ExchangeGoogleCode(ctx context.Context, code string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.cfg.GoogleClientID == "" || s.cfg.GoogleClientSecret == "" {
		return "", fmt.Errorf("google sign-in is not configured")
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		return "", apperrors.ErrUnauthorized
	}

	idTokenStr, ok := token.Extra("id_token").(string)
	if !ok || idTokenStr == "" {
		logger.Error("Google token response carried no ID token")
		return "", apperrors.ErrUnauthorized
	}
	return idTokenStr, nil
}
