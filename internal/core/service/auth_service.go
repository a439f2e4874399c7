package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/martijn/trainhub/internal/adapter/apiclient"
	"github.com/martijn/trainhub/internal/api/dto"
	"github.com/martijn/trainhub/internal/core/domain"
	"github.com/martijn/trainhub/internal/core/mapper"
	"github.com/martijn/trainhub/internal/core/repository"
)

var ErrNotLoggedIn = errors.New("not logged in")

// Identity is what a stored token says about its holder. It is read
// without verifying the signature, which only the backend can do.
type Identity struct {
	UserID    int64
	Email     string
	Role      string
	ExpiresAt *time.Time
}

// Expired reports whether the token is past its expiry at now.
func (i Identity) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && !now.Before(*i.ExpiresAt)
}

// AuthService manages the login session of the local user.
type AuthService struct {
	api   *apiclient.Client
	creds repository.CredentialRepository
}

func NewAuthService(api *apiclient.Client, creds repository.CredentialRepository) *AuthService {
	return &AuthService{api: api, creds: creds}
}

// Login authenticates and stores the returned token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	resp, err := s.api.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return s.store(ctx, resp)
}

// Register creates an account and stores the returned token.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.store(ctx, resp)
}

func (s *AuthService) store(ctx context.Context, resp dto.AuthResponse) (*domain.User, error) {
	if strings.TrimSpace(resp.AccessToken) == "" {
		return nil, &apiclient.Error{Kind: apiclient.KindInvalidData, Err: errors.New("empty access token")}
	}
	if err := s.creds.Set(ctx, apiclient.TokenKey, resp.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	if resp.User == nil {
		return nil, nil
	}
	user := mapper.UserToDomain(*resp.User)
	return &user, nil
}

// Logout forgets the stored token.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.creds.Delete(ctx, apiclient.TokenKey); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// Whoami decodes the stored token.
func (s *AuthService) Whoami() (*Identity, error) {
	token, ok := s.creds.Get(apiclient.TokenKey)
	if !ok || token == "" {
		return nil, ErrNotLoggedIn
	}

	var claims TokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	id := &Identity{
		UserID: claims.UserID(),
		Email:  claims.Email,
		Role:   claims.Role,
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		id.ExpiresAt = &exp
	}
	return id, nil
}
