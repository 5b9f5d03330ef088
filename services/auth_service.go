package services

import (
	"context"

	"github.com/dendisetiawann/kejora-frontend/libs"
	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/repositories"
)

// AuthService proxies staff login to the upstream API and keeps the issued
// bearer token in session-scoped storage. The token itself is opaque; all
// credential verification happens upstream.
type AuthService struct {
	api           *libs.KejoraAPI
	tokens        *repositories.TokenRepository
	notifications *NotificationService
}

func NewAuthService(api *libs.KejoraAPI, tokens *repositories.TokenRepository, notifications *NotificationService) *AuthService {
	return &AuthService{
		api:           api,
		tokens:        tokens,
		notifications: notifications,
	}
}

func (s *AuthService) Login(ctx context.Context, sessionID string, req models.LoginRequest) (*models.LoginResponse, error) {
	// A login attempt means the session is on the login screen; any running
	// poller belongs to a previous staff-area visit.
	s.notifications.Stop(sessionID)

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Set(ctx, sessionID, resp.Token); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	s.notifications.Stop(sessionID)
	return s.tokens.Clear(ctx, sessionID)
}

// Me resolves the logged-in staff profile. An upstream rejection discards
// the stored token so the caller is redirected to login.
func (s *AuthService) Me(ctx context.Context, sessionID string) (*models.User, error) {
	user, err := s.api.Me(ctx)
	if err != nil {
		if libs.IsUnauthorized(err) {
			s.notifications.Stop(sessionID)
			if clearErr := s.tokens.Clear(ctx, sessionID); clearErr != nil {
				return nil, clearErr
			}
		}
		return nil, err
	}
	return user, nil
}

// HasToken reports whether the session holds a stored bearer token.
func (s *AuthService) HasToken(ctx context.Context, sessionID string) (bool, error) {
	token, err := s.tokens.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// DiscardToken drops the stored token, used when any admin call reports the
// token rejected.
func (s *AuthService) DiscardToken(ctx context.Context, sessionID string) error {
	s.notifications.Stop(sessionID)
	return s.tokens.Clear(ctx, sessionID)
}
