package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driven"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface
type authService struct {
	userStore    driven.UserStore
	sessionStore driven.SessionStore
	authAdapter  driven.AuthAdapter
	idGen        driven.IDGenerator
	tokenTTL     time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userStore driven.UserStore,
	sessionStore driven.SessionStore,
	authAdapter driven.AuthAdapter,
	idGen driven.IDGenerator,
) driving.AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
		authAdapter:  authAdapter,
		idGen:        idGen,
		tokenTTL:     24 * time.Hour,
	}
}

// Authenticate validates credentials and creates a session
func (s *authService) Authenticate(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, domain.ErrUnauthorized
	}

	if !s.authAdapter.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.createSession(ctx, user)
}

// ValidateToken validates a JWT token and returns the auth context
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if time.Now().Unix() > claims.ExpiresAt {
		return nil, domain.ErrTokenExpired
	}

	session, err := s.sessionStore.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	if session.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	return &domain.AuthContext{
		UserID:    claims.UserID,
		Email:     claims.Email,
		SessionID: claims.SessionID,
	}, nil
}

// RefreshToken generates a new token from a valid refresh token
func (s *authService) RefreshToken(ctx context.Context, req domain.RefreshRequest) (*domain.LoginResponse, error) {
	if req.RefreshToken == "" {
		return nil, domain.ErrTokenInvalid
	}

	session, err := s.sessionStore.GetByRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if session.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	user, err := s.userStore.Get(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	// Rotate: old session is replaced by a fresh one
	_ = s.sessionStore.Delete(ctx, session.ID)

	return s.createSession(ctx, user)
}

// Logout invalidates a session
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return nil // Already invalid, nothing to do
	}

	return s.sessionStore.Delete(ctx, claims.SessionID)
}

// LogoutAll invalidates all sessions for a user
func (s *authService) LogoutAll(ctx context.Context, userID string) error {
	return s.sessionStore.DeleteByUser(ctx, userID)
}

// createSession issues a token pair and persists the session
func (s *authService) createSession(ctx context.Context, user *domain.User) (*domain.LoginResponse, error) {
	sessionID := s.idGen.NewSessionID()
	claims := &domain.TokenClaims{
		UserID:    user.ID,
		Email:     user.Email,
		SessionID: sessionID,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(s.tokenTTL).Unix(),
	}

	token, err := s.authAdapter.GenerateToken(claims)
	if err != nil {
		return nil, err
	}

	refreshToken := generateRefreshToken()
	expiresAt := time.Now().Add(s.tokenTTL)

	session := &domain.Session{
		ID:           sessionID,
		UserID:       user.ID,
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		CreatedAt:    time.Now(),
	}

	if err := s.sessionStore.Save(ctx, session); err != nil {
		return nil, err
	}

	_ = s.userStore.UpdateLastLogin(ctx, user.ID)

	return &domain.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         user.ToSummary(),
	}, nil
}

func generateRefreshToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
