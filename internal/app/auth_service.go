// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"nutritrack/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsersExist indicates that the initial user was already created.
	ErrUsersExist = errors.New("users already exist")
	// ErrNotFound indicates that a requested record does not exist.
	ErrNotFound = errors.New("not found")
)

// SessionTTL is how long a login stays valid.
const SessionTTL = 24 * time.Hour

// AuthService handles authentication and session management.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Login authenticates a user and creates a session.
func (s *AuthService) Login(ctx context.Context, username, password, userAgent, ip string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.startSession(ctx, user.ID, userAgent, ip)
}

// startSession mints a token and stores a session valid for SessionTTL.
func (s *AuthService) startSession(ctx context.Context, userID int64, userAgent, ip string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Create(ctx, userID, token, userAgent, ip, time.Now().Add(SessionTTL)); err != nil {
		return "", err
	}
	return token, nil
}

// Logout invalidates a session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession checks if a session token is valid and matches the user agent.
func (s *AuthService) ValidateSession(ctx context.Context, token, userAgent string) (*domain.User, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil || session == nil {
		return nil, ErrSessionNotFound
	}

	// A session replayed from another client is treated as expired.
	if session.Expired(time.Now()) || session.UserAgent != userAgent {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil || user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// CreateInitialUser creates the first user if no users exist.
func (s *AuthService) CreateInitialUser(ctx context.Context, username, password string) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrUsersExist
	}
	if username == "" || len(password) < 8 {
		return invalidf("username is required and password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.users.Create(ctx, username, string(hash))
	return err
}

// ValidateForwardAuth validates a request from Authelia forward auth.
// It checks for the Remote-User header set by Authelia.
func (s *AuthService) ValidateForwardAuth(ctx context.Context, remoteUser string) (*domain.User, error) {
	if remoteUser == "" {
		return nil, errors.New("no remote user header")
	}

	user, err := s.users.GetByUsername(ctx, remoteUser)
	if err != nil || user == nil {
		// Auto-create user from SSO if they don't exist
		user, err = s.users.Create(ctx, remoteUser, "")
		if err != nil {
			return nil, err
		}
	}

	return user, nil
}

// LoginWithUser creates a session for an already authenticated user (e.g. via SSO).
func (s *AuthService) LoginWithUser(ctx context.Context, username, userAgent, ip string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		// Auto-provision with an empty password hash; SSO users never log in
		// with a password.
		user, err = s.users.Create(ctx, username, "")
		if err != nil {
			// Lost a race on the unique constraint
			user, err = s.users.GetByUsername(ctx, username)
			if err != nil {
				return "", err
			}
			if user == nil {
				return "", ErrUserNotFound
			}
		}
	}

	return s.startSession(ctx, user.ID, userAgent, ip)
}

// PurgeSessions deletes expired sessions every interval until ctx is done.
// Errors are passed to onErr and do not stop the loop.
func (s *AuthService) PurgeSessions(ctx context.Context, interval time.Duration, onErr func(error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.sessions.DeleteExpired(ctx); err != nil && onErr != nil {
				onErr(err)
			}
		}
	}
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
