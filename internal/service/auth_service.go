// Package service contains the business logic behind the HTTP layer:
// authentication and session validation, directory management, and the
// Gravatar profile proxy.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/apperr"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/config"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/models"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/repository"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/security"
)

// invalidCredentials is the one message every credential failure shares, so a
// caller cannot tell an unknown email from a wrong password.
const invalidCredentials = "invalid email or password"

// CredentialStore is the slice of the user repository the authenticator needs.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByEmployeeNumber(ctx context.Context, employeeNumber string) (models.User, error)
	FindByToken(ctx context.Context, token string) (models.User, error)
	SetCredentials(ctx context.Context, employeeNumber, email, passwordHash string) error
	SetSessionToken(ctx context.Context, email, token string, expiry time.Time) error
	ClearSessionToken(ctx context.Context, token string) error
}

// RoleResolver resolves an employee's role name for the login response.
type RoleResolver interface {
	RoleNameForEmployee(ctx context.Context, employeeNumber string) (string, error)
}

type AuthService struct {
	store    CredentialStore
	roles    RoleResolver
	tokenTTL time.Duration
	cost     int
	log      zerolog.Logger
}

func NewAuthService(store CredentialStore, roles RoleResolver, cfg config.SecurityConfig, log zerolog.Logger) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	return &AuthService{
		store:    store,
		roles:    roles,
		tokenTTL: ttl,
		cost:     cfg.BcryptCost,
		log:      log,
	}
}

type LoginResult struct {
	Token     string
	Role      string
	ExpiresAt time.Time
}

// Login verifies email and password against the credential store and, on
// success, issues a fresh session token valid for the configured window,
// overwriting any prior token for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return LoginResult{}, apperr.Validation("email and password are required")
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, apperr.Auth(invalidCredentials)
		}
		return LoginResult{}, apperr.Storage("find user", err)
	}

	if user.PasswordHash == "" {
		// Provisioned but never registered; indistinguishable from a bad
		// password on the wire.
		return LoginResult{}, apperr.Auth(invalidCredentials)
	}

	secret := security.CombineSecret(password, email, user.EmployeeNumber)
	match, err := s.verifySecret(secret, user.PasswordHash)
	if err != nil {
		return LoginResult{}, apperr.Storage("verify password", err)
	}
	if !match {
		return LoginResult{}, apperr.Auth(invalidCredentials)
	}

	roleName, err := s.roles.RoleNameForEmployee(ctx, user.EmployeeNumber)
	if err != nil {
		return LoginResult{}, apperr.Storage("resolve role", err)
	}

	token, err := security.NewSessionToken()
	if err != nil {
		return LoginResult{}, apperr.Storage("issue token", err)
	}
	expiry := time.Now().Add(s.tokenTTL)

	if err := s.store.SetSessionToken(ctx, email, token, expiry); err != nil {
		return LoginResult{}, apperr.Storage("persist token", err)
	}

	s.log.Info().Str("employee_number", user.EmployeeNumber).Time("expiry", expiry).Msg("session issued")

	return LoginResult{Token: token, Role: roleName, ExpiresAt: expiry}, nil
}

// Register completes self-registration for a provisioned credential record.
// Calling it twice for the same employee number deterministically fails; it
// never overwrites existing credentials.
func (s *AuthService) Register(ctx context.Context, employeeNumber, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if employeeNumber == "" || email == "" || password == "" {
		return apperr.Validation("employee number, email and password are required")
	}

	user, err := s.store.FindByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperr.NotFound("no account is provisioned for this employee number")
		}
		return apperr.Storage("find user", err)
	}

	if user.Registered() {
		return apperr.Conflict("user already exists")
	}

	secret := security.CombineSecret(password, email, employeeNumber)
	hash, err := security.HashSecret(secret, s.cost)
	if err != nil {
		return apperr.Storage("hash password", err)
	}

	if err := s.store.SetCredentials(ctx, employeeNumber, email, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperr.NotFound("no account is provisioned for this employee number")
		}
		if apperr.KindOf(err) == apperr.KindConflict {
			return apperr.Conflict("user already exists")
		}
		return apperr.Storage("save credentials", err)
	}

	s.log.Info().Str("employee_number", employeeNumber).Msg("user registered")
	return nil
}

// CheckRegistrationEligibility reports whether a credential record exists for
// the employee number with no email and no password set. Informational only:
// Register re-validates, so this is not a security boundary.
func (s *AuthService) CheckRegistrationEligibility(ctx context.Context, employeeNumber string) (bool, error) {
	if employeeNumber == "" {
		return false, apperr.Validation("employee number is required")
	}

	user, err := s.store.FindByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, apperr.Storage("find user", err)
	}

	return !user.Registered(), nil
}

type TokenStatus struct {
	Valid  bool
	Expiry time.Time
}

// ValidateToken reports whether a session token is live. An unknown token and
// an expired one produce the same result shape; the caller cannot tell them
// apart. Never mutates state.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (TokenStatus, error) {
	if token == "" {
		return TokenStatus{}, nil
	}

	user, err := s.store.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TokenStatus{}, nil
		}
		return TokenStatus{}, apperr.Storage("find token", err)
	}

	if user.TokenExpiry == nil || !user.TokenExpiry.After(time.Now()) {
		return TokenStatus{}, nil
	}

	return TokenStatus{Valid: true, Expiry: *user.TokenExpiry}, nil
}

// Logout revokes a token server-side by clearing it from the record. Without
// it a discarded token would stay valid until natural expiry. Revoking an
// unknown token succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.store.ClearSessionToken(ctx, token); err != nil {
		return apperr.Storage("clear token", err)
	}
	return nil
}

func (s *AuthService) verifySecret(secret, hash string) (bool, error) {
	return security.VerifySecret(secret, hash)
}
