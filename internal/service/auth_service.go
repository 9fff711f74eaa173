package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Naveen122004/portfolio-service/internal/auth"
	"github.com/Naveen122004/portfolio-service/internal/config"
	"github.com/Naveen122004/portfolio-service/internal/domain"
	"github.com/Naveen122004/portfolio-service/internal/repository"
	apperrors "github.com/Naveen122004/portfolio-service/pkg/util"
)

// AuthService coordinates registration, login and sign-out flows.
type AuthService struct {
	users               repository.UserRepository
	roles               repository.RoleRepository
	tokenMgr            *auth.TokenManager
	revoker             auth.TokenRevoker
	bcryptCost          int
	bootstrapAdminEmail string
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	RoleRepo repository.RoleRepository
	Revoker  auth.TokenRevoker
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:               deps.UserRepo,
		roles:               deps.RoleRepo,
		tokenMgr:            auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		revoker:             deps.Revoker,
		bcryptCost:          cfg.Auth.BcryptCost,
		bootstrapAdminEmail: cfg.Auth.BootstrapAdminEmail,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Register creates a new account. New accounts hold no roles; admin access
// requires a separate role grant.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("name", "name is required")
	}
	if email == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("email", "email is required")
	}
	if len(password) < 8 {
		return nil, "", time.Time{}, apperrors.NewValidationError("password", "password must be at least 8 characters")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if err != pgx.ErrNoRows {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates an account.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// SignOut revokes the presented token until its natural expiry.
func (s *AuthService) SignOut(ctx context.Context, claims *auth.Claims) error {
	if s.revoker == nil || claims == nil {
		return nil
	}
	return s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

// EnsureBootstrapAdmin grants the admin role to the configured bootstrap
// account. A missing account is not an error; the grant happens on the next
// startup after the account registers. The grant itself is idempotent.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context) error {
	email := strings.TrimSpace(s.bootstrapAdminEmail)
	if email == "" {
		return nil
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil
		}
		return err
	}
	return s.roles.Grant(ctx, user.ID, domain.RoleAdmin)
}

// IsAdmin re-derives admin eligibility from the role store.
func (s *AuthService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return s.roles.HasRole(ctx, userID, domain.RoleAdmin)
}
