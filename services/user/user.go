package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/user"
	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

const tokenTTL = 72 * time.Hour

// ErrInvalidCredentials is returned when email/password do not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserService handles accounts and authentication.
type UserService interface {
	Register(ctx context.Context, user models.User, password string) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
	RevokeToken(ctx context.Context, id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account and returns a signed token.
func (s *DefaultUserService) Register(ctx context.Context, user models.User, password string) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if existing, _ := s.Repo.GetByEmail(ctx, user.Email); existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", user.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	id, err := s.Repo.Create(ctx, user)
	if err != nil {
		logger.Error("failed to create user", zap.String("email", user.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	created, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.issueToken(ctx, created)
}

// Authenticate verifies credentials and returns a signed token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		logger.Warn("authentication for unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, u)
}

func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	hash := utils.HashToken(token)

	// The persisted hash is the source of truth for revocation; the cache
	// only saves the auth middleware a DB round trip.
	if err := s.Repo.UpdateTokenHash(ctx, u.ID, hash); err != nil {
		return nil, fmt.Errorf("failed to persist token hash: %w", err)
	}
	u.TokenHash = hash

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(ctx, utils.AuthCachePrefix+u.ID, hash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache auth token", zap.String("userId", u.ID), zap.Error(err))
	}

	return &models.AuthResponse{Token: token, User: *u}, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, id, token string) error {
	return s.Repo.UpdateFCMToken(ctx, id, token)
}

// RevokeToken clears the persisted token hash and the cache entry, forcing
// re-authentication. The persisted hash is cleared first so a replayed token
// cannot repopulate the cache through the middleware's fallback lookup.
func (s *DefaultUserService) RevokeToken(ctx context.Context, id string) error {
	if err := s.Repo.UpdateTokenHash(ctx, id, ""); err != nil {
		return err
	}
	return utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+id).Err()
}
