package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/config"
	"github.com/tlodholz/OpsReadyAPI/internal/dto"
	"github.com/tlodholz/OpsReadyAPI/internal/model"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
	pkgerrors "github.com/tlodholz/OpsReadyAPI/pkg/errors"
	"github.com/tlodholz/OpsReadyAPI/pkg/jwt"
	"github.com/tlodholz/OpsReadyAPI/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserInactive       = errors.New("account is disabled")
)

const (
	defaultRole       = "User"
	defaultBadgeLevel = "Level1"
)

// AuthService account and token operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
}

// tokenBlacklist the part of the redis client logout needs
type tokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

type authService struct {
	cfg       *config.Config
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	blacklist tokenBlacklist
	logger    *zap.Logger
}

// NewAuthService creates an AuthService; rdb may be nil
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	s := &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		logger: logger,
	}
	if rdb != nil {
		s.blacklist = rdb
	}
	return s
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	// 1. username must be free
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("failed to look up username", zap.Error(err))
		return nil, err
	}

	// 2. hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	// 3. persist with defaults
	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		BadgeLevel:   req.BadgeLevel,
		IsActive:     true,
		CreatedAt:    UTCNow(),
	}
	if user.Role == "" {
		user.Role = defaultRole
	}
	if user.BadgeLevel == "" {
		user.BadgeLevel = defaultBadgeLevel
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.UserID), zap.String("username", user.Username))
	resp := toUserResponse(user)
	return &resp, nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	// 1. load user
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to load user", zap.Error(err))
		return nil, err
	}

	// 2. verify password (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 3. issue token
	role := user.Role
	if role == "" {
		role = defaultRole
	}
	token, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Username, role)
	if err != nil {
		s.logger.Error("failed to sign access token", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		Username:  user.Username,
		Role:      role,
		ExpiresIn: int(s.cfg.Auth.AccessTokenTTL.Seconds()),
	}, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.blacklist == nil {
		s.logger.Warn("redis unavailable, token not revoked", zap.String("jti", jti))
		return nil
	}
	if err := s.blacklist.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Error("failed to revoke token", zap.String("jti", jti), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ListUsers ──────────────────────

func (s *authService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result, nil
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:     u.UserID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		BadgeLevel: u.BadgeLevel,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}
