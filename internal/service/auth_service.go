package service

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	config "socialpulse/configs"
	"socialpulse/internal/models"
	"socialpulse/internal/repository"
	"socialpulse/pkg/utils"
)

const tokenDuration = 30 * 24 * time.Hour

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

type authService struct {
	cfg config.Config
	u   repository.UserRepository
}

func NewAuthService(cfg config.Config, u repository.UserRepository) AuthService {
	return &authService{
		cfg: cfg,
		u:   u,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return "", nil, ErrMissingFields
	}
	if !ValidUsername(username) {
		return "", nil, ErrInvalidUsername
	}
	if !ValidEmail(email) {
		return "", nil, ErrInvalidEmail
	}
	if len(password) < 8 {
		return "", nil, ErrWeakPassword
	}

	if _, exists, err := s.u.GetByUsername(ctx, username); err != nil {
		return "", nil, err
	} else if exists {
		return "", nil, ErrDuplicateUsername
	}
	if _, exists, err := s.u.GetByEmail(ctx, email); err != nil {
		return "", nil, err
	} else if exists {
		return "", nil, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	userID, err := s.u.Create(ctx, user)
	if err != nil {
		slog.Info(err.Error())
		return "", nil, err
	}
	user.ID = userID

	token, err := utils.GenerateToken(s.cfg.JWTSecret, user.ID, user.Username, user.Email, tokenDuration)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, ErrMissingFields
	}

	user, exists, err := s.u.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if !exists || !utils.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.cfg.JWTSecret, user.ID, user.Username, user.Email, tokenDuration)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ValidUsername reports whether username is 3-50 chars of letters, digits,
// underscores or hyphens.
func ValidUsername(username string) bool {
	if len(username) < 3 || len(username) > 50 {
		return false
	}
	for _, c := range username {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
