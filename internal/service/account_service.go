package service

import (
	"context"
	"log/slog"
	"strings"

	"socialpulse/internal/models"
	"socialpulse/internal/repository"
	"socialpulse/pkg/utils"
)

type AccountService interface {
	Connect(ctx context.Context, userID int64, platform, accountName string) (*models.SocialAccount, error)
	List(ctx context.Context, userID int64) ([]*models.SocialAccount, error)
	Disconnect(ctx context.Context, userID, accountID int64) error
}

type accountService struct {
	sa repository.SocialAccountRepository
	ac repository.AnalyticsCacheRepository
}

func NewAccountService(sa repository.SocialAccountRepository, ac repository.AnalyticsCacheRepository) AccountService {
	return &accountService{sa: sa, ac: ac}
}

func (s *accountService) Connect(ctx context.Context, userID int64, platform, accountName string) (*models.SocialAccount, error) {
	platform = strings.ToLower(strings.TrimSpace(platform))
	accountName = strings.TrimSpace(accountName)

	if platform == "" || accountName == "" {
		return nil, ErrMissingFields
	}
	if !models.IsSupportedPlatform(platform) {
		return nil, ErrUnsupportedPlatform
	}

	token, err := utils.NewAccessToken()
	if err != nil {
		return nil, err
	}

	account := &models.SocialAccount{
		UserID:      userID,
		Platform:    platform,
		AccountName: accountName,
		AccessToken: token,
	}

	id, err := s.sa.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	account.ID = id
	return account, nil
}

func (s *accountService) List(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	return s.sa.ListByUserID(ctx, userID)
}

func (s *accountService) Disconnect(ctx context.Context, userID, accountID int64) error {
	account, exists, err := s.sa.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	if account.UserID != userID {
		return ErrForbidden
	}

	// Cache rows cascade-delete with the account, but clear them explicitly
	// so a recompute running in the same window cannot resurrect one.
	if err := s.ac.RemoveByAccountID(ctx, accountID); err != nil {
		slog.Info(err.Error())
	}

	return s.sa.Remove(ctx, accountID)
}
