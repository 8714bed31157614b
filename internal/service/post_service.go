package service

import (
	"context"
	"strings"
	"time"

	"socialpulse/internal/models"
	"socialpulse/internal/repository"
	"socialpulse/internal/transfer"
)

type PostService interface {
	Create(ctx context.Context, userID int64, accountID int64, content string) (*models.Post, error)
	List(ctx context.Context, userID, accountID int64, limit, offset int) ([]*models.Post, int, error)
	Update(ctx context.Context, userID, postID int64, req *transfer.UpdatePostRequest) (*models.Post, error)
	Trending(ctx context.Context, userID int64, limit int) ([]*models.Post, error)
}

type postService struct {
	pr repository.PostRepository
	sa repository.SocialAccountRepository
}

func NewPostService(pr repository.PostRepository, sa repository.SocialAccountRepository) PostService {
	return &postService{pr: pr, sa: sa}
}

func (s *postService) Create(ctx context.Context, userID int64, accountID int64, content string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" || accountID == 0 {
		return nil, ErrMissingFields
	}

	owned, err := s.sa.CheckByUserID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrForbidden
	}

	sentiment, score, _ := ScoreSentiment(content)

	post := &models.Post{
		UserID:    userID,
		AccountID: accountID,
		Content:   content,
		PostDate:  time.Now(),
		Sentiment: sentiment,
		AIScore:   score,
		Keywords:  strings.Join(ExtractKeywords(content, 5), ","),
	}

	id, err := s.pr.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id
	return post, nil
}

func (s *postService) List(ctx context.Context, userID, accountID int64, limit, offset int) ([]*models.Post, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.pr.ListByUserID(ctx, userID, accountID, limit, offset)
}

func (s *postService) Update(ctx context.Context, userID, postID int64, req *transfer.UpdatePostRequest) (*models.Post, error) {
	post, exists, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	if post.UserID != userID {
		return nil, ErrForbidden
	}

	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Likes != nil {
		post.Likes = *req.Likes
	}
	if req.Comments != nil {
		post.Comments = *req.Comments
	}
	if req.Shares != nil {
		post.Shares = *req.Shares
	}

	if err := s.pr.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Trending(ctx context.Context, userID int64, limit int) ([]*models.Post, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.pr.ListTrendingByUserID(ctx, userID, limit)
}
