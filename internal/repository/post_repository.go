package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"socialpulse/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, bool, error)
	ListByUserID(ctx context.Context, userID, accountID int64, limit, offset int) ([]*models.Post, int, error)
	ListAllByUserID(ctx context.Context, userID int64) ([]*models.Post, error)
	ListTrendingByUserID(ctx context.Context, userID int64, limit int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

const postColumns = `id, user_id, account_id, content, post_date, likes, comments, shares, impressions,
	followers_gained, followers_lost, sentiment, ai_score, keywords, created_at`

func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.UserID, &p.AccountID, &p.Content, &p.PostDate, &p.Likes, &p.Comments,
		&p.Shares, &p.Impressions, &p.FollowersGain, &p.FollowersLost, &p.Sentiment, &p.AIScore,
		&p.Keywords, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (user_id, account_id, content, post_date, likes, comments, shares, impressions, sentiment, ai_score, keywords)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, post.UserID, post.AccountID, post.Content, post.PostDate,
		post.Likes, post.Comments, post.Shares, post.Impressions, post.Sentiment, post.AIScore, post.Keywords).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, bool, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return post, true, nil
}

func (r *postRepository) ListByUserID(ctx context.Context, userID, accountID int64, limit, offset int) ([]*models.Post, int, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1`
	countQuery := `SELECT COUNT(*) FROM posts WHERE user_id = $1`
	args := []any{userID}

	if accountID != 0 {
		query += ` AND account_id = $2`
		countQuery += ` AND account_id = $2`
		args = append(args, accountID)
	}
	query += ` ORDER BY post_date DESC LIMIT ` + placeholder(len(args)+1) + ` OFFSET ` + placeholder(len(args)+2)

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		slog.Info(err.Error())
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, 0, err
	}
	defer rows.Close()

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) ListAllByUserID(ctx context.Context, userID int64) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 ORDER BY post_date`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *postRepository) ListTrendingByUserID(ctx context.Context, userID int64, limit int) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1
		ORDER BY likes + comments + shares DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET content = $1,
			likes = $2,
			comments = $3,
			shares = $4
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, post.Content, post.Likes, post.Comments, post.Shares, post.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func collectPosts(rows *sql.Rows) ([]*models.Post, error) {
	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return posts, nil
}

func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
