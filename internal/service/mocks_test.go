package service

import (
	"context"
	"time"

	"socialpulse/internal/models"
)

type fakeUserRepo struct {
	users   []*models.User
	created *models.User
	err     error
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, bool, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, true, f.err
		}
	}
	return nil, false, f.err
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, true, f.err
		}
	}
	return nil, false, f.err
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, bool, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, true, f.err
		}
	}
	return nil, false, f.err
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = user
	return 1, nil
}

func (f *fakeUserRepo) Remove(ctx context.Context, id int64) error { return f.err }

type fakeAccountRepo struct {
	accounts []*models.SocialAccount
	created  *models.SocialAccount
	removed  []int64
	err      error
}

func (f *fakeAccountRepo) Create(ctx context.Context, sa *models.SocialAccount) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = sa
	return 7, nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id int64) (*models.SocialAccount, bool, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return a, true, f.err
		}
	}
	return nil, false, f.err
}

func (f *fakeAccountRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.SocialAccount, error) {
	return f.accounts, f.err
}

func (f *fakeAccountRepo) CheckByUserID(ctx context.Context, accountID, userID int64) (bool, error) {
	for _, a := range f.accounts {
		if a.ID == accountID && a.UserID == userID {
			return true, f.err
		}
	}
	return false, f.err
}

func (f *fakeAccountRepo) Remove(ctx context.Context, id int64) error {
	f.removed = append(f.removed, id)
	return f.err
}

type fakePostRepo struct {
	posts   []*models.Post
	created *models.Post
	updated *models.Post
	err     error
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = post
	return 42, nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id int64) (*models.Post, bool, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, true, f.err
		}
	}
	return nil, false, f.err
}

func (f *fakePostRepo) ListByUserID(ctx context.Context, userID, accountID int64, limit, offset int) ([]*models.Post, int, error) {
	return f.posts, len(f.posts), f.err
}

func (f *fakePostRepo) ListAllByUserID(ctx context.Context, userID int64) ([]*models.Post, error) {
	return f.posts, f.err
}

func (f *fakePostRepo) ListTrendingByUserID(ctx context.Context, userID int64, limit int) ([]*models.Post, error) {
	return f.posts, f.err
}

func (f *fakePostRepo) Update(ctx context.Context, post *models.Post) error {
	f.updated = post
	return f.err
}

type fakeCacheRepo struct {
	upserts []*models.AnalyticsCache
	removed []int64
	err     error
}

func (f *fakeCacheRepo) Upsert(ctx context.Context, row *models.AnalyticsCache) error {
	f.upserts = append(f.upserts, row)
	return f.err
}

func (f *fakeCacheRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.AnalyticsCache, error) {
	return nil, f.err
}

func (f *fakeCacheRepo) ListStale(ctx context.Context, olderThan time.Time) ([]*models.AnalyticsCache, error) {
	return nil, f.err
}

func (f *fakeCacheRepo) RemoveByAccountID(ctx context.Context, accountID int64) error {
	f.removed = append(f.removed, accountID)
	return f.err
}

func testPost(id, accountID int64, likes, comments, shares int, content string) *models.Post {
	return &models.Post{
		ID:        id,
		UserID:    1,
		AccountID: accountID,
		Content:   content,
		PostDate:  time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
		Likes:     likes,
		Comments:  comments,
		Shares:    shares,
	}
}
