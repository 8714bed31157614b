package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialpulse/internal/models"
	"socialpulse/internal/transfer"
)

func TestCreatePostScoresContent(t *testing.T) {
	posts := &fakePostRepo{}
	accounts := &fakeAccountRepo{accounts: []*models.SocialAccount{
		{ID: 2, UserID: 1, Platform: "instagram"},
	}}
	svc := NewPostService(posts, accounts)

	post, err := svc.Create(context.Background(), 1, 2, "Amazing launch of our golang backend today")
	require.NoError(t, err)

	assert.Equal(t, int64(42), post.ID)
	assert.Equal(t, models.SentimentPositive, post.Sentiment)
	assert.InDelta(t, 0.8, post.AIScore, 0.001)
	assert.Contains(t, post.Keywords, "golang")
}

func TestCreatePostRejectsForeignAccount(t *testing.T) {
	svc := NewPostService(&fakePostRepo{}, &fakeAccountRepo{})

	_, err := svc.Create(context.Background(), 1, 2, "some content")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreatePostRequiresContent(t *testing.T) {
	svc := NewPostService(&fakePostRepo{}, &fakeAccountRepo{})

	_, err := svc.Create(context.Background(), 1, 2, "   ")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestUpdatePostAppliesPartialFields(t *testing.T) {
	posts := &fakePostRepo{posts: []*models.Post{
		testPost(9, 2, 10, 3, 1, "original"),
	}}
	svc := NewPostService(posts, &fakeAccountRepo{})

	likes := 99
	post, err := svc.Update(context.Background(), 1, 9, &transfer.UpdatePostRequest{Likes: &likes})
	require.NoError(t, err)

	assert.Equal(t, 99, post.Likes)
	assert.Equal(t, "original", post.Content)
	assert.Equal(t, 3, post.Comments)
	require.NotNil(t, posts.updated)
}

func TestUpdatePostOwnership(t *testing.T) {
	other := testPost(9, 2, 0, 0, 0, "not yours")
	other.UserID = 2
	posts := &fakePostRepo{posts: []*models.Post{other}}
	svc := NewPostService(posts, &fakeAccountRepo{})

	_, err := svc.Update(context.Background(), 1, 9, &transfer.UpdatePostRequest{})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(context.Background(), 1, 404, &transfer.UpdatePostRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}
