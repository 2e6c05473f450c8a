package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"feedreader-api/core/domain"
	coreerrors "feedreader-api/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testFeed(userID string) *domain.Feed {
	now := time.Now()
	return &domain.Feed{
		ID:          "feed-1",
		UserID:      userID,
		URL:         "https://example.com/feed.xml",
		Title:       "Test Blog",
		Description: "a blog",
		CreatedAt:   now,
		RefreshedAt: now,
	}
}

func TestFeedStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Feeds.Save(ctx, testFeed("user-1")))

	got, err := store.Feeds.GetByID(ctx, "user-1", "feed-1")
	require.NoError(t, err)
	assert.Equal(t, "Test Blog", got.Title)
	assert.Equal(t, "https://example.com/feed.xml", got.URL)

	byURL, err := store.Feeds.GetByURL(ctx, "user-1", "https://example.com/feed.xml")
	require.NoError(t, err)
	assert.Equal(t, "feed-1", byURL.ID)
}

func TestFeedStore_OwnershipEnforced(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Feeds.Save(ctx, testFeed("user-1")))

	_, err := store.Feeds.GetByID(ctx, "user-2", "feed-1")
	assert.True(t, coreerrors.IsNotFound(err), "foreign feed must look like not-found")

	err = store.Feeds.SoftDelete(ctx, "user-2", "feed-1")
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestFeedStore_SoftDeleteHidesFeed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Feeds.Save(ctx, testFeed("user-1")))
	require.NoError(t, store.Feeds.SoftDelete(ctx, "user-1", "feed-1"))

	_, err := store.Feeds.GetByID(ctx, "user-1", "feed-1")
	assert.True(t, coreerrors.IsNotFound(err))

	feeds, err := store.Feeds.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, feeds)

	// Soft-deleted, so re-deleting is not-found too
	err = store.Feeds.SoftDelete(ctx, "user-1", "feed-1")
	assert.True(t, coreerrors.IsNotFound(err))
}

func testArticle(id, link string) domain.Article {
	return domain.Article{
		ID:        id,
		FeedID:    "feed-1",
		Title:     "Article " + id,
		Link:      link,
		PubDate:   "Mon, 06 Sep 2021 16:45:00 +0000",
		Source:    "Test Blog",
		CreatedAt: time.Now(),
	}
}

func TestArticleStore_SaveAllAndExistingLinks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Feeds.Save(ctx, testFeed("user-1")))
	require.NoError(t, store.Articles.SaveAll(ctx, []domain.Article{
		testArticle("a1", "https://example.com/1"),
		testArticle("a2", "https://example.com/2"),
	}))

	existing, err := store.Articles.ExistingLinks(ctx, "feed-1", []string{
		"https://example.com/1",
		"https://example.com/2",
		"https://example.com/3",
	})
	require.NoError(t, err)
	assert.True(t, existing["https://example.com/1"])
	assert.True(t, existing["https://example.com/2"])
	assert.False(t, existing["https://example.com/3"])
}

func TestArticleStore_ListByFeedIncludesTags(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Feeds.Save(ctx, testFeed("user-1")))
	require.NoError(t, store.Articles.SaveAll(ctx, []domain.Article{
		testArticle("a1", "https://example.com/1"),
	}))
	require.NoError(t, store.Tags.Save(ctx, &domain.Tag{ID: "t1", UserID: "user-1", Name: "golang"}))
	require.NoError(t, store.Tags.Assign(ctx, "user-1", "a1", "t1"))

	articles, err := store.Articles.ListByFeed(ctx, "feed-1")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, []string{"golang"}, articles[0].Tags)
}

func TestArticleStore_ReadFlags(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Feeds.Save(ctx, testFeed("user-1")))
	require.NoError(t, store.Articles.SaveAll(ctx, []domain.Article{
		testArticle("a1", "https://example.com/1"),
	}))

	require.NoError(t, store.Articles.SetRead(ctx, "user-1", "a1", true))
	require.NoError(t, store.Articles.SetReadLater(ctx, "user-1", "a1", true))

	got, err := store.Articles.GetByID(ctx, "user-1", "a1")
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	assert.True(t, got.IsReadLater)

	// Foreign user cannot flip flags
	err = store.Articles.SetRead(ctx, "user-2", "a1", false)
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestTagStore_DeleteRemovesAssignments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Feeds.Save(ctx, testFeed("user-1")))
	require.NoError(t, store.Articles.SaveAll(ctx, []domain.Article{
		testArticle("a1", "https://example.com/1"),
	}))

	tag := &domain.Tag{ID: "t1", UserID: "user-1", Name: "news"}
	require.NoError(t, store.Tags.Save(ctx, tag))
	require.NoError(t, store.Tags.Assign(ctx, "user-1", "a1", "t1"))

	require.NoError(t, store.Tags.Delete(ctx, "user-1", "t1"))

	tags, err := store.Tags.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, tags)

	articles, err := store.Articles.ListByFeed(ctx, "feed-1")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Empty(t, articles[0].Tags)
}

func TestTagStore_ForeignTagNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Tags.Save(ctx, &domain.Tag{ID: "t1", UserID: "user-1", Name: "news"}))

	err := store.Tags.Assign(ctx, "user-2", "a1", "t1")
	assert.True(t, coreerrors.IsNotFound(err))

	err = store.Tags.Delete(ctx, "user-2", "t1")
	assert.True(t, coreerrors.IsNotFound(err))
}
