// ABOUTME: FeedStorage implementation over SQLite
// ABOUTME: Soft delete keeps rows and filters them out of every read path

package sqlite

import (
	"context"
	"database/sql"
	"time"

	"feedreader-api/core/domain"
	coreerrors "feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

var _ interfaces.FeedStorage = (*FeedStore)(nil)

// FeedStore implements feed persistence on the shared database handle.
type FeedStore struct {
	db *sql.DB
}

const feedColumns = "id, user_id, url, title, description, image_url, created_at, refreshed_at"

// Save persists a new feed subscription
func (s *FeedStore) Save(ctx context.Context, feed *domain.Feed) error {
	if err := feed.Validate(); err != nil {
		return &coreerrors.ValidationError{Field: "feed", Message: err.Error()}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feeds (id, user_id, url, title, description, image_url, created_at, refreshed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		feed.ID, feed.UserID, feed.URL, feed.Title, feed.Description, feed.ImageURL,
		feed.CreatedAt, feed.RefreshedAt)
	return err
}

// GetByID retrieves a feed owned by the user, excluding soft-deleted rows
func (s *FeedStore) GetByID(ctx context.Context, userID, id string) (*domain.Feed, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+feedColumns+` FROM feeds
		 WHERE id = ? AND user_id = ? AND deleted_at IS NULL`, id, userID)
	return scanFeed(row, id)
}

// GetByURL retrieves a feed by its source URL, excluding soft-deleted rows
func (s *FeedStore) GetByURL(ctx context.Context, userID, url string) (*domain.Feed, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+feedColumns+` FROM feeds
		 WHERE url = ? AND user_id = ? AND deleted_at IS NULL`, url, userID)
	return scanFeed(row, url)
}

// ListByUser returns all active subscriptions for a user
func (s *FeedStore) ListByUser(ctx context.Context, userID string) ([]domain.Feed, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+feedColumns+` FROM feeds
		 WHERE user_id = ? AND deleted_at IS NULL
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feeds := make([]domain.Feed, 0)
	for rows.Next() {
		var f domain.Feed
		if err := rows.Scan(&f.ID, &f.UserID, &f.URL, &f.Title, &f.Description,
			&f.ImageURL, &f.CreatedAt, &f.RefreshedAt); err != nil {
			return nil, err
		}
		feeds = append(feeds, f)
	}
	return feeds, rows.Err()
}

// TouchRefreshed records a successful ingestion time
func (s *FeedStore) TouchRefreshed(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE feeds SET refreshed_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now(), id)
	return err
}

// SoftDelete marks a subscription as deleted without removing rows
func (s *FeedStore) SoftDelete(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE feeds SET deleted_at = ?
		 WHERE id = ? AND user_id = ? AND deleted_at IS NULL`,
		time.Now(), id, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &coreerrors.NotFoundError{Resource: "feed", ID: id}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFeed(row rowScanner, id string) (*domain.Feed, error) {
	var f domain.Feed
	err := row.Scan(&f.ID, &f.UserID, &f.URL, &f.Title, &f.Description,
		&f.ImageURL, &f.CreatedAt, &f.RefreshedAt)
	if err == sql.ErrNoRows {
		return nil, &coreerrors.NotFoundError{Resource: "feed", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
