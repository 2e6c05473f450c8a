// ABOUTME: ArticleStorage implementation over SQLite
// ABOUTME: Ownership is enforced through the owning feed on every mutation

package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"feedreader-api/core/domain"
	coreerrors "feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

var _ interfaces.ArticleStorage = (*ArticleStore)(nil)

// ArticleStore implements article persistence on the shared database handle.
type ArticleStore struct {
	db *sql.DB
}

// SaveAll persists a batch of newly ingested articles in one transaction.
func (s *ArticleStore) SaveAll(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (id, feed_id, title, link, description, content,
			pub_date, image_url, source, is_read, is_read_later, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range articles {
		if _, err := stmt.ExecContext(ctx, a.ID, a.FeedID, a.Title, a.Link,
			a.Description, a.Content, a.PubDate, a.ImageURL, a.Source,
			a.IsRead, a.IsReadLater, a.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ExistingLinks reports which of the given links are already stored for the feed.
func (s *ArticleStore) ExistingLinks(ctx context.Context, feedID string, links []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(links) == 0 {
		return existing, nil
	}

	placeholders := strings.Repeat("?,", len(links))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]interface{}, 0, len(links)+1)
	args = append(args, feedID)
	for _, link := range links {
		args = append(args, link)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT link FROM articles WHERE feed_id = ? AND link IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var link string
		if err := rows.Scan(&link); err != nil {
			return nil, err
		}
		existing[link] = true
	}
	return existing, rows.Err()
}

const articleSelect = `
SELECT a.id, a.feed_id, a.title, a.link, a.description, a.content,
       a.pub_date, a.image_url, a.source, a.is_read, a.is_read_later,
       a.created_at, GROUP_CONCAT(t.name)
FROM articles a
LEFT JOIN article_tags at ON at.article_id = a.id
LEFT JOIN tags t ON t.id = at.tag_id`

// ListByFeed returns all articles for a feed, newest first.
func (s *ArticleStore) ListByFeed(ctx context.Context, feedID string) ([]domain.Article, error) {
	rows, err := s.db.QueryContext(ctx, articleSelect+`
		WHERE a.feed_id = ?
		GROUP BY a.id
		ORDER BY a.created_at DESC, a.id`, feedID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

// GetByID retrieves an article owned (via its feed) by the user.
func (s *ArticleStore) GetByID(ctx context.Context, userID, id string) (*domain.Article, error) {
	rows, err := s.db.QueryContext(ctx, articleSelect+`
		JOIN feeds f ON f.id = a.feed_id
		WHERE a.id = ? AND f.user_id = ? AND f.deleted_at IS NULL
		GROUP BY a.id`, id, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, &coreerrors.NotFoundError{Resource: "article", ID: id}
	}
	return scanArticle(rows)
}

// SetRead updates the read flag on an article owned by the user.
func (s *ArticleStore) SetRead(ctx context.Context, userID, id string, read bool) error {
	return s.updateFlag(ctx, userID, id, "is_read", read)
}

// SetReadLater updates the read-later flag on an article owned by the user.
func (s *ArticleStore) SetReadLater(ctx context.Context, userID, id string, readLater bool) error {
	return s.updateFlag(ctx, userID, id, "is_read_later", readLater)
}

func (s *ArticleStore) updateFlag(ctx context.Context, userID, id, column string, value bool) error {
	// column is one of two fixed names, never user input
	res, err := s.db.ExecContext(ctx,
		`UPDATE articles SET `+column+` = ?
		 WHERE id = ? AND feed_id IN (
			SELECT id FROM feeds WHERE user_id = ? AND deleted_at IS NULL)`,
		value, id, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &coreerrors.NotFoundError{Resource: "article", ID: id}
	}
	return nil
}

func scanArticle(rows *sql.Rows) (*domain.Article, error) {
	var a domain.Article
	var tags sql.NullString
	if err := rows.Scan(&a.ID, &a.FeedID, &a.Title, &a.Link, &a.Description,
		&a.Content, &a.PubDate, &a.ImageURL, &a.Source, &a.IsRead,
		&a.IsReadLater, &a.CreatedAt, &tags); err != nil {
		return nil, err
	}
	if tags.Valid && tags.String != "" {
		a.Tags = strings.Split(tags.String, ",")
	}
	return &a, nil
}
