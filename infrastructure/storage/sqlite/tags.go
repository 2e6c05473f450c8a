// ABOUTME: TagStorage implementation over SQLite
// ABOUTME: Tags are user-scoped; assignments join tags to owned articles

package sqlite

import (
	"context"
	"database/sql"

	"feedreader-api/core/domain"
	coreerrors "feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

var _ interfaces.TagStorage = (*TagStore)(nil)

// TagStore implements tag persistence on the shared database handle.
type TagStore struct {
	db *sql.DB
}

// Save persists a new tag
func (s *TagStore) Save(ctx context.Context, tag *domain.Tag) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tags (id, user_id, name) VALUES (?, ?, ?)`,
		tag.ID, tag.UserID, tag.Name)
	return err
}

// ListByUser returns all tags owned by a user
func (s *TagStore) ListByUser(ctx context.Context, userID string) ([]domain.Tag, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name FROM tags WHERE user_id = ? ORDER BY name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]domain.Tag, 0)
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// Assign attaches a tag to an article; the tag must be owned by the user
func (s *TagStore) Assign(ctx context.Context, userID, articleID, tagID string) error {
	if err := s.checkTagOwner(ctx, userID, tagID); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO article_tags (article_id, tag_id) VALUES (?, ?)`,
		articleID, tagID)
	return err
}

// Unassign detaches a tag from an article
func (s *TagStore) Unassign(ctx context.Context, userID, articleID, tagID string) error {
	if err := s.checkTagOwner(ctx, userID, tagID); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM article_tags WHERE article_id = ? AND tag_id = ?`,
		articleID, tagID)
	return err
}

// Delete removes a tag and its assignments
func (s *TagStore) Delete(ctx context.Context, userID, tagID string) error {
	if err := s.checkTagOwner(ctx, userID, tagID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM article_tags WHERE tag_id = ?`, tagID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM tags WHERE id = ?`, tagID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *TagStore) checkTagOwner(ctx context.Context, userID, tagID string) error {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM tags WHERE id = ? AND user_id = ?`, tagID, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return &coreerrors.NotFoundError{Resource: "tag", ID: tagID}
	}
	return err
}
