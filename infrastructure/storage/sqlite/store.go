// ABOUTME: SQLite-backed persistence for feeds, articles and tags
// ABOUTME: Enforces ownership and soft-delete semantics at the query level

package sqlite

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS feeds (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	url TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	refreshed_at TIMESTAMP NOT NULL,
	deleted_at TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_feeds_user ON feeds(user_id);

CREATE TABLE IF NOT EXISTS articles (
	id TEXT PRIMARY KEY,
	feed_id TEXT NOT NULL REFERENCES feeds(id),
	title TEXT NOT NULL,
	link TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	content TEXT NOT NULL DEFAULT '',
	pub_date TEXT NOT NULL,
	image_url TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT '',
	is_read INTEGER NOT NULL DEFAULT 0,
	is_read_later INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_articles_feed_link ON articles(feed_id, link);

CREATE TABLE IF NOT EXISTS tags (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	name TEXT NOT NULL,
	UNIQUE(user_id, name)
);

CREATE TABLE IF NOT EXISTS article_tags (
	article_id TEXT NOT NULL REFERENCES articles(id),
	tag_id TEXT NOT NULL REFERENCES tags(id),
	PRIMARY KEY (article_id, tag_id)
);
`

// Store bundles the per-entity stores on a single SQLite database.
type Store struct {
	db *sql.DB

	Feeds    *FeedStore
	Articles *ArticleStore
	Tags     *TagStore
}

// NewStore opens (or creates) the database at path and applies the schema.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// SQLite only supports one writer; serialize access through a single
	// connection to avoid SQLITE_BUSY under concurrent API calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:       db,
		Feeds:    &FeedStore{db: db},
		Articles: &ArticleStore{db: db},
		Tags:     &TagStore{db: db},
	}, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
