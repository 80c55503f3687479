package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// schema is the single table holding every collection.  body is raw JSON.
const schema = `CREATE TABLE IF NOT EXISTS documents (
	collection VARCHAR(64)  NOT NULL,
	doc_key    VARCHAR(255) NOT NULL,
	body       LONGBLOB     NOT NULL,
	updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	PRIMARY KEY (collection, doc_key)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// MySQL is a Backend storing documents in the `documents` table.  Each
// write is a single-row statement so updates are last-writer-wins.
type MySQL struct{ DB *sql.DB }

func NewMySQL(db *sql.DB) *MySQL { return &MySQL{DB: db} }

// Migrate creates the documents table when it does not exist yet.
func (s *MySQL) Migrate(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, schema)
	return err
}

func (s *MySQL) Get(ctx context.Context, collection, key string) ([]byte, error) {
	var body []byte
	err := s.DB.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE collection=? AND doc_key=? LIMIT 1",
		collection, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return body, err
}

func (s *MySQL) Put(ctx context.Context, collection, key string, doc []byte) error {
	_, err := s.DB.ExecContext(ctx,
		"INSERT INTO documents (collection, doc_key, body) VALUES (?,?,?) ON DUPLICATE KEY UPDATE body=VALUES(body)",
		collection, key, doc)
	return err
}

func (s *MySQL) Delete(ctx context.Context, collection, key string) (bool, error) {
	res, err := s.DB.ExecContext(ctx,
		"DELETE FROM documents WHERE collection=? AND doc_key=?",
		collection, key)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *MySQL) List(ctx context.Context, collection, prefix string) ([][]byte, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT body FROM documents WHERE collection=? AND doc_key LIKE ? ORDER BY doc_key",
		collection, escapeLike(prefix)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := [][]byte{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		out = append(out, body)
	}
	return out, rows.Err()
}

func (s *MySQL) Truncate(ctx context.Context, collection string) error {
	_, err := s.DB.ExecContext(ctx, "DELETE FROM documents WHERE collection=?", collection)
	return err
}

func (s *MySQL) Close() error { return s.DB.Close() }

// escapeLike escapes LIKE wildcards; '_' is legal in tenant ids.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
