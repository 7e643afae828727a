package metadata

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/stellarburgers/internal/dbx"
)

const (
	sqliteGet    = `SELECT value FROM metadata WHERE key = ?`
	sqliteUpsert = `INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	sqliteDelete = `DELETE FROM metadata WHERE key = ?`
)

// SQLiteRepository stores values in the metadata table created by the
// client migrations. It works over a *sql.DB or inside a *sql.Tx.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	switch err := r.db.QueryRowContext(ctx, sqliteGet, key).Scan(&value); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, opError("get", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	if _, err := r.db.ExecContext(ctx, sqliteUpsert, key, value); err != nil {
		return opError("set", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, sqliteDelete, key); err != nil {
		return opError("delete", key, err)
	}
	return nil
}
