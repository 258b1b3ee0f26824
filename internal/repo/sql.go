package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/royal-shop/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const kvTable = "kv_entries"

// SQLStore хранит записи в таблице kv_entries (SQLite или Postgres).
// Каждая запись версионируется.
type SQLStore struct {
	db        *sqlx.DB
	qb        sq.StatementBuilderType
	txManager trm.Manager
	now       func() time.Time
}

// NewSQLStore: placeholder sq.Dollar для Postgres, sq.Question для SQLite.
func NewSQLStore(db *sqlx.DB, txManager trm.Manager, placeholder sq.PlaceholderFormat) *SQLStore {
	return &SQLStore{
		db:        db,
		qb:        sq.StatementBuilder.PlaceholderFormat(placeholder),
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args := s.qb.Select("entry_value").
		From(kvTable).
		Where(sq.Eq{"entry_key": key}).
		MustSql()

	var value string
	err := trm.QuerierFrom(ctx, s.db).GetContext(ctx, &value, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return []byte(value), nil
}

func (s *SQLStore) Put(ctx context.Context, key string, value []byte) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		version, err := s.Version(ctx, key)
		if err != nil {
			return err
		}
		return s.PutVersion(ctx, key, value, version)
	})
}

// PutVersion записывает значение, только если текущая версия ключа равна expected
// (0 для нового ключа). Иначе ErrVersionConflict.
func (s *SQLStore) PutVersion(ctx context.Context, key string, value []byte, expected int64) error {
	var query string
	var args []any
	if expected == 0 {
		query, args = s.qb.Insert(kvTable).
			Columns("entry_key", "entry_value", "version", "updated_at").
			Values(key, string(value), 1, s.now().UnixMilli()).
			Suffix("ON CONFLICT (entry_key) DO NOTHING").
			MustSql()
	} else {
		query, args = s.qb.Update(kvTable).
			Set("entry_value", string(value)).
			Set("version", expected+1).
			Set("updated_at", s.now().UnixMilli()).
			Where(sq.Eq{"entry_key": key, "version": expected}).
			MustSql()
	}

	res, err := trm.QuerierFrom(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to put entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check put result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: key %s, version %d", ErrVersionConflict, key, expected)
	}
	return nil
}

// Version номер последней записи ключа, 0 если ключа нет.
func (s *SQLStore) Version(ctx context.Context, key string) (int64, error) {
	query, args := s.qb.Select("version").
		From(kvTable).
		Where(sq.Eq{"entry_key": key}).
		MustSql()

	var version int64
	err := trm.QuerierFrom(ctx, s.db).GetContext(ctx, &version, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get entry version: %w", err)
	}
	return version, nil
}
