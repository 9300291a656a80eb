package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/field-orders/internal/model"
)

const table = "kv_entries"

type storage struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewStorage(pool *pgxpool.Pool) *storage {
	return &storage{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (s *storage) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "postgres.storage.Get"

	q := s.sb.
		Select("value").
		From(table).
		Where(sq.Eq{"key": key})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var value []byte
	if err := s.pool.QueryRow(ctx, sqlStr, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrKeyNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return value, nil
}

func (s *storage) Set(ctx context.Context, key string, value []byte) error {
	const op = "postgres.storage.Set"

	q := s.sb.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, string(value), sq.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.pool.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
