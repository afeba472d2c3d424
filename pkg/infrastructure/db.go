package infrastructure

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4/pgxpool"
)

func NewCVPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("database dsn is empty")
	}
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
