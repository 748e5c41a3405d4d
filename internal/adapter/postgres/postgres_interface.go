package postgres

import (
	"context"

	"rates-service/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type CurrencyRepository interface {
	GetAll(ctx context.Context) ([]entity.Currency, error)
	GetByID(ctx context.Context, id string) (*entity.Currency, error)
	GetByCode(ctx context.Context, code string) (*entity.Currency, error)
	Create(ctx context.Context, currency entity.Currency) error
	Update(ctx context.Context, currency entity.Currency) error
	Delete(ctx context.Context, id string) error
}

type Pool interface {
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}
