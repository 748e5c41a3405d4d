package postgres

import (
	"context"
	"errors"
	"fmt"

	"rates-service/internal/entity"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	psql        = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	ErrNotFound = errors.New("not found")
	// ErrDuplicateCode maps the unique constraint on currencies.code.
	ErrDuplicateCode = errors.New("currency code already exists")
)

type CurrencyRepo struct {
	pool   Pool
	logger *logrus.Logger
}

func NewCurrencyRepo(pool Pool, logger *logrus.Logger) *CurrencyRepo {
	return &CurrencyRepo{
		pool:   pool,
		logger: logger,
	}
}

func (r *CurrencyRepo) GetAll(ctx context.Context) ([]entity.Currency, error) {
	query, args, err := psql.
		Select("id", "code", "chinese_name").
		From("currencies").
		OrderBy("code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.WithError(err).Error("Failed to query currencies")
		return nil, fmt.Errorf("query currencies: %w", err)
	}
	defer rows.Close()

	var currencies []entity.Currency
	for rows.Next() {
		var c entity.Currency
		if err := rows.Scan(&c.ID, &c.Code, &c.ChineseName); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		currencies = append(currencies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate currencies: %w", err)
	}

	r.logger.Debugf("Loaded %d currencies from directory", len(currencies))
	return currencies, nil
}

func (r *CurrencyRepo) GetByID(ctx context.Context, id string) (*entity.Currency, error) {
	query, args, err := psql.
		Select("id", "code", "chinese_name").
		From("currencies").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var c entity.Currency
	err = r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Code, &c.ChineseName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.WithError(err).WithField("id", id).Error("Failed to query currency by id")
		return nil, fmt.Errorf("query currency by id: %w", err)
	}

	return &c, nil
}

// GetByCode matches the stored code exactly. Callers normalize plain codes;
// ciphertext codes are case-sensitive and must not be folded here.
func (r *CurrencyRepo) GetByCode(ctx context.Context, code string) (*entity.Currency, error) {
	query, args, err := psql.
		Select("id", "code", "chinese_name").
		From("currencies").
		Where(sq.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var c entity.Currency
	err = r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Code, &c.ChineseName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.WithError(err).WithField("code", code).Error("Failed to query currency by code")
		return nil, fmt.Errorf("query currency by code: %w", err)
	}

	return &c, nil
}

func (r *CurrencyRepo) Create(ctx context.Context, currency entity.Currency) error {
	query, args, err := psql.
		Insert("currencies").
		Columns("id", "code", "chinese_name").
		Values(currency.ID, currency.Code, currency.ChineseName).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCode
		}
		r.logger.WithError(err).WithField("code", currency.Code).Error("Failed to insert currency")
		return fmt.Errorf("insert currency: %w", err)
	}

	r.logger.WithFields(logrus.Fields{"id": currency.ID, "code": currency.Code}).Info("Currency created")
	return nil
}

func (r *CurrencyRepo) Update(ctx context.Context, currency entity.Currency) error {
	query, args, err := psql.
		Update("currencies").
		Set("code", currency.Code).
		Set("chinese_name", currency.ChineseName).
		Where(sq.Eq{"id": currency.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateCode
		}
		r.logger.WithError(err).WithField("id", currency.ID).Error("Failed to update currency")
		return fmt.Errorf("update currency: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.logger.WithField("id", currency.ID).Info("Currency updated")
	return nil
}

func (r *CurrencyRepo) Delete(ctx context.Context, id string) error {
	query, args, err := psql.
		Delete("currencies").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		r.logger.WithError(err).WithField("id", id).Error("Failed to delete currency")
		return fmt.Errorf("delete currency: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.logger.WithField("id", id).Info("Currency deleted")
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
