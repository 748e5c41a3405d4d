package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"rates-service/internal/adapter/postgres"
	"rates-service/internal/apperr"
	"rates-service/internal/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CurrencyInfo is the directory listing view: code plus resolved display name.
type CurrencyInfo struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type CurrencyService struct {
	repo      postgres.CurrencyRepository
	localizer Localizer
	logger    *logrus.Logger
}

func NewCurrencyService(repo postgres.CurrencyRepository, localizer Localizer, logger *logrus.Logger) *CurrencyService {
	return &CurrencyService{
		repo:      repo,
		localizer: localizer,
		logger:    logger,
	}
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]CurrencyInfo, error) {
	currencies, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]CurrencyInfo, 0, len(currencies))
	for _, c := range currencies {
		infos = append(infos, CurrencyInfo{
			ID:   c.ID,
			Code: c.Code,
			Name: s.localizer.Get(c.Code),
		})
	}
	return infos, nil
}

func (s *CurrencyService) GetOneCurrency(ctx context.Context, id string) (*CurrencyInfo, error) {
	currency, err := s.GetRawCurrency(ctx, id)
	if err != nil {
		return nil, err
	}

	return &CurrencyInfo{
		ID:   currency.ID,
		Code: currency.Code,
		Name: s.localizer.Get(currency.Code),
	}, nil
}

// GetRawCurrency returns the stored record without name resolution. The
// secure pipeline uses it to reach ciphertext fields untouched.
func (s *CurrencyService) GetRawCurrency(ctx context.Context, id string) (*entity.Currency, error) {
	currency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, apperr.New(http.StatusNotFound, s.localizer.Get("CurrencyNotFound"))
		}
		return nil, err
	}
	return currency, nil
}

func (s *CurrencyService) CreateCurrency(ctx context.Context, currency entity.Currency) (*entity.Currency, error) {
	existing, err := s.repo.GetByCode(ctx, currency.Code)
	if err != nil && !errors.Is(err, postgres.ErrNotFound) {
		return nil, fmt.Errorf("check existing code: %w", err)
	}
	if existing != nil {
		return nil, apperr.New(http.StatusBadRequest, s.localizer.Get("CurrencyCodeExists"))
	}

	currency.ID = uuid.NewString()
	if err := s.repo.Create(ctx, currency); err != nil {
		if errors.Is(err, postgres.ErrDuplicateCode) {
			return nil, apperr.New(http.StatusBadRequest, s.localizer.Get("CurrencyCodeExists"))
		}
		return nil, err
	}

	return &currency, nil
}

func (s *CurrencyService) UpdateCurrency(ctx context.Context, id string, currency entity.Currency) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return apperr.New(http.StatusNotFound, s.localizer.Get("CurrencyNotFound"))
		}
		return err
	}

	if currency.Code == existing.Code && currency.ChineseName == existing.ChineseName {
		return apperr.New(http.StatusBadRequest, s.localizer.Get("CurrencyDataNotChange"))
	}

	currency.ID = id
	if err := s.repo.Update(ctx, currency); err != nil {
		if errors.Is(err, postgres.ErrDuplicateCode) {
			return apperr.New(http.StatusBadRequest, s.localizer.Get("CurrencyCodeExists"))
		}
		if errors.Is(err, postgres.ErrNotFound) {
			return apperr.New(http.StatusNotFound, s.localizer.Get("CurrencyNotFound"))
		}
		return err
	}
	return nil
}

func (s *CurrencyService) DeleteCurrency(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return apperr.New(http.StatusNotFound, s.localizer.Get("CurrencyNotFound"))
		}
		return err
	}
	s.logger.WithField("id", id).Info("Currency removed from directory")
	return nil
}
