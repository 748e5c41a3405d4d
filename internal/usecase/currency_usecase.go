package usecase

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"rates-service/internal/apperr"
	"rates-service/internal/entity"
	"rates-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var codeRegexp = regexp.MustCompile(`^[A-Z]{3}$`)

type CurrencyInteractor struct {
	currencies service.CurrencyManager
	secure     service.SecureCurrencyManager
	logger     *logrus.Logger
}

func NewCurrencyUsecase(currencies service.CurrencyManager, secure service.SecureCurrencyManager, logger *logrus.Logger) *CurrencyInteractor {
	return &CurrencyInteractor{
		currencies: currencies,
		secure:     secure,
		logger:     logger,
	}
}

func (uc *CurrencyInteractor) ListCurrencies(ctx context.Context) ([]service.CurrencyInfo, error) {
	return uc.currencies.ListCurrencies(ctx)
}

func (uc *CurrencyInteractor) GetCurrency(ctx context.Context, id string) (*service.CurrencyInfo, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return uc.currencies.GetOneCurrency(ctx, id)
}

func (uc *CurrencyInteractor) CreateCurrency(ctx context.Context, code, chineseName string) (*entity.Currency, error) {
	code, err := normalizeCode(code)
	if err != nil {
		return nil, err
	}
	return uc.currencies.CreateCurrency(ctx, entity.Currency{
		Code:        code,
		ChineseName: chineseName,
	})
}

func (uc *CurrencyInteractor) UpdateCurrency(ctx context.Context, id, code, chineseName string) error {
	if err := validateID(id); err != nil {
		return err
	}
	code, err := normalizeCode(code)
	if err != nil {
		return err
	}
	return uc.currencies.UpdateCurrency(ctx, id, entity.Currency{
		Code:        code,
		ChineseName: chineseName,
	})
}

func (uc *CurrencyInteractor) DeleteCurrency(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return uc.currencies.DeleteCurrency(ctx, id)
}

func (uc *CurrencyInteractor) GetDecryptedCurrency(ctx context.Context, id string) (*entity.PlainCurrency, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return uc.secure.GetOneDecrypted(ctx, id)
}

func (uc *CurrencyInteractor) CreateEncryptedCurrency(ctx context.Context, code, chineseName string) (*entity.EncryptedCurrency, error) {
	code, err := normalizeCode(code)
	if err != nil {
		return nil, err
	}
	return uc.secure.CreateEncrypted(ctx, entity.PlainCurrency{
		Code:        code,
		ChineseName: chineseName,
	})
}

func (uc *CurrencyInteractor) UpdateEncryptedCurrency(ctx context.Context, id, code, chineseName string) error {
	if err := validateID(id); err != nil {
		return err
	}
	code, err := normalizeCode(code)
	if err != nil {
		return err
	}
	return uc.secure.UpdateEncrypted(ctx, id, entity.PlainCurrency{
		Code:        code,
		ChineseName: chineseName,
	})
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperr.New(http.StatusBadRequest, "invalid currency id")
	}
	return nil
}

func normalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeRegexp.MatchString(code) {
		return "", apperr.New(http.StatusBadRequest, "invalid currency code format, expected 3 letters")
	}
	return code, nil
}
