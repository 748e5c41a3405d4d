package usecase

import (
	"context"

	"rates-service/internal/entity"
	"rates-service/internal/service"
)

type RatesUsecase interface {
	GetRates(ctx context.Context, loc service.Localizer) (*entity.RatesResponse, error)
	GetSignedRates(ctx context.Context, loc service.Localizer) (*entity.SignedRatesResponse, error)
	VerifyRates(data entity.RatesResponse, signature string, loc service.Localizer) error
}

type CurrencyUsecase interface {
	ListCurrencies(ctx context.Context) ([]service.CurrencyInfo, error)
	GetCurrency(ctx context.Context, id string) (*service.CurrencyInfo, error)
	CreateCurrency(ctx context.Context, code, chineseName string) (*entity.Currency, error)
	UpdateCurrency(ctx context.Context, id, code, chineseName string) error
	DeleteCurrency(ctx context.Context, id string) error
}

type SecureCurrencyUsecase interface {
	GetDecryptedCurrency(ctx context.Context, id string) (*entity.PlainCurrency, error)
	CreateEncryptedCurrency(ctx context.Context, code, chineseName string) (*entity.EncryptedCurrency, error)
	UpdateEncryptedCurrency(ctx context.Context, id, code, chineseName string) error
}
