package service

import (
	"context"

	"rates-service/internal/entity"
)

// SignatureStrategy is the asymmetric sign/verify contract consumed by the
// rates service.
type SignatureStrategy interface {
	Sign(data []byte) (string, error)
	Verify(data []byte, signature string) bool
}

// CipherStrategy is the symmetric field-level encryption contract consumed by
// the secure currency pipeline.
type CipherStrategy interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	LooksEncrypted(value string) bool
}

// Localizer resolves display strings by key, returning the key itself when no
// translation exists.
type Localizer interface {
	Get(key string) string
}

// RatesProvider takes the caller's localizer so rate-item names follow the
// request language rather than the process default.
type RatesProvider interface {
	GetRates(ctx context.Context, loc Localizer) (*entity.RatesResponse, error)
	GetSignedRates(ctx context.Context, loc Localizer) (*entity.SignedRatesResponse, error)
	VerifyRates(data entity.RatesResponse, signature string) error
}

type CurrencyManager interface {
	ListCurrencies(ctx context.Context) ([]CurrencyInfo, error)
	GetOneCurrency(ctx context.Context, id string) (*CurrencyInfo, error)
	GetRawCurrency(ctx context.Context, id string) (*entity.Currency, error)
	CreateCurrency(ctx context.Context, currency entity.Currency) (*entity.Currency, error)
	UpdateCurrency(ctx context.Context, id string, currency entity.Currency) error
	DeleteCurrency(ctx context.Context, id string) error
}

type SecureCurrencyManager interface {
	GetOneDecrypted(ctx context.Context, id string) (*entity.PlainCurrency, error)
	CreateEncrypted(ctx context.Context, currency entity.PlainCurrency) (*entity.EncryptedCurrency, error)
	UpdateEncrypted(ctx context.Context, id string, currency entity.PlainCurrency) error
}
