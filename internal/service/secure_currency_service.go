package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"rates-service/internal/apperr"
	"rates-service/internal/entity"
	"rates-service/internal/security"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// SecureCurrencyService runs the field-level encryption pipeline around the
// plain directory service: encrypt on write, decrypt on read. Records coming
// back from storage are untyped, so reads guard with the cipher's
// LooksEncrypted check before attempting decryption.
type SecureCurrencyService struct {
	currencies CurrencyManager
	cipher     CipherStrategy
	localizer  Localizer
	logger     *logrus.Logger
}

func NewSecureCurrencyService(currencies CurrencyManager, cipher CipherStrategy, localizer Localizer, logger *logrus.Logger) *SecureCurrencyService {
	return &SecureCurrencyService{
		currencies: currencies,
		cipher:     cipher,
		localizer:  localizer,
		logger:     logger,
	}
}

func (s *SecureCurrencyService) GetOneDecrypted(ctx context.Context, id string) (*entity.PlainCurrency, error) {
	record, err := s.currencies.GetRawCurrency(ctx, id)
	if err != nil {
		return nil, err
	}

	encrypted, err := s.asEncrypted(*record)
	if err != nil {
		return nil, err
	}

	code, err := s.cipher.Decrypt(encrypted.Code)
	if err != nil {
		return nil, s.decryptError(encrypted.ID, "code", err)
	}
	name, err := s.cipher.Decrypt(encrypted.ChineseName)
	if err != nil {
		return nil, s.decryptError(encrypted.ID, "chinese name", err)
	}

	return &entity.PlainCurrency{
		ID:          encrypted.ID,
		Code:        code,
		ChineseName: name,
	}, nil
}

func (s *SecureCurrencyService) CreateEncrypted(ctx context.Context, currency entity.PlainCurrency) (*entity.EncryptedCurrency, error) {
	encrypted, err := s.encryptFields(currency)
	if err != nil {
		return nil, err
	}

	created, err := s.currencies.CreateCurrency(ctx, encrypted.Record())
	if err != nil {
		return nil, err
	}

	encrypted.ID = created.ID
	return encrypted, nil
}

func (s *SecureCurrencyService) UpdateEncrypted(ctx context.Context, id string, currency entity.PlainCurrency) error {
	encrypted, err := s.encryptFields(currency)
	if err != nil {
		return err
	}
	return s.currencies.UpdateCurrency(ctx, id, encrypted.Record())
}

func (s *SecureCurrencyService) encryptFields(currency entity.PlainCurrency) (*entity.EncryptedCurrency, error) {
	code, codeErr := s.cipher.Encrypt(currency.Code)
	name, nameErr := s.cipher.Encrypt(currency.ChineseName)
	if err := multierr.Combine(codeErr, nameErr); err != nil {
		s.logger.WithError(err).Error("Failed to encrypt currency fields")
		return nil, fmt.Errorf("encrypt currency fields: %w", err)
	}

	return &entity.EncryptedCurrency{
		ID:          currency.ID,
		Code:        code,
		ChineseName: name,
	}, nil
}

// decryptError maps cipher failures on stored records to caller-facing
// errors. A record that looked encrypted but does not decrypt under the
// configured key is a client-visible 400, not a server fault.
func (s *SecureCurrencyService) decryptError(id, field string, err error) error {
	if errors.Is(err, security.ErrDecryptionFailed) || errors.Is(err, security.ErrNotEncrypted) {
		s.logger.WithError(err).WithField("id", id).Warnf("Stored currency %s failed decryption", field)
		return apperr.New(http.StatusBadRequest, s.localizer.Get("DecryptFail"))
	}
	return fmt.Errorf("decrypt %s: %w", field, err)
}

// asEncrypted promotes an untyped stored record to the encrypted variant,
// rejecting records whose fields do not look like ciphertext.
func (s *SecureCurrencyService) asEncrypted(record entity.Currency) (*entity.EncryptedCurrency, error) {
	if !s.cipher.LooksEncrypted(record.Code) || !s.cipher.LooksEncrypted(record.ChineseName) {
		s.logger.WithField("id", record.ID).Warn("Stored currency record is not encrypted")
		return nil, apperr.New(http.StatusBadRequest, s.localizer.Get("NotEncrypted"))
	}
	return &entity.EncryptedCurrency{
		ID:          record.ID,
		Code:        record.Code,
		ChineseName: record.ChineseName,
	}, nil
}
