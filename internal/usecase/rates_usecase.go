package usecase

import (
	"context"
	"errors"
	"net/http"

	"rates-service/internal/apperr"
	"rates-service/internal/entity"
	"rates-service/internal/service"

	"github.com/sirupsen/logrus"
)

type RatesInteractor struct {
	rates  service.RatesProvider
	logger *logrus.Logger
}

func NewRatesUsecase(rates service.RatesProvider, logger *logrus.Logger) *RatesInteractor {
	return &RatesInteractor{
		rates:  rates,
		logger: logger,
	}
}

func (uc *RatesInteractor) GetRates(ctx context.Context, loc service.Localizer) (*entity.RatesResponse, error) {
	return uc.rates.GetRates(ctx, loc)
}

func (uc *RatesInteractor) GetSignedRates(ctx context.Context, loc service.Localizer) (*entity.SignedRatesResponse, error) {
	return uc.rates.GetSignedRates(ctx, loc)
}

// VerifyRates maps a cryptographic mismatch to a caller-facing 400 error in
// the request language; any other failure bubbles unchanged.
func (uc *RatesInteractor) VerifyRates(data entity.RatesResponse, signature string, loc service.Localizer) error {
	if signature == "" {
		return apperr.New(http.StatusBadRequest, loc.Get("VerifyFail"))
	}

	if err := uc.rates.VerifyRates(data, signature); err != nil {
		if errors.Is(err, service.ErrVerificationFailed) {
			uc.logger.Info("Rates verification rejected")
			return apperr.New(http.StatusBadRequest, loc.Get("VerifyFail"))
		}
		return err
	}
	return nil
}
