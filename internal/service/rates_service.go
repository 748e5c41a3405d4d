package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rates-service/internal/adapter/coindesk"
	"rates-service/internal/adapter/postgres"
	"rates-service/internal/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrMalformedFeedTimestamp means the feed document carried an unparsable
	// updatedISO. The mock fallback guarantees a well-formed document, so this
	// indicates a corrupt feed shape and fails the request.
	ErrMalformedFeedTimestamp = errors.New("malformed feed timestamp")

	ErrVerificationFailed = errors.New("signature verification failed")
)

const displayTimeLayout = "2006/01/02 15:04:05"

// Timestamps are served in Taiwan local time regardless of host timezone.
var displayZone = time.FixedZone("UTC+8", 8*60*60)

type RatesService struct {
	feed   coindesk.FeedClient
	repo   postgres.CurrencyRepository
	signer SignatureStrategy
	logger *logrus.Logger
}

func NewRatesService(feed coindesk.FeedClient, repo postgres.CurrencyRepository, signer SignatureStrategy, logger *logrus.Logger) *RatesService {
	return &RatesService{
		feed:   feed,
		repo:   repo,
		signer: signer,
		logger: logger,
	}
}

// GetRates merges the current feed snapshot with the trusted currency
// directory. The snapshot and the directory are loaded concurrently; the feed
// side cannot fail (it degrades to the mock snapshot internally).
func (s *RatesService) GetRates(ctx context.Context, loc Localizer) (*entity.RatesResponse, error) {
	var (
		snapshot   *coindesk.Snapshot
		currencies []entity.Currency
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snapshot = s.feed.CurrentPrice(gctx)
		return nil
	})
	g.Go(func() error {
		var err error
		currencies, err = s.repo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("load currency directory: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.WithError(err).Error("Failed to load rate inputs")
		return nil, err
	}

	if snapshot.IsMock {
		s.logger.Warn("Serving rates from mock snapshot")
	}

	return s.aggregate(snapshot, currencies, loc)
}

// GetSignedRates signs the canonical serialization of the current rates. The
// signature covers the localized names, so verification must be run against
// the payload exactly as served.
func (s *RatesService) GetSignedRates(ctx context.Context, loc Localizer) (*entity.SignedRatesResponse, error) {
	rates, err := s.GetRates(ctx, loc)
	if err != nil {
		return nil, err
	}

	payload, err := CanonicalBytes(*rates)
	if err != nil {
		return nil, err
	}

	signature, err := s.signer.Sign(payload)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign rates payload")
		return nil, fmt.Errorf("sign rates: %w", err)
	}

	return &entity.SignedRatesResponse{
		Data:      *rates,
		Signature: signature,
	}, nil
}

// VerifyRates checks a client-submitted payload against its signature using
// the same canonical serialization as the signing path. A cryptographic
// mismatch returns ErrVerificationFailed.
func (s *RatesService) VerifyRates(data entity.RatesResponse, signature string) error {
	payload, err := CanonicalBytes(data)
	if err != nil {
		return err
	}

	if !s.signer.Verify(payload, signature) {
		s.logger.WithField("updated_time", data.UpdatedTime).Info("Rates signature rejected")
		return ErrVerificationFailed
	}
	return nil
}

func (s *RatesService) aggregate(snapshot *coindesk.Snapshot, currencies []entity.Currency, loc Localizer) (*entity.RatesResponse, error) {
	updated, err := time.Parse(time.RFC3339, snapshot.Time.UpdatedISO)
	if err != nil {
		s.logger.WithError(err).Errorf("Unparsable feed timestamp %q", snapshot.Time.UpdatedISO)
		return nil, fmt.Errorf("%w: %q", ErrMalformedFeedTimestamp, snapshot.Time.UpdatedISO)
	}

	trusted := make(map[string]struct{}, len(currencies))
	for _, c := range currencies {
		trusted[strings.ToUpper(c.Code)] = struct{}{}
	}

	// Feed enumeration order is preserved; unknown codes are dropped.
	rates := make([]entity.RateItem, 0, snapshot.Bpi.Len())
	for _, code := range snapshot.Bpi.Codes() {
		if _, ok := trusted[strings.ToUpper(code)]; !ok {
			continue
		}
		entry, _ := snapshot.Bpi.Get(code)
		rates = append(rates, entity.RateItem{
			Code: code,
			Name: loc.Get(code),
			Rate: entry.Rate,
		})
	}

	return &entity.RatesResponse{
		UpdatedTime: updated.In(displayZone).Format(displayTimeLayout),
		Rates:       rates,
	}, nil
}
