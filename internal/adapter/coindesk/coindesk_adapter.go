package coindesk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type Client struct {
	httpClient *http.Client
	url        string
	logger     *logrus.Logger
}

func NewClient(url string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				ResponseHeaderTimeout: timeout,
			},
		},
		url:    url,
		logger: logger,
	}
}

// CurrentPrice returns the live feed snapshot, or the fixed mock snapshot on
// any failure. It never returns an error: the rest of the pipeline must always
// have a valid, signable document to work with.
func (c *Client) CurrentPrice(ctx context.Context) *Snapshot {
	snapshot, err := c.fetch(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("CoinDesk feed unavailable, falling back to mock snapshot")
		return MockSnapshot()
	}
	return snapshot
}

func (c *Client) fetch(ctx context.Context) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warnf("CoinDesk API returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("parse feed JSON: %w", err)
	}

	c.logger.Debugf("Fetched live snapshot with %d bpi entries", snapshot.Bpi.Len())
	return &snapshot, nil
}
