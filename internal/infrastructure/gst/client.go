// Package gst looks up the registration status of a GSTIN with the tax
// registry's taxpayer-status endpoint.
package gst

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"vendor_verify/internal/domain"
	"vendor_verify/internal/domain/value"
	"vendor_verify/internal/infrastructure"
	"vendor_verify/pkg/contextx"
	"vendor_verify/pkg/errcodes"
	"vendor_verify/pkg/logx"
)

const (
	Provider = "gst"

	statusActive = "ACTIVE"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vendor_verify",
	Name:      "gst_requests_total",
	Help:      "Tax-status lookups, by outcome.",
}, []string{"outcome"})

type statusRequest struct {
	GSTIN string `json:"gstin"`
}

// Status stays untyped: any value other than the string "ACTIVE" is simply
// not active.
type statusResponse struct {
	Status       any     `json:"status"`
	FilingStatus *string `json:"filing_status"`
}

type Client struct {
	httpClient *http.Client
	url        string
	cache      *cache.Cache
}

func NewClient(httpClient *http.Client, url string) *Client {
	return &Client{
		httpClient: httpClient,
		url:        url,
	}
}

// WithCache keeps successful lookups for ttl. A non-positive ttl disables
// caching; failures are never cached.
func (c *Client) WithCache(ttl time.Duration) *Client {
	if ttl > 0 {
		c.cache = cache.New(ttl, 2*ttl) //nolint:mnd // cleanup every two TTLs
	}

	return c
}

// Status never fails: any lookup error is logged and reported as
// value.TaxStatusError.
func (c *Client) Status(ctx context.Context, gstin string) value.TaxStatus {
	if c.cache != nil {
		if cached, ok := c.cache.Get(gstin); ok {
			requestsTotal.WithLabelValues(infrastructure.OutcomeCacheHit).Inc()
			return cached.(value.TaxStatus) //nolint:forcetypeassert
		}
	}

	status, err := c.Fetch(ctx, gstin)
	if err != nil {
		outcome, code := infrastructure.Outcome(err)

		requestsTotal.WithLabelValues(outcome).Inc()
		logger(ctx).Warn(
			"gst status lookup failed",
			slog.String(logx.FieldGSTIN, gstin),
			slog.String(logx.FieldErrorCode, code.String()),
			logx.Error(err),
		)

		return value.TaxStatusError()
	}

	requestsTotal.WithLabelValues(infrastructure.OutcomeOK).Inc()

	if c.cache != nil {
		c.cache.SetDefault(gstin, status)
	}

	return status
}

// Fetch performs a single lookup. Errors carry an errcodes provider code.
func (c *Client) Fetch(ctx context.Context, gstin string) (value.TaxStatus, error) {
	body, err := json.Marshal(statusRequest{GSTIN: gstin})
	if err != nil {
		return value.TaxStatus{}, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return value.TaxStatus{}, domain.WrapError(err, errcodes.ProviderUnavailable, "build request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return value.TaxStatus{}, domain.WrapError(err, errcodes.ProviderUnavailable, "httpClient.Do")
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return value.TaxStatus{}, domain.NewError(
			errcodes.ProviderBadStatus,
			fmt.Sprintf("unexpected status %d", resp.StatusCode),
		)
	}

	var payload *statusResponse

	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return value.TaxStatus{}, domain.WrapError(err, errcodes.ProviderMalformedResponse, "json.Decode")
	}

	if payload == nil {
		return value.TaxStatus{}, domain.NewError(errcodes.ProviderMalformedResponse, "empty response object")
	}

	filingStatus := value.FilingStatusUnknown
	if payload.FilingStatus != nil {
		filingStatus = *payload.FilingStatus
	}

	return value.TaxStatus{
		Valid:        payload.Status == statusActive,
		FilingStatus: filingStatus,
	}, nil
}
