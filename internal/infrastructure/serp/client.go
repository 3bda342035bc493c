// Package serp fetches public reviews of a business from a SerpAPI-style
// search endpoint.
package serp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"vendor_verify/internal/domain"
	"vendor_verify/internal/domain/value"
	"vendor_verify/internal/infrastructure"
	"vendor_verify/pkg/contextx"
	"vendor_verify/pkg/errcodes"
	"vendor_verify/pkg/logx"
	"vendor_verify/pkg/lox"
)

const (
	Provider = "serp"

	// APIKeyParam is the query parameter carrying the API key.
	APIKeyParam = "api_key"

	paramEngine = "engine"
	paramQuery  = "q"
	fieldReview = "reviews"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vendor_verify",
	Name:      "serp_requests_total",
	Help:      "Reputation searches, by outcome.",
}, []string{"outcome"})

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	engine     string
}

// NewClient expects an http.Client that already attaches the API key (see
// httpx.QueryAPIKey with APIKeyParam).
func NewClient(httpClient *http.Client, rawURL, engine string) (*Client, error) {
	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		engine:     engine,
	}, nil
}

// Reputation never fails: any search error is logged and reported as
// value.ReputationFailed.
func (c *Client) Reputation(ctx context.Context, businessName string) value.Reputation {
	reviews, err := c.Fetch(ctx, businessName)

	outcome, code := infrastructure.Outcome(err)
	requestsTotal.WithLabelValues(outcome).Inc()

	if err != nil {
		logger(ctx).Warn(
			"reputation search failed",
			slog.String(logx.FieldVendorName, businessName),
			slog.String(logx.FieldErrorCode, code.String()),
			logx.Error(err),
		)

		return value.ReputationFailed()
	}

	return value.NewReputation(reviews)
}

// Fetch performs one search and returns the reviews as opaque records. A
// response without a reviews field yields no reviews.
func (c *Client) Fetch(ctx context.Context, businessName string) ([]value.Review, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(businessName), http.NoBody)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ProviderUnavailable, "build request")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ProviderUnavailable, "httpClient.Do")
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.NewError(
			errcodes.ProviderBadStatus,
			fmt.Sprintf("unexpected status %d", resp.StatusCode),
		)
	}

	var payload map[string]any

	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.WrapError(err, errcodes.ProviderMalformedResponse, "json.Decode")
	}

	if payload == nil {
		return nil, domain.NewError(errcodes.ProviderMalformedResponse, "empty response object")
	}

	raw, ok := payload[fieldReview]
	if !ok {
		return []value.Review{}, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, domain.NewError(errcodes.ProviderMalformedResponse, fmt.Sprintf("reviews is %T, not a list", raw))
	}

	reviews, err := lox.MapErr(items, toReview)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ProviderMalformedResponse, "reviews")
	}

	return reviews, nil
}

func (c *Client) searchURL(businessName string) string {
	u := *c.baseURL

	query := u.Query()
	query.Set(paramEngine, c.engine)
	query.Set(paramQuery, businessName)
	u.RawQuery = query.Encode()

	return u.String()
}

func toReview(item any) (value.Review, error) {
	review, ok := item.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("review is %T, not an object", item) //nolint:err113
	}

	return value.Review(review), nil
}
