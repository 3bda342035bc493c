package serp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"vendor_verify/internal/domain"
	"vendor_verify/internal/domain/value"
	"vendor_verify/internal/infrastructure/serp"
	"vendor_verify/pkg/errcodes"
	"vendor_verify/pkg/httpx"
)

const testAPIKey = "serp-secret"

func newTestClient(t *testing.T, rawURL string) *serp.Client {
	t.Helper()

	client, err := serp.NewClient(
		httpx.NewClient(0, httpx.QueryAPIKey{Param: serp.APIKeyParam, Key: testAPIKey}),
		rawURL,
		"google_maps_reviews",
	)
	require.NoError(t, err)

	return client
}

func TestClientReputation(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		statusCode int
		body       string
		reviews    int
		summary    string
		code       string
	}{
		{
			name:       "Reviews found",
			statusCode: http.StatusOK,
			body:       `{"search_metadata":{"status":"Success"},"reviews":[{"rating":5,"snippet":"Great"},{"rating":3}]}`,
			reviews:    2,
			summary:    "2 reviews fetched",
		},
		{
			name:       "Empty review list",
			statusCode: http.StatusOK,
			body:       `{"reviews":[]}`,
			reviews:    0,
			summary:    "0 reviews fetched",
		},
		{
			name:       "No reviews field",
			statusCode: http.StatusOK,
			body:       `{"search_metadata":{"status":"Success"}}`,
			reviews:    0,
			summary:    "0 reviews fetched",
		},
		{
			name:       "Unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       `{"error":"Invalid API key."}`,
			reviews:    0,
			summary:    "Failed to fetch",
			code:       string(errcodes.ProviderBadStatus),
		},
		{
			name:       "Malformed body",
			statusCode: http.StatusOK,
			body:       `{"reviews":[`,
			reviews:    0,
			summary:    "Failed to fetch",
			code:       string(errcodes.ProviderMalformedResponse),
		},
		{
			name:       "Null reviews",
			statusCode: http.StatusOK,
			body:       `{"reviews":null}`,
			reviews:    0,
			summary:    "Failed to fetch",
			code:       string(errcodes.ProviderMalformedResponse),
		},
		{
			name:       "Review is not an object",
			statusCode: http.StatusOK,
			body:       `{"reviews":["great"]}`,
			reviews:    0,
			summary:    "Failed to fetch",
			code:       string(errcodes.ProviderMalformedResponse),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				rq.Equal(http.MethodGet, r.Method)
				rq.Equal("/search", r.URL.Path)

				query := r.URL.Query()
				rq.Equal("google_maps_reviews", query.Get("engine"))
				rq.Equal("Acme Traders & Sons", query.Get("q"))
				rq.Equal(testAPIKey, query.Get("api_key"))

				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			}))
			defer httpServer.Close()

			client := newTestClient(t, httpServer.URL+"/search?engine=google_maps_reviews")

			reputation := client.Reputation(context.Background(), "Acme Traders & Sons")

			rq.Len(reputation.Reviews, tc.reviews)
			rq.NotNil(reputation.Reviews)
			rq.Equal(tc.summary, reputation.Summary)

			_, err := client.Fetch(context.Background(), "Acme Traders & Sons")
			if tc.code == "" {
				rq.NoError(err)
				return
			}

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, string(code))
		})
	}
}

func TestClientReviewsPassThrough(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"reviews":[{"rating":4.5,"user":{"name":"Priya"},"snippet":"On time"}]}`))
	}))
	defer httpServer.Close()

	client := newTestClient(t, httpServer.URL)

	reviews, err := client.Fetch(context.Background(), "Acme Traders")
	rq.NoError(err)
	rq.Equal([]value.Review{{
		"rating":  4.5,
		"user":    map[string]any{"name": "Priya"},
		"snippet": "On time",
	}}, reviews)
}

func TestClientUnreachable(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.NotFoundHandler())
	url := httpServer.URL
	httpServer.Close()

	client := newTestClient(t, url)

	rq.Equal(value.ReputationFailed(), client.Reputation(context.Background(), "Acme Traders"))

	_, err := client.Fetch(context.Background(), "Acme Traders")
	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ProviderUnavailable, code)
}

func TestNewClientInvalidURL(t *testing.T) {
	rq := require.New(t)

	_, err := serp.NewClient(http.DefaultClient, "://no-scheme", "google_maps_reviews")
	rq.ErrorContains(err, "url.Parse")
}
