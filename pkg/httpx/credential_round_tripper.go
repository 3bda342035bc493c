package httpx

import (
	"fmt"
	"net/http"
)

// Credential attaches provider credentials to an outbound request.
type Credential interface {
	Apply(req *http.Request)
}

// QueryAPIKey sends the key as a query parameter.
type QueryAPIKey struct {
	Param string
	Key   string
}

func (c QueryAPIKey) Apply(req *http.Request) {
	query := req.URL.Query()
	query.Set(c.Param, c.Key)
	req.URL.RawQuery = query.Encode()
}

// BearerToken sends the token in the Authorization header.
type BearerToken string

func (t BearerToken) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+string(t))
}

type CredentialRoundTripper struct {
	next       http.RoundTripper
	credential Credential
}

func NewCredentialRoundTripper(
	next http.RoundTripper,
	credential Credential,
) CredentialRoundTripper {
	return CredentialRoundTripper{
		next:       next,
		credential: credential,
	}
}

func (rt CredentialRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	req = req.Clone(req.Context())

	rt.credential.Apply(req)

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
