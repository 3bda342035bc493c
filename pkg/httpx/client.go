package httpx

import (
	"net/http"
	"time"
)

// NewClient builds the outbound client used for provider calls. Credentials
// wrap the logging layer so the dump shows the final request (masked). A zero
// timeout keeps the transport defaults.
func NewClient(
	timeout time.Duration,
	credential Credential,
	opts ...Option,
) *http.Client {
	var transport http.RoundTripper = NewLoggingRoundTripper(http.DefaultTransport, opts...)

	if credential != nil {
		transport = NewCredentialRoundTripper(transport, credential)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
