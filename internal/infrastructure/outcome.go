package infrastructure

import (
	"git.appkode.ru/pub/go/failure"

	"vendor_verify/internal/domain"
	"vendor_verify/pkg/errcodes"
)

const (
	OutcomeOK       = "ok"
	OutcomeCacheHit = "cache_hit"
)

// Outcome turns a provider error into a metrics label and its error code.
func Outcome(err error) (string, failure.ErrorCode) {
	if err == nil {
		return OutcomeOK, ""
	}

	code, _ := domain.GetCode(err)

	switch code {
	case errcodes.ProviderUnavailable:
		return "unavailable", code
	case errcodes.ProviderBadStatus:
		return "bad_status", code
	case errcodes.ProviderMalformedResponse:
		return "malformed", code
	default:
		return "error", code
	}
}
