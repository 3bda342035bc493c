package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	InvalidForm         failure.ErrorCode = "InvalidForm"

	// Provider failures never reach the client; they are logged and counted.
	ProviderUnavailable       failure.ErrorCode = "ProviderUnavailable"
	ProviderBadStatus         failure.ErrorCode = "ProviderBadStatus"
	ProviderMalformedResponse failure.ErrorCode = "ProviderMalformedResponse"
)
