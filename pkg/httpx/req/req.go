package req

import (
	"errors"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"

	"vendor_verify/pkg/errcodes"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// ParseForm accepts both multipart and url-encoded bodies. Multipart parts
// above maxMemory are spooled to temp files; call Cleanup when done.
func ParseForm(r *http.Request, maxMemory int64) error {
	err := r.ParseMultipartForm(maxMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}

	if err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("parse form: %w", err).Error(),
			failure.WithCode(errcodes.InvalidForm),
			failure.WithDescription("Invalid form body"),
		)
	}

	return nil
}

// OptionalValue reads a body field. An absent or empty field is nil; the
// query string is never consulted.
func OptionalValue(r *http.Request, key string) *string {
	values := r.PostForm[key]
	if len(values) == 0 || values[0] == "" {
		return nil
	}

	return &values[0]
}

// Files returns the names of the file fields that carry at least one part.
func Files(r *http.Request, keys ...string) []string {
	if r.MultipartForm == nil {
		return nil
	}

	var present []string

	for _, key := range keys {
		if len(r.MultipartForm.File[key]) > 0 {
			present = append(present, key)
		}
	}

	return present
}

func Cleanup(r *http.Request) error {
	if r.MultipartForm == nil {
		return nil
	}

	if err := r.MultipartForm.RemoveAll(); err != nil {
		return fmt.Errorf("multipartForm.RemoveAll: %w", err)
	}

	return nil
}

func Validate(r *http.Request, dest any) error {
	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}
