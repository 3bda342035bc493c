package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"vendor_verify/internal/domain/entity"
	"vendor_verify/pkg/httpx/reply"
	"vendor_verify/pkg/httpx/req"
	"vendor_verify/pkg/logx"
	"vendor_verify/pkg/rest"
)

const (
	formVendorName = "vendorName"
	formGSTIN      = "gstin"
	formEmail      = "email"
	formPAN        = "pan"
	formWebsite    = "website"
	formAddress    = "address"
	formPhone      = "phone"
)

// Supporting documents are accepted but neither stored nor validated.
var attachmentFields = []string{"panDocument", "udyamCertificate", "tradeLicense"} //nolint:gochecknoglobals

type verificationService interface {
	Submit(ctx context.Context, vendor entity.Vendor) entity.Verification
	MockStatus(ctx context.Context, gstin string) entity.Verification
}

type VendorServer struct {
	verificationService verificationService
	maxFormMemory       int64
}

func NewVendorServer(verificationService verificationService, maxFormMemory int64) VendorServer {
	return VendorServer{
		verificationService: verificationService,
		maxFormMemory:       maxFormMemory,
	}
}

func (s VendorServer) postSubmitVendor(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := req.ParseForm(r, s.maxFormMemory); err != nil {
		return fmt.Errorf("req.ParseForm: %w", err)
	}

	defer func() {
		if err := req.Cleanup(r); err != nil {
			logger(ctx).Error("req.Cleanup", logx.Error(err))
		}
	}()

	request := rest.Vendor{
		VendorName: r.PostFormValue(formVendorName),
		GSTIN:      r.PostFormValue(formGSTIN),
		Email:      r.PostFormValue(formEmail),
		PAN:        req.OptionalValue(r, formPAN),
		Website:    req.OptionalValue(r, formWebsite),
		Address:    r.PostFormValue(formAddress),
		Phone:      r.PostFormValue(formPhone),
	}

	if err := req.Validate(r, &request); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	if attachments := req.Files(r, attachmentFields...); len(attachments) > 0 {
		logger(ctx).Info("vendor documents received", slog.Any(logx.FieldAttachments, attachments))
	}

	result := s.verificationService.Submit(ctx, newDomainVendor(request))

	reply.JSON(ctx, w, http.StatusOK, newRESTVerificationResult(result))

	return nil
}

func (s VendorServer) getVendorStatus(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	result := s.verificationService.MockStatus(ctx, r.PathValue("gstin"))

	reply.JSON(ctx, w, http.StatusOK, newRESTVerificationResult(result))

	return nil
}
