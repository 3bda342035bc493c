package server

import (
	"vendor_verify/internal/domain/entity"
	"vendor_verify/internal/domain/value"
	"vendor_verify/pkg/lox"
	"vendor_verify/pkg/rest"
)

func newRESTVendor(vendor entity.Vendor) rest.Vendor {
	return rest.Vendor{
		VendorName: vendor.Name,
		GSTIN:      vendor.GSTIN,
		Email:      vendor.Email,
		PAN:        vendor.PAN,
		Website:    vendor.Website,
		Address:    vendor.Address,
		Phone:      vendor.Phone,
	}
}

func newDomainVendor(vendor rest.Vendor) entity.Vendor {
	return entity.Vendor{
		Name:    vendor.VendorName,
		GSTIN:   vendor.GSTIN,
		Email:   vendor.Email,
		PAN:     vendor.PAN,
		Website: vendor.Website,
		Address: vendor.Address,
		Phone:   vendor.Phone,
	}
}

func newRESTStep(step entity.VerificationStep) rest.VerificationStep {
	return rest.VerificationStep{
		Name:    step.Name,
		Status:  step.Status.String(),
		Message: step.Message,
	}
}

func newRESTVerificationResult(result entity.Verification) rest.VerificationResult {
	var googleResults []map[string]any

	if result.Reviews != nil {
		googleResults = lox.Map(result.Reviews, func(review value.Review) map[string]any { return review })
	}

	return rest.VerificationResult{
		Vendor:           newRESTVendor(result.Vendor),
		Steps:            lox.Map(result.Steps, newRESTStep),
		Completed:        result.Completed,
		GSTINValid:       result.GSTINValid,
		FilingStatus:     result.FilingStatus,
		GoogleResults:    googleResults,
		EcommerceSummary: result.ReputationResult,
	}
}
