package rest

// Vendor is the vendor record as submitted through the onboarding form.
type Vendor struct {
	VendorName string  `json:"vendorName" validate:"required"`
	GSTIN      string  `json:"gstin" validate:"required"`
	Email      string  `json:"email" validate:"required"`
	PAN        *string `json:"pan"`
	Website    *string `json:"website"`
	Address    string  `json:"address" validate:"required"`
	Phone      string  `json:"phone" validate:"required"`
}

type VerificationStep struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// VerificationResult is the report returned by both vendor endpoints.
// Optional fields are null when the producing check did not run.
type VerificationResult struct {
	Vendor           Vendor             `json:"vendor"`
	Steps            []VerificationStep `json:"steps"`
	Completed        bool               `json:"completed"`
	GSTINValid       *bool              `json:"gstin_valid"`
	FilingStatus     *string            `json:"filing_status"`
	GoogleResults    []map[string]any   `json:"google_results"`
	EcommerceSummary *string            `json:"ecommerce_summary"`
}
