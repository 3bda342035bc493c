package entity

import "vendor_verify/internal/domain/value"

type VerificationStep struct {
	Name    string
	Status  value.StepStatus
	Message string
}

func (s VerificationStep) Completed() bool {
	return s.Status == value.StepCompleted
}

// Verification is the report returned for one vendor. Optional fields are
// nil when the producing check did not run.
type Verification struct {
	Vendor           Vendor
	Steps            []VerificationStep
	Completed        bool
	GSTINValid       *bool
	FilingStatus     *string
	Reviews          []value.Review
	ReputationResult *string
}
