package value

import "fmt"

const (
	FilingStatusUnknown = "unknown"
	FilingStatusError   = "error"

	ReputationFailedSummary = "Failed to fetch"
)

// TaxStatus is what the tax registry tells us about a GSTIN.
type TaxStatus struct {
	Valid        bool
	FilingStatus string
}

// TaxStatusError is reported for any failed registry lookup.
func TaxStatusError() TaxStatus {
	return TaxStatus{Valid: false, FilingStatus: FilingStatusError}
}

// Review is one record from the reputation provider, passed through as-is.
type Review map[string]any

type Reputation struct {
	Reviews []Review
	Summary string
}

func NewReputation(reviews []Review) Reputation {
	if reviews == nil {
		reviews = []Review{}
	}

	return Reputation{
		Reviews: reviews,
		Summary: fmt.Sprintf("%d reviews fetched", len(reviews)),
	}
}

// ReputationFailed is reported for any failed search. It is indistinguishable
// from zero reviews as far as the verification step is concerned.
func ReputationFailed() Reputation {
	return Reputation{
		Reviews: []Review{},
		Summary: ReputationFailedSummary,
	}
}
