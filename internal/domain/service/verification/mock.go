package verification

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"vendor_verify/internal/domain/entity"
	"vendor_verify/internal/domain/value"
	"vendor_verify/pkg/logx"
)

// A mock step passes when the random draw is above this value (90%).
const defaultMockPassThreshold = 0.1

//nolint:gochecknoglobals
var mockLookupsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "vendor_verify",
	Name:      "mock_lookups_total",
	Help:      "Fabricated status reports served.",
})

// MockStatus fabricates a status report for a GSTIN without calling any
// provider. It is a stub for front-end work: step outcomes are random and the
// report always claims to be completed.
func (s *Service) MockStatus(ctx context.Context, gstin string) entity.Verification {
	mockLookupsTotal.Inc()

	logger(ctx).Debug("serving mocked vendor status", slog.String(logx.FieldGSTIN, gstin))

	return entity.Verification{
		Vendor: entity.Vendor{
			Name:    "Mock Vendor",
			GSTIN:   gstin,
			Email:   "mock@example.com",
			Address: "Some address",
			Phone:   "1234567890",
		},
		Steps: []entity.VerificationStep{
			s.simulateStep(StepGSTINValidation, "Mocked"),
			s.simulateStep(StepPANCheck, "Mocked"),
		},
		Completed: true,
	}
}

func (s *Service) simulateStep(name, description string) entity.VerificationStep {
	ok := s.random.Float64() > s.mockPass

	outcome := "Failed"
	if ok {
		outcome = "Completed"
	}

	return entity.VerificationStep{
		Name:    name,
		Status:  value.StepStatusOf(ok),
		Message: description + " - " + outcome,
	}
}
