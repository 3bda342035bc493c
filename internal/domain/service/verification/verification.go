package verification

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"vendor_verify/internal/domain/entity"
	"vendor_verify/internal/domain/value"
	"vendor_verify/pkg/contextx"
	"vendor_verify/pkg/logx"
)

const (
	StepGSTINValidation = "GSTIN Validation"
	StepFilingStatus    = "Filing Status"
	StepReputationCheck = "Online Reputation Check"
	StepPANCheck        = "PAN Check"

	gstinCheckedMessage = "GSTIN check completed."
	filingStatusPrefix  = "Status: "
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "vendor_verify",
	Name:      "submissions_total",
	Help:      "Vendor submissions verified, by overall outcome.",
}, []string{"completed"})

//go:generate moq -rm -out verification_mock.gen.go . taxStatusClient:TaxStatusClientMock reputationClient:ReputationClientMock
type taxStatusClient interface {
	Status(ctx context.Context, gstin string) value.TaxStatus
}

type reputationClient interface {
	Reputation(ctx context.Context, businessName string) value.Reputation
}

type randomSource interface {
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) Float64() float64 {
	return rand.Float64() //nolint:gosec // mock outcomes only
}

type Service struct {
	taxStatus  taxStatusClient
	reputation reputationClient
	random     randomSource
	mockPass   float64
}

func NewService(
	taxStatus taxStatusClient,
	reputation reputationClient,
) *Service {
	return &Service{
		taxStatus:  taxStatus,
		reputation: reputation,
		random:     globalRandom{},
		mockPass:   defaultMockPassThreshold,
	}
}

// WithRandomSource replaces the source behind the mock status endpoint.
func (s *Service) WithRandomSource(random randomSource) *Service {
	s.random = random
	return s
}

// Submit checks a vendor against both providers and aggregates the outcome.
// Provider failures are already folded into their default values, so Submit
// itself cannot fail.
func (s *Service) Submit(ctx context.Context, vendor entity.Vendor) entity.Verification {
	// Once issued, provider calls run to completion even if the caller leaves.
	callCtx := context.WithoutCancel(ctx)

	var (
		taxStatus  value.TaxStatus
		reputation value.Reputation
		g          errgroup.Group
	)

	g.Go(func() error {
		taxStatus = s.taxStatus.Status(callCtx, vendor.GSTIN)
		return nil
	})

	g.Go(func() error {
		reputation = s.reputation.Reputation(callCtx, vendor.Name)
		return nil
	})

	_ = g.Wait() //nolint:errcheck // goroutines never fail

	result := Aggregate(vendor, taxStatus, reputation)

	submissionsTotal.WithLabelValues(strconv.FormatBool(result.Completed)).Inc()

	logger(ctx).Info(
		"vendor verified",
		slog.String(logx.FieldGSTIN, vendor.GSTIN),
		slog.Bool(logx.FieldCompleted, result.Completed),
		slog.Int(logx.FieldReviews, len(reputation.Reviews)),
	)

	return result
}

// Aggregate builds the three-step report. The filing-status step always
// completes, and an empty review list fails the reputation step whether the
// provider errored or genuinely found nothing.
func Aggregate(
	vendor entity.Vendor,
	taxStatus value.TaxStatus,
	reputation value.Reputation,
) entity.Verification {
	reviews := reputation.Reviews
	if reviews == nil {
		reviews = []value.Review{}
	}

	steps := []entity.VerificationStep{
		{
			Name:    StepGSTINValidation,
			Status:  value.StepStatusOf(taxStatus.Valid),
			Message: gstinCheckedMessage,
		},
		{
			Name:    StepFilingStatus,
			Status:  value.StepCompleted,
			Message: filingStatusPrefix + taxStatus.FilingStatus,
		},
		{
			Name:    StepReputationCheck,
			Status:  value.StepStatusOf(len(reviews) > 0),
			Message: reputation.Summary,
		},
	}

	return entity.Verification{
		Vendor:           vendor,
		Steps:            steps,
		Completed:        lo.EveryBy(steps, entity.VerificationStep.Completed),
		GSTINValid:       lo.ToPtr(taxStatus.Valid),
		FilingStatus:     lo.ToPtr(taxStatus.FilingStatus),
		Reviews:          reviews,
		ReputationResult: lo.ToPtr(reputation.Summary),
	}
}
