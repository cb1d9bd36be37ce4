package inventory

import (
	"comanda/internal/pkg/errs"
)

// StockPolicy is the per-tenant rule governing how insufficient stock is
// handled during order consumption. The policy is resolved once per
// lifecycle call from tenant configuration and passed explicitly into the
// ledger, keeping transaction behavior deterministic and testable.
type StockPolicy int

const (
	// PolicyUnknown represents an invalid or undefined policy.
	PolicyUnknown StockPolicy = iota

	// PolicyStrict blocks consumption that would drive stock negative:
	// the whole transaction fails with an InsufficientStockError.
	PolicyStrict

	// PolicyLowWarn proceeds regardless of low or critical thresholds;
	// shortages surface only through the low-stock projections.
	PolicyLowWarn

	// PolicyDisabled turns enforcement off entirely. Stock may go negative,
	// but every change is still logged.
	PolicyDisabled
)

// getPolicyStrings returns a map of StockPolicy values to their
// configuration representations.
func getPolicyStrings() map[StockPolicy]string {
	return map[StockPolicy]string{
		PolicyStrict:   "STRICT",
		PolicyLowWarn:  "LOW_WARN",
		PolicyDisabled: "DISABLED",
	}
}

// String returns the configuration name of the policy.
func (p StockPolicy) String() string {
	if s, ok := getPolicyStrings()[p]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks that the policy is one of the three configured modes.
func (p StockPolicy) Validate() error {
	if _, ok := getPolicyStrings()[p]; !ok {
		return errs.NewValidationError("stock policy is invalid")
	}
	return nil
}

// Enforces reports whether the policy blocks on insufficient stock.
func (p StockPolicy) Enforces() bool {
	return p == PolicyStrict
}

// PolicyFromString parses a policy from its configuration representation.
// Returns a ValidationError for unrecognized values.
func PolicyFromString(raw string) (StockPolicy, error) {
	for policy, s := range getPolicyStrings() {
		if s == raw {
			return policy, nil
		}
	}
	return PolicyUnknown, errs.NewValidationError("stock policy " + raw + " is not recognized")
}
