package interfaces

import (
	"context"
	"errors"
	"tradein_valuation/internal/domain/entities"
)

//go:generate mockgen -source=pricing_rules_repository_interface.go -destination=mocks/pricing_rules_repository_mock.go -package=mock_interfaces

// ErrMalformedRules is returned when a rule record exists but its document
// cannot be decoded.
var ErrMalformedRules = errors.New("malformed pricing rules")

// IPricingRulesRepository gives point reads over the three rule tiers.
// found is false when the tier has no record.
type IPricingRulesRepository interface {
	GetVariantRules(ctx context.Context, variantID string) (rules entities.PricingRules, found bool, err error)
	GetProductRules(ctx context.Context, productID string) (rules entities.PricingRules, found bool, err error)
	GetGlobalRules(ctx context.Context) (rules entities.PricingRules, found bool, err error)
}
