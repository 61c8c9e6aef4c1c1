package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tradein_valuation/internal/domain/geo"

	"go.uber.org/zap"
)

// OrderIDProductPrefix is the fixed storefront marker inside every order id.
const OrderIDProductPrefix = "WT"

var ErrOrderIDUnavailable = errors.New("order identifier unavailable")

// Sequencer hands out unique, increasing integers.
type Sequencer interface {
	Next(ctx context.Context) (int64, error)
}

// OrderIDRequest carries what the identifier encodes. State, when it names a
// known state, overrides the region derived from PostalCode.
type OrderIDRequest struct {
	PostalCode string
	Category   string
	Brand      string
	State      string
}

// OrderIDGenerator builds {Region}{SubRegion}WT{Category}{Seq:04d}.
type OrderIDGenerator struct {
	regions *geo.RegionTable
	seq     Sequencer
	logger  *zap.Logger
}

func NewOrderIDGenerator(regions *geo.RegionTable, seq Sequencer, logger *zap.Logger) *OrderIDGenerator {
	if regions == nil {
		regions = geo.DefaultRegionTable()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderIDGenerator{regions: regions, seq: seq, logger: logger}
}

// Generate resolves the region and category codes, then claims a sequence
// number. Any allocation failure is fatal: a valuation must never be stored
// without its key.
func (g *OrderIDGenerator) Generate(ctx context.Context, req OrderIDRequest) (string, error) {
	region := g.ResolveRegion(req.PostalCode, req.State)
	category := geo.ResolveCategoryCode(req.Category, req.Brand)

	n, err := g.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOrderIDUnavailable, err)
	}

	id := FormatOrderID(region, category, n)
	g.logger.Info("order identifier generated",
		zap.String("order_id", id),
		zap.String("postal_code", req.PostalCode),
		zap.String("category_code", category),
		zap.Int64("sequence", n))
	return id, nil
}

// ResolveRegion applies the state override, then the postal table.
func (g *OrderIDGenerator) ResolveRegion(postalCode, state string) geo.Region {
	fromPostal, matched := g.regions.Lookup(postalCode)
	if !matched {
		g.logger.Warn("postal code outside every range, using default region",
			zap.String("postal_code", postalCode),
			zap.String("region", fromPostal.Code))
	}

	if strings.TrimSpace(state) == "" {
		return fromPostal
	}
	code, ok := geo.StateCode(state)
	if !ok {
		g.logger.Warn("unknown state override ignored", zap.String("state", state))
		return fromPostal
	}
	if matched && fromPostal.Code == code {
		return fromPostal
	}
	return geo.Region{Code: code, SubRegion: g.regions.Default().SubRegion}
}

// FormatOrderID renders the identifier. Sequence numbers are padded to at
// least four digits.
func FormatOrderID(region geo.Region, categoryCode string, seq int64) string {
	return fmt.Sprintf("%s%s%s%s%04d", region.Code, region.SubRegion, OrderIDProductPrefix, categoryCode, seq)
}
