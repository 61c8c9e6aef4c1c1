package notifications

import (
	"context"

	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogNotifier records valuation events in the service log. It stands in for
// the customer/staff mail integration, which runs outside this service.
type LogNotifier struct {
	logger *zap.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger.Named("notifier")}
}

func (n *LogNotifier) ValuationCreated(ctx context.Context, v entities.Valuation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.logger.Info("valuation created",
		zap.String("order_id", v.ID),
		zap.String("product_id", v.ProductID),
		zap.String("brand", v.Brand),
		zap.String("postal_code", v.PostalCode),
		zap.String("final_value", v.FinalValue.StringFixed(2)),
		zap.String("status", string(v.Status)),
	)
	return nil
}
