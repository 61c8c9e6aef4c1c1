package interfaces

import (
	"context"
	"tradein_valuation/internal/domain/entities"
)

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_mock.go -package=mock_interfaces

// INotifier dispatches customer/staff notifications. Calls are fire-and-forget:
// a failure is logged by the caller and never fails the submission.
type INotifier interface {
	ValuationCreated(ctx context.Context, v entities.Valuation) error
}
