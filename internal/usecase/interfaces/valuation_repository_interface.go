package interfaces

import (
	"context"
	"errors"
	"tradein_valuation/internal/domain/entities"
)

//go:generate mockgen -source=valuation_repository_interface.go -destination=mocks/valuation_repository_mock.go -package=mock_interfaces

// ErrDuplicateKey is returned by Create when the key is already stored.
var ErrDuplicateKey = errors.New("valuation key already exists")

// IValuationRepository abstracts DynamoDB persistence for Valuation.
//
// The order identifier is the document key, so Create must fail rather than
// overwrite when the key is already taken. Lookups return a zero Valuation
// (empty ID) when nothing is stored under the key. UpdateStatus only writes
// while the stored status still equals from; otherwise it also returns a zero
// Valuation and the caller re-reads to tell a missing record from a moved one.

type IValuationRepository interface {
	Create(ctx context.Context, v entities.Valuation) (entities.Valuation, error)
	GetByID(ctx context.Context, id string) (entities.Valuation, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ValuationStatus) (entities.Valuation, error)
	UpdateRemarks(ctx context.Context, id string, remarks string) (entities.Valuation, error)
}
