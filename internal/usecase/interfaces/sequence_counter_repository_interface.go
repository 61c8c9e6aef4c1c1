package interfaces

import (
	"context"
	"errors"
)

//go:generate mockgen -source=sequence_counter_repository_interface.go -destination=mocks/sequence_counter_repository_mock.go -package=mock_interfaces

// ErrSequenceContention is returned by IncrementTx when another writer
// changed the counter between the read and the write.
var ErrSequenceContention = errors.New("sequence counter contention")

// ISequenceCounterRepository owns the single counter record behind order
// identifiers.
//
//   - IncrementTx reads and bumps the counter inside one serializable
//     transaction and returns the claimed value.
//   - IncrementBestEffort does a plain read then write. Two concurrent callers
//     can claim the same value; it only exists for the degraded path.
type ISequenceCounterRepository interface {
	IncrementTx(ctx context.Context) (int64, error)
	IncrementBestEffort(ctx context.Context) (int64, error)
	Current(ctx context.Context) (int64, error)
}
