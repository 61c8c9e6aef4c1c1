package notifications

import (
	"context"
	"testing"

	"tradein_valuation/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier_ValuationCreated(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	err := n.ValuationCreated(context.Background(), entities.Valuation{
		ID:         "TN01WTSMSG0042",
		FinalValue: decimal.RequireFromString("36500.5"),
		Status:     entities.ValuationStatusPending,
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("valuation created").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "TN01WTSMSG0042", fields["order_id"])
	assert.Equal(t, "36500.50", fields["final_value"])
	assert.Equal(t, "notifier", entries[0].LoggerName)
}

func TestLogNotifier_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewLogNotifier(nil).ValuationCreated(ctx, entities.Valuation{ID: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
