package usecase

import (
	"context"
	"errors"
	"testing"

	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/domain/geo"
	"tradein_valuation/internal/domain/pricing"
	"tradein_valuation/internal/usecase/interfaces"
	mock_interfaces "tradein_valuation/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type valuationMocks struct {
	valuations *mock_interfaces.MockIValuationRepository
	rules      *mock_interfaces.MockIPricingRulesRepository
	counter    *mock_interfaces.MockISequenceCounterRepository
	notifier   *mock_interfaces.MockINotifier
}

func newValuationUseCase(t *testing.T) (*ValuationUseCase, valuationMocks) {
	ctrl := gomock.NewController(t)
	m := valuationMocks{
		valuations: mock_interfaces.NewMockIValuationRepository(ctrl),
		rules:      mock_interfaces.NewMockIPricingRulesRepository(ctrl),
		counter:    mock_interfaces.NewMockISequenceCounterRepository(ctrl),
		notifier:   mock_interfaces.NewMockINotifier(ctrl),
	}
	alloc := NewSequenceAllocator(m.counter, SequenceAllocatorConfig{MaxAttempts: 2}, nil)
	alloc.sleep = noSleep
	uc := NewValuationUseCase(
		m.valuations,
		NewRuleSetResolver(m.rules, nil),
		pricing.DefaultEngine(),
		NewOrderIDGenerator(geo.DefaultRegionTable(), alloc, nil),
		m.notifier,
		nil,
	)
	uc.dispatch = func(f func()) { f() }
	return uc, m
}

func samsungInput() ValuationInput {
	return ValuationInput{
		ProductID:  " galaxy-s23 ",
		VariantID:  "galaxy-s23-256",
		Category:   "phones",
		Brand:      "Samsung",
		Model:      "Galaxy S23",
		PostalCode: "600005",
		Answers: entities.AnswerMap{
			pricing.PowerOnQuestion: entities.Single("no"),
		},
		BasePrice: decimal.NewFromInt(10000),
	}
}

func TestValuationUseCase_Quote(t *testing.T) {
	t.Run("invalid product", func(t *testing.T) {
		uc, _ := newValuationUseCase(t)
		in := samsungInput()
		in.ProductID = "  "
		_, err := uc.Quote(context.Background(), in)
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("negative base price", func(t *testing.T) {
		uc, _ := newValuationUseCase(t)
		in := samsungInput()
		in.BasePrice = decimal.NewFromInt(-1)
		_, err := uc.Quote(context.Background(), in)
		if !errors.Is(err, ErrInvalidBasePrice) {
			t.Fatalf("expected ErrInvalidBasePrice, got %v", err)
		}
	})

	t.Run("override out of range", func(t *testing.T) {
		uc, _ := newValuationUseCase(t)
		in := samsungInput()
		in.PowerOffOverridePercent = decimal.NewNullDecimal(decimal.NewFromInt(101))
		_, err := uc.Quote(context.Background(), in)
		if !errors.Is(err, ErrInvalidOverridePercent) {
			t.Fatalf("expected ErrInvalidOverridePercent, got %v", err)
		}
	})

	t.Run("generic brand uses product rules", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		in := samsungInput()
		in.Brand = "Generic"
		m.rules.EXPECT().GetVariantRules(gomock.Any(), "galaxy-s23-256").Return(entities.PricingRules{}, false, nil)
		m.rules.EXPECT().GetProductRules(gomock.Any(), "galaxy-s23").Return(entities.PricingRules{
			Questions: map[string]entities.YesNoModifier{pricing.PowerOnQuestion: {No: -2000}},
		}, true, nil)

		q, err := uc.Quote(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Tier != RuleTierProduct || !q.Result.FinalValue.Equal(decimal.NewFromInt(8000)) {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("rules store failure", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		m.rules.EXPECT().GetVariantRules(gomock.Any(), gomock.Any()).Return(entities.PricingRules{}, false, errors.New("db"))

		_, err := uc.Quote(context.Background(), samsungInput())
		if !errors.Is(err, ErrRulesUnavailable) {
			t.Fatalf("expected ErrRulesUnavailable, got %v", err)
		}
	})
}

func TestValuationUseCase_Submit(t *testing.T) {
	expectNoRules := func(m valuationMocks) {
		m.rules.EXPECT().GetVariantRules(gomock.Any(), gomock.Any()).Return(entities.PricingRules{}, false, nil)
		m.rules.EXPECT().GetProductRules(gomock.Any(), gomock.Any()).Return(entities.PricingRules{}, false, nil)
		m.rules.EXPECT().GetGlobalRules(gomock.Any()).Return(entities.PricingRules{}, false, nil)
	}

	t.Run("success", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		expectNoRules(m)
		m.counter.EXPECT().IncrementTx(gomock.Any()).Return(int64(42), nil)
		m.valuations.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Valuation{})).DoAndReturn(
			func(_ context.Context, v entities.Valuation) (entities.Valuation, error) {
				if v.ID != "TN01WTSMSG0042" || v.ProductID != "galaxy-s23" || v.Status != entities.ValuationStatusPending {
					t.Fatalf("unexpected valuation: %+v", v)
				}
				if !v.FinalValue.Equal(decimal.NewFromInt(2500)) || !v.BasePrice.Equal(decimal.NewFromInt(10000)) {
					t.Fatalf("unexpected amounts: base=%s final=%s", v.BasePrice, v.FinalValue)
				}
				if v.CreatedAt.IsZero() || v.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return v, nil
			},
		)
		m.notifier.EXPECT().ValuationCreated(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Submit(context.Background(), samsungInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "TN01WTSMSG0042" {
			t.Fatalf("unexpected id %s", res.ID)
		}
	})

	t.Run("notification failure does not fail submission", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		expectNoRules(m)
		m.counter.EXPECT().IncrementTx(gomock.Any()).Return(int64(1), nil)
		m.valuations.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Valuation) (entities.Valuation, error) { return v, nil },
		)
		m.notifier.EXPECT().ValuationCreated(gomock.Any(), gomock.Any()).Return(errors.New("sms down"))

		if _, err := uc.Submit(context.Background(), samsungInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("id generation failure aborts before persistence", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		expectNoRules(m)
		m.counter.EXPECT().IncrementTx(gomock.Any()).Return(int64(0), interfaces.ErrSequenceContention).Times(2)
		m.counter.EXPECT().IncrementBestEffort(gomock.Any()).Return(int64(0), errors.New("down"))
		// No Create and no notification expected.

		_, err := uc.Submit(context.Background(), samsungInput())
		if !errors.Is(err, ErrOrderIDUnavailable) {
			t.Fatalf("expected ErrOrderIDUnavailable, got %v", err)
		}
	})

	t.Run("duplicate key", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		expectNoRules(m)
		m.counter.EXPECT().IncrementTx(gomock.Any()).Return(int64(3), nil)
		m.valuations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Valuation{}, interfaces.ErrDuplicateKey)

		_, err := uc.Submit(context.Background(), samsungInput())
		if !errors.Is(err, ErrOrderIDCollision) {
			t.Fatalf("expected ErrOrderIDCollision, got %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		expectNoRules(m)
		m.counter.EXPECT().IncrementTx(gomock.Any()).Return(int64(3), nil)
		m.valuations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Valuation{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), samsungInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestValuationUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newValuationUseCase(t)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidValuationID) {
			t.Fatalf("expected ErrInvalidValuationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		m.valuations.EXPECT().GetByID(gomock.Any(), "TN01WTSMSG0001").Return(entities.Valuation{}, nil)
		_, err := uc.GetByID(context.Background(), "TN01WTSMSG0001")
		if !errors.Is(err, ErrValuationNotFound) {
			t.Fatalf("expected ErrValuationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		m.valuations.EXPECT().GetByID(gomock.Any(), "TN01WTSMSG0001").Return(entities.Valuation{ID: "TN01WTSMSG0001"}, nil)
		res, err := uc.GetByID(context.Background(), " TN01WTSMSG0001 ")
		if err != nil || res.ID != "TN01WTSMSG0001" {
			t.Fatalf("unexpected: %+v %v", res, err)
		}
	})
}

func TestValuationUseCase_UpdateStatus(t *testing.T) {
	const id = "TN01WTSMSG0001"

	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newValuationUseCase(t)
		_, err := uc.UpdateStatus(context.Background(), id, "lost")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("terminal status cannot be left", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		m.valuations.EXPECT().GetByID(gomock.Any(), id).Return(entities.Valuation{ID: id, Status: entities.ValuationStatusCompleted}, nil)
		_, err := uc.UpdateStatus(context.Background(), id, entities.ValuationStatusHold)
		if !errors.Is(err, ErrValuationTerminal) {
			t.Fatalf("expected ErrValuationTerminal, got %v", err)
		}
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		m.valuations.EXPECT().GetByID(gomock.Any(), id).Return(entities.Valuation{ID: id, Status: entities.ValuationStatusCancelled}, nil)
		res, err := uc.UpdateStatus(context.Background(), id, entities.ValuationStatusCancelled)
		if err != nil || res.Status != entities.ValuationStatusCancelled {
			t.Fatalf("unexpected: %+v %v", res, err)
		}
	})

	t.Run("pickup transition", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		m.valuations.EXPECT().GetByID(gomock.Any(), id).Return(entities.Valuation{ID: id, Status: entities.ValuationStatusConfirmed}, nil)
		m.valuations.EXPECT().UpdateStatus(gomock.Any(), id, entities.ValuationStatusConfirmed, entities.ValuationStatusPickedUp).Return(entities.Valuation{ID: id, Status: entities.ValuationStatusPickedUp}, nil)

		res, err := uc.UpdateStatus(context.Background(), id, " PICKED_UP ")
		if err != nil || res.Status != entities.ValuationStatusPickedUp {
			t.Fatalf("unexpected: %+v %v", res, err)
		}
	})

	t.Run("vanished during update", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		m.valuations.EXPECT().GetByID(gomock.Any(), id).Return(entities.Valuation{ID: id, Status: entities.ValuationStatusPending}, nil)
		m.valuations.EXPECT().UpdateStatus(gomock.Any(), id, entities.ValuationStatusPending, entities.ValuationStatusConfirmed).Return(entities.Valuation{}, nil)
		m.valuations.EXPECT().GetByID(gomock.Any(), id).Return(entities.Valuation{}, nil)

		_, err := uc.UpdateStatus(context.Background(), id, entities.ValuationStatusConfirmed)
		if !errors.Is(err, ErrValuationNotFound) {
			t.Fatalf("expected ErrValuationNotFound, got %v", err)
		}
	})

	t.Run("completed between read and write stays completed", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		stored := entities.ValuationStatusPending
		m.valuations.EXPECT().GetByID(gomock.Any(), id).DoAndReturn(func(_ context.Context, _ string) (entities.Valuation, error) {
			v := entities.Valuation{ID: id, Status: stored}
			// staff close the order right after this read
			stored = entities.ValuationStatusCompleted
			return v, nil
		}).Times(2)
		m.valuations.EXPECT().UpdateStatus(gomock.Any(), id, gomock.Any(), entities.ValuationStatusHold).DoAndReturn(
			func(_ context.Context, _ string, from, to entities.ValuationStatus) (entities.Valuation, error) {
				if stored != from {
					return entities.Valuation{}, nil
				}
				stored = to
				return entities.Valuation{ID: id, Status: to}, nil
			})

		_, err := uc.UpdateStatus(context.Background(), id, entities.ValuationStatusHold)
		if !errors.Is(err, ErrValuationTerminal) {
			t.Fatalf("expected ErrValuationTerminal, got %v", err)
		}
		if stored != entities.ValuationStatusCompleted {
			t.Fatalf("expected stored status completed, got %s", stored)
		}
	})

	t.Run("moved to another open status", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		m.valuations.EXPECT().GetByID(gomock.Any(), id).Return(entities.Valuation{ID: id, Status: entities.ValuationStatusPending}, nil)
		m.valuations.EXPECT().UpdateStatus(gomock.Any(), id, entities.ValuationStatusPending, entities.ValuationStatusPickedUp).Return(entities.Valuation{}, nil)
		m.valuations.EXPECT().GetByID(gomock.Any(), id).Return(entities.Valuation{ID: id, Status: entities.ValuationStatusHold}, nil)

		_, err := uc.UpdateStatus(context.Background(), id, entities.ValuationStatusPickedUp)
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("another writer already applied the same status", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		m.valuations.EXPECT().GetByID(gomock.Any(), id).Return(entities.Valuation{ID: id, Status: entities.ValuationStatusPending}, nil)
		m.valuations.EXPECT().UpdateStatus(gomock.Any(), id, entities.ValuationStatusPending, entities.ValuationStatusConfirmed).Return(entities.Valuation{}, nil)
		m.valuations.EXPECT().GetByID(gomock.Any(), id).Return(entities.Valuation{ID: id, Status: entities.ValuationStatusConfirmed}, nil)

		res, err := uc.UpdateStatus(context.Background(), id, entities.ValuationStatusConfirmed)
		if err != nil || res.Status != entities.ValuationStatusConfirmed {
			t.Fatalf("unexpected: %+v %v", res, err)
		}
	})
}

func TestValuationUseCase_UpdateRemarks(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newValuationUseCase(t)
		_, err := uc.UpdateRemarks(context.Background(), "", "x")
		if !errors.Is(err, ErrInvalidValuationID) {
			t.Fatalf("expected ErrInvalidValuationID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		m.valuations.EXPECT().UpdateRemarks(gomock.Any(), "id-1", "screen swapped").Return(entities.Valuation{ID: "id-1", Remarks: "screen swapped"}, nil)
		res, err := uc.UpdateRemarks(context.Background(), "id-1", "  screen swapped ")
		if err != nil || res.Remarks != "screen swapped" {
			t.Fatalf("unexpected: %+v %v", res, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newValuationUseCase(t)
		m.valuations.EXPECT().UpdateRemarks(gomock.Any(), "id-1", "x").Return(entities.Valuation{}, nil)
		_, err := uc.UpdateRemarks(context.Background(), "id-1", "x")
		if !errors.Is(err, ErrValuationNotFound) {
			t.Fatalf("expected ErrValuationNotFound, got %v", err)
		}
	})
}
