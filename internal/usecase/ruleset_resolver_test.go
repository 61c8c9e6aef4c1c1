package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/usecase/interfaces"
	mock_interfaces "tradein_valuation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func rulesWithDisplay(option string, amount int64) entities.PricingRules {
	return entities.PricingRules{Display: entities.ModifierTable{option: amount}}
}

func TestRuleSetResolver_Resolve(t *testing.T) {
	t.Run("variant tier returned whole", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRulesRepository(ctrl)
		r := NewRuleSetResolver(repo, nil)

		variant := rulesWithDisplay("cracked", -100)
		repo.EXPECT().GetVariantRules(gomock.Any(), "v-1").Return(variant, true, nil)
		// Product and global tiers must not be consulted.

		rules, tier, err := r.Resolve(context.Background(), "p-1", " v-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tier != RuleTierVariant {
			t.Fatalf("expected variant tier, got %s", tier)
		}
		if len(rules.Body) != 0 || rules.Display["cracked"] != -100 {
			t.Fatalf("expected variant rules only, got %+v", rules)
		}
	})

	t.Run("falls back to product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRulesRepository(ctrl)
		r := NewRuleSetResolver(repo, nil)

		gomock.InOrder(
			repo.EXPECT().GetVariantRules(gomock.Any(), "v-1").Return(entities.PricingRules{}, false, nil),
			repo.EXPECT().GetProductRules(gomock.Any(), "p-1").Return(rulesWithDisplay("cracked", -200), true, nil),
		)

		rules, tier, err := r.Resolve(context.Background(), "p-1", "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tier != RuleTierProduct || rules.Display["cracked"] != -200 {
			t.Fatalf("unexpected resolution: %s %+v", tier, rules)
		}
	})

	t.Run("malformed tier is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRulesRepository(ctrl)
		r := NewRuleSetResolver(repo, nil)

		repo.EXPECT().GetVariantRules(gomock.Any(), "v-1").Return(entities.PricingRules{}, false, fmt.Errorf("decode: %w", interfaces.ErrMalformedRules))
		repo.EXPECT().GetProductRules(gomock.Any(), "p-1").Return(entities.PricingRules{}, false, nil)
		repo.EXPECT().GetGlobalRules(gomock.Any()).Return(rulesWithDisplay("cracked", -300), true, nil)

		rules, tier, err := r.Resolve(context.Background(), "p-1", "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tier != RuleTierGlobal || rules.Display["cracked"] != -300 {
			t.Fatalf("unexpected resolution: %s %+v", tier, rules)
		}
	})

	t.Run("no variant id skips variant tier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRulesRepository(ctrl)
		r := NewRuleSetResolver(repo, nil)

		repo.EXPECT().GetProductRules(gomock.Any(), "p-1").Return(rulesWithDisplay("cracked", -1), true, nil)

		_, tier, err := r.Resolve(context.Background(), "p-1", "")
		if err != nil || tier != RuleTierProduct {
			t.Fatalf("unexpected: %s %v", tier, err)
		}
	})

	t.Run("every tier absent yields baseline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRulesRepository(ctrl)
		r := NewRuleSetResolver(repo, nil)

		repo.EXPECT().GetVariantRules(gomock.Any(), "v-1").Return(entities.PricingRules{}, false, nil)
		repo.EXPECT().GetProductRules(gomock.Any(), "p-1").Return(entities.PricingRules{}, false, nil)
		repo.EXPECT().GetGlobalRules(gomock.Any()).Return(entities.PricingRules{}, false, nil)

		rules, tier, err := r.Resolve(context.Background(), "p-1", "v-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tier != RuleTierBaseline {
			t.Fatalf("expected baseline, got %s", tier)
		}
		if len(rules.Questions) != 0 || len(rules.Display) != 0 {
			t.Fatalf("expected zero rules, got %+v", rules)
		}
	})

	t.Run("store failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingRulesRepository(ctrl)
		r := NewRuleSetResolver(repo, nil)

		repo.EXPECT().GetVariantRules(gomock.Any(), "v-1").Return(entities.PricingRules{}, false, errors.New("throttled"))

		_, _, err := r.Resolve(context.Background(), "p-1", "v-1")
		if !errors.Is(err, ErrRulesUnavailable) {
			t.Fatalf("expected ErrRulesUnavailable, got %v", err)
		}
	})
}
