package pricing

import (
	"testing"

	"tradein_valuation/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func noOverride() decimal.NullDecimal { return decimal.NullDecimal{} }

func override(pct int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d(pct), Valid: true}
}

func sampleRules() entities.PricingRules {
	return entities.PricingRules{
		Questions: map[string]entities.YesNoModifier{
			PowerOnQuestion: {Yes: 0, No: -2000},
			"callsWorking":  {Yes: 0, No: -800},
			"underWarranty": {Yes: 500, No: 0},
		},
		Display:          entities.ModifierTable{"flawless": 0, "minor_scratches": -300, "cracked": -2500},
		Body:             entities.ModifierTable{"good": 0, "dented": -700},
		FunctionalIssues: entities.ModifierTable{"wifi": -400, "speaker": -250, "face_id": -1200},
		Accessories:      entities.ModifierTable{"charger": 200, "box": 150, "bill": 100},
		Age:              entities.ModifierTable{"lt_3m": 1000, "3_6m": 500, "gt_11m": -500},
	}
}

func TestComputeValue_PowerOn(t *testing.T) {
	cases := []struct {
		name     string
		base     int64
		brand    string
		rules    entities.PricingRules
		override decimal.NullDecimal
		answer   string
		want     int64
	}{
		{name: "high value brand deducts 75 percent", base: 10000, brand: "Samsung", override: noOverride(), answer: "no", want: 2500},
		{name: "brand match is case insensitive", base: 10000, brand: "  APPLE ", override: noOverride(), answer: "no", want: 2500},
		{name: "other brand uses rule table", base: 10000, brand: "Generic", rules: sampleRules(), override: noOverride(), answer: "no", want: 8000},
		{name: "override wins over brand", base: 5000, brand: "Samsung", override: override(90), answer: "no", want: 500},
		{name: "override wins over rule table", base: 5000, brand: "Generic", rules: sampleRules(), override: override(90), answer: "no", want: 500},
		{name: "other brand without rules is untouched", base: 10000, brand: "Generic", override: noOverride(), answer: "no", want: 10000},
		{name: "yes uses rule table only", base: 10000, brand: "Samsung", rules: sampleRules(), override: override(90), answer: "yes", want: 10000},
		{name: "answer is case insensitive", base: 10000, brand: "Generic", rules: sampleRules(), override: noOverride(), answer: "No", want: 8000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answers := entities.AnswerMap{PowerOnQuestion: entities.Single(tc.answer)}
			got := ComputeValue(d(tc.base), answers, tc.rules, tc.brand, tc.override)
			assert.True(t, got.Equal(d(tc.want)), "got %s want %d", got, tc.want)
		})
	}
}

func TestComputeValue_Tables(t *testing.T) {
	answers := entities.AnswerMap{
		PowerOnQuestion:    entities.Single("yes"),
		"callsWorking":     entities.Single("no"),
		"underWarranty":    entities.Single("yes"),
		"displayCondition": entities.Single("minor_scratches"),
		"bodyCondition":    entities.Single("dented"),
		"functionalIssues": entities.Multi("wifi", "speaker"),
		"accessories":      entities.Multi("charger", "box", "bill"),
		"age":              entities.Single("3_6m"),
	}

	got := ComputeValue(d(20000), answers, sampleRules(), "OnePlus", noOverride())

	// -800 + 500 - 300 - 700 - 400 - 250 + 200 + 150 + 100 + 500
	assert.True(t, got.Equal(d(19000)), "got %s", got)
}

func TestComputeValue_TableOptionsIgnoreCase(t *testing.T) {
	answers := entities.AnswerMap{
		"displayCondition": entities.Single("Minor_Scratches"),
		"bodyCondition":    entities.Single(" DENTED "),
		"accessories":      entities.Multi("Charger", "box"),
	}

	res := DefaultEngine().Evaluate(d(1000), answers, sampleRules(), "Generic", noOverride())
	// -300 - 700 + 200 + 150
	assert.True(t, res.FinalValue.Equal(d(350)), "got %s", res.FinalValue)
	require.Len(t, res.Lines, 4)
	assert.Equal(t, "charger", res.Lines[0].Option)
}

func TestComputeValue_PercentDeductionsAreWholeRupees(t *testing.T) {
	answers := entities.AnswerMap{PowerOnQuestion: entities.Single("no")}

	got := ComputeValue(d(999), answers, entities.PricingRules{}, "Apple", noOverride())
	assert.True(t, got.Equal(d(250)), "got %s", got)

	got = ComputeValue(d(999), answers, entities.PricingRules{}, "Generic", override(33))
	assert.True(t, got.Equal(d(669)), "got %s", got)
}

func TestComputeValue_UnknownKeysContributeZero(t *testing.T) {
	answers := entities.AnswerMap{
		"displayCondition": entities.Single("shattered_beyond_repair"),
		"accessories":      entities.Multi("charger", "sticker"),
		"newQuestion":      entities.Single("yes"),
		"callsWorking":     entities.Single("maybe"),
		"underWarranty":    entities.Multi("yes"),
	}

	got := ComputeValue(d(10000), answers, sampleRules(), "Generic", noOverride())
	assert.True(t, got.Equal(d(10200)), "got %s", got)
}

func TestComputeValue_NeverNegative(t *testing.T) {
	rules := entities.PricingRules{
		Display:          entities.ModifierTable{"cracked": -50000},
		FunctionalIssues: entities.ModifierTable{"board": -90000},
	}
	answers := entities.AnswerMap{
		"displayCondition": entities.Single("cracked"),
		"functionalIssues": entities.Multi("board", "board"),
	}

	for _, base := range []int64{0, 1, 999, 10000, 150000} {
		got := ComputeValue(d(base), answers, rules, "Generic", noOverride())
		assert.False(t, got.IsNegative(), "base %d produced %s", base, got)
		assert.True(t, got.IsZero(), "base %d produced %s", base, got)
	}

	got := ComputeValue(d(1000), entities.AnswerMap{PowerOnQuestion: entities.Single("no")}, rules, "x", override(250))
	assert.True(t, got.IsZero())
}

func TestComputeValue_ZeroRulesKeepBasePrice(t *testing.T) {
	answers := entities.AnswerMap{
		"displayCondition": entities.Single("cracked"),
		"accessories":      entities.Multi("charger"),
		"callsWorking":     entities.Single("no"),
	}
	got := ComputeValue(d(7300), answers, entities.ZeroPricingRules(), "Generic", noOverride())
	assert.True(t, got.Equal(d(7300)))
}

func TestEvaluate_IsDeterministic(t *testing.T) {
	answers := entities.AnswerMap{
		"functionalIssues": entities.Multi("face_id", "wifi"),
		"accessories":      entities.Multi("box"),
		"callsWorking":     entities.Single("no"),
		"age":              entities.Single("gt_11m"),
	}
	e := DefaultEngine()

	first := e.Evaluate(d(30000), answers, sampleRules(), "Apple", noOverride())
	second := e.Evaluate(d(30000), answers, sampleRules(), "Apple", noOverride())

	require.Equal(t, first.Lines, second.Lines)
	assert.True(t, first.FinalValue.Equal(second.FinalValue))
	assert.True(t, first.Modifier.Equal(d(-1200-400+150-800-500)))
	require.Len(t, first.Lines, 5)
	assert.Equal(t, "accessories", first.Lines[0].Question)
}

func TestNewEngine_CustomBrands(t *testing.T) {
	e := NewEngine([]string{"Sony", ""}, 60)
	assert.True(t, e.IsHighValueBrand("sony"))
	assert.False(t, e.IsHighValueBrand("samsung"))
	assert.False(t, e.IsHighValueBrand(""))

	got := e.ComputeValue(d(10000), entities.AnswerMap{PowerOnQuestion: entities.Single("no")}, entities.PricingRules{}, "SONY", noOverride())
	assert.True(t, got.Equal(d(4000)), "got %s", got)
}
