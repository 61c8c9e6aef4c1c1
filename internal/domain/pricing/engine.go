// Package pricing turns a questionnaire answer map into a trade-in value.
//
// The engine is pure: it reads only its arguments and never fails for
// structurally valid input. Options that have no configured modifier are
// worth zero, since the questionnaire and the rule tables evolve separately.
package pricing

import (
	"slices"
	"strings"

	"tradein_valuation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PowerOnQuestion is the question whose "no" answer gets special handling.
const PowerOnQuestion = "powerOn"

// DefaultPowerOffDeductionPercent is the share of the base price removed for
// a high-value brand device that does not power on.
const DefaultPowerOffDeductionPercent = 75

// DefaultHighValueBrands lose a fixed percentage when they do not power on.
var DefaultHighValueBrands = []string{"apple", "samsung"}

var hundred = decimal.NewFromInt(100)

// Line sources, recorded on each breakdown line.
const (
	SourceOverride = "override_percent"
	SourceBrand    = "brand_percent"
	SourceQuestion = "question"
	SourceTable    = "table"
)

const (
	answerYes = "yes"
	answerNo  = "no"
)

// tableQuestions routes condition/grade questions to their modifier table.
var tableQuestions = map[string]func(entities.PricingRules) entities.ModifierTable{
	"displayCondition": func(r entities.PricingRules) entities.ModifierTable { return r.Display },
	"bodyCondition":    func(r entities.PricingRules) entities.ModifierTable { return r.Body },
	"lensCondition":    func(r entities.PricingRules) entities.ModifierTable { return r.Lens },
	"errorCondition":   func(r entities.PricingRules) entities.ModifierTable { return r.Error },
	"cameraCondition":  func(r entities.PricingRules) entities.ModifierTable { return r.Camera },
	"rubberCondition":  func(r entities.PricingRules) entities.ModifierTable { return r.Rubber },
	"sensorCondition":  func(r entities.PricingRules) entities.ModifierTable { return r.Sensor },
	"functionalIssues": func(r entities.PricingRules) entities.ModifierTable { return r.FunctionalIssues },
	"accessories":      func(r entities.PricingRules) entities.ModifierTable { return r.Accessories },
	"age":              func(r entities.PricingRules) entities.ModifierTable { return r.Age },
	"ageBracket":       func(r entities.PricingRules) entities.ModifierTable { return r.Age },
}

// Line is one modifier contribution, kept so staff can see how a value was built.
type Line struct {
	Question string          `json:"question"`
	Option   string          `json:"option"`
	Source   string          `json:"source"`
	Amount   decimal.Decimal `json:"amount"`
}

// Result is the full outcome of an evaluation.
type Result struct {
	BasePrice  decimal.Decimal `json:"base_price"`
	Modifier   decimal.Decimal `json:"modifier"`
	FinalValue decimal.Decimal `json:"final_value"`
	Lines      []Line          `json:"lines"`
}

// Engine evaluates answers against pricing rules. The zero value is not
// usable; build it with NewEngine or DefaultEngine.
type Engine struct {
	highValueBrands   map[string]struct{}
	powerOffDeduction decimal.Decimal
}

// NewEngine builds an engine with the given high-value brand set and the
// percentage those brands lose when they do not power on.
func NewEngine(highValueBrands []string, powerOffDeductionPercent float64) *Engine {
	brands := make(map[string]struct{}, len(highValueBrands))
	for _, b := range highValueBrands {
		b = normalize(b)
		if b != "" {
			brands[b] = struct{}{}
		}
	}
	return &Engine{
		highValueBrands:   brands,
		powerOffDeduction: decimal.NewFromFloat(powerOffDeductionPercent),
	}
}

// DefaultEngine uses DefaultHighValueBrands and DefaultPowerOffDeductionPercent.
func DefaultEngine() *Engine {
	return NewEngine(DefaultHighValueBrands, DefaultPowerOffDeductionPercent)
}

// ComputeValue returns max(0, basePrice + modifiers). overridePercent, when
// valid, replaces the brand and rule-table handling of a "no" power-on answer.
func (e *Engine) ComputeValue(basePrice decimal.Decimal, answers entities.AnswerMap, rules entities.PricingRules, brand string, overridePercent decimal.NullDecimal) decimal.Decimal {
	return e.Evaluate(basePrice, answers, rules, brand, overridePercent).FinalValue
}

// Evaluate is ComputeValue with the per-question breakdown.
func (e *Engine) Evaluate(basePrice decimal.Decimal, answers entities.AnswerMap, rules entities.PricingRules, brand string, overridePercent decimal.NullDecimal) Result {
	var lines []Line

	questions := make([]string, 0, len(answers))
	for q := range answers {
		questions = append(questions, q)
	}
	slices.Sort(questions)

	for _, q := range questions {
		answer := answers[q]
		switch {
		case q == PowerOnQuestion:
			if l, ok := e.powerOnLine(basePrice, answer, rules, brand, overridePercent); ok {
				lines = append(lines, l)
			}
		case tableQuestions[q] != nil:
			table := tableQuestions[q](rules)
			for _, opt := range answer.Options() {
				if key, amount, ok := lookupOption(table, opt); ok {
					lines = append(lines, Line{Question: q, Option: key, Source: SourceTable, Amount: decimal.NewFromInt(amount)})
				}
			}
		default:
			if answer.IsMulti() {
				continue
			}
			opt := normalize(answer.Value())
			if amount, ok := rules.QuestionModifier(q, opt); ok {
				lines = append(lines, Line{Question: q, Option: opt, Source: SourceQuestion, Amount: decimal.NewFromInt(amount)})
			}
		}
	}

	modifier := decimal.Zero
	for _, l := range lines {
		modifier = modifier.Add(l.Amount)
	}

	final := basePrice.Add(modifier)
	if final.IsNegative() {
		final = decimal.Zero
	}
	return Result{BasePrice: basePrice, Modifier: modifier, FinalValue: final, Lines: lines}
}

func (e *Engine) powerOnLine(basePrice decimal.Decimal, answer entities.Answer, rules entities.PricingRules, brand string, overridePercent decimal.NullDecimal) (Line, bool) {
	opt := normalize(answer.Value())
	switch opt {
	case answerNo:
		if overridePercent.Valid {
			return Line{
				Question: PowerOnQuestion, Option: opt, Source: SourceOverride,
				Amount: percentOf(basePrice, overridePercent.Decimal).Neg(),
			}, true
		}
		if e.IsHighValueBrand(brand) {
			return Line{
				Question: PowerOnQuestion, Option: opt, Source: SourceBrand,
				Amount: percentOf(basePrice, e.powerOffDeduction).Neg(),
			}, true
		}
	case answerYes:
	default:
		return Line{}, false
	}
	amount, ok := rules.QuestionModifier(PowerOnQuestion, opt)
	if !ok {
		return Line{}, false
	}
	return Line{Question: PowerOnQuestion, Option: opt, Source: SourceQuestion, Amount: decimal.NewFromInt(amount)}, true
}

// IsHighValueBrand matches brand case-insensitively.
func (e *Engine) IsHighValueBrand(brand string) bool {
	_, ok := e.highValueBrands[normalize(brand)]
	return ok
}

var defaultEngine = DefaultEngine()

// ComputeValue evaluates with the default engine.
func ComputeValue(basePrice decimal.Decimal, answers entities.AnswerMap, rules entities.PricingRules, brand string, overridePercent decimal.NullDecimal) decimal.Decimal {
	return defaultEngine.ComputeValue(basePrice, answers, rules, brand, overridePercent)
}

// percentOf is pct percent of amount, rounded to whole rupees.
func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred).Round(0)
}

// lookupOption finds opt in a condition table. An exact key wins; otherwise
// keys are compared after trimming and lower-casing, in sorted key order.
func lookupOption(table entities.ModifierTable, opt string) (string, int64, bool) {
	if amount, ok := table[opt]; ok {
		return opt, amount, true
	}
	want := normalize(opt)
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if normalize(k) == want {
			return k, table[k], true
		}
	}
	return "", 0, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
