package entities

// ModifierTable maps an enumerated option identifier to a signed amount in
// whole rupees. Options missing from the table are worth zero.
type ModifierTable map[string]int64

// Lookup returns the modifier for option, or zero when it is not configured.
func (t ModifierTable) Lookup(option string) int64 {
	return t[option]
}

// YesNoModifier holds the two amounts of a yes/no question.
type YesNoModifier struct {
	Yes int64 `json:"yes" yaml:"yes"`
	No  int64 `json:"no" yaml:"no"`
}

// PricingRules is the staff-configured set of modifier tables for one product,
// variant or the global defaults.
//
// Storage model (DynamoDB, pricing_rules table):
//   - PK: id = variant#{variantId} | product#{productId} | global#default
//   - rules: the JSON document of this struct
type PricingRules struct {
	Questions map[string]YesNoModifier `json:"questions,omitempty" yaml:"questions,omitempty"`

	Display ModifierTable `json:"display,omitempty" yaml:"display,omitempty"`
	Body    ModifierTable `json:"body,omitempty" yaml:"body,omitempty"`
	Lens    ModifierTable `json:"lens,omitempty" yaml:"lens,omitempty"`
	Error   ModifierTable `json:"error,omitempty" yaml:"error,omitempty"`
	Camera  ModifierTable `json:"camera,omitempty" yaml:"camera,omitempty"`
	Rubber  ModifierTable `json:"rubber,omitempty" yaml:"rubber,omitempty"`
	Sensor  ModifierTable `json:"sensor,omitempty" yaml:"sensor,omitempty"`

	FunctionalIssues ModifierTable `json:"functionalIssues,omitempty" yaml:"functionalIssues,omitempty"`
	Accessories      ModifierTable `json:"accessories,omitempty" yaml:"accessories,omitempty"`
	Age              ModifierTable `json:"age,omitempty" yaml:"age,omitempty"`
}

// ZeroPricingRules is the baseline used when no tier is configured: every
// lookup yields zero, so the final value equals the base price.
func ZeroPricingRules() PricingRules {
	return PricingRules{}
}

// QuestionModifier returns the configured amount for a yes/no answer and
// whether an entry exists for it.
func (r PricingRules) QuestionModifier(question, answer string) (int64, bool) {
	m, ok := r.Questions[question]
	if !ok {
		return 0, false
	}
	switch answer {
	case "yes":
		return m.Yes, true
	case "no":
		return m.No, true
	}
	return 0, false
}
