package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type quoteOptions struct {
	rulesFile       string
	answersFile     string
	answers         []string
	multiAnswers    []string
	basePrice       string
	brand           string
	overridePercent string
	format          string
}

func newQuoteCmd(a *app) *cobra.Command {
	o := &quoteOptions{}
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a questionnaire offline",
		Long: `Evaluate answers against a rule file without touching DynamoDB.

Rule and answer files are YAML (JSON also parses). Without --rules every
modifier is zero, so only the power-on handling changes the value.

Examples:
  tradeinctl quote --base-price 10000 --brand samsung --answer powerOn=no
  tradeinctl quote --rules rules.yaml --answers answers.yaml --base-price 40000
  tradeinctl quote --base-price 10000 --multi functionalIssues=speaker,wifi --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd, a, o)
		},
	}

	cmd.Flags().StringVar(&o.rulesFile, "rules", "", "pricing rules file")
	cmd.Flags().StringVar(&o.answersFile, "answers", "", "answers file mapping question to option or option list")
	cmd.Flags().StringArrayVar(&o.answers, "answer", nil, "single answer as question=option (repeatable)")
	cmd.Flags().StringArrayVar(&o.multiAnswers, "multi", nil, "multi-select answer as question=opt1,opt2 (repeatable)")
	cmd.Flags().StringVar(&o.basePrice, "base-price", "", "catalog base price")
	cmd.Flags().StringVar(&o.brand, "brand", "", "device brand")
	cmd.Flags().StringVar(&o.overridePercent, "override-percent", "", "power-off deduction percent for this item")
	cmd.Flags().StringVarP(&o.format, "format", "f", "text", "output format (text, json)")
	_ = cmd.MarkFlagRequired("base-price")
	return cmd
}

func runQuote(cmd *cobra.Command, a *app, o *quoteOptions) error {
	basePrice, err := decimal.NewFromString(o.basePrice)
	if err != nil || basePrice.IsNegative() {
		return fmt.Errorf("invalid --base-price %q", o.basePrice)
	}

	var override decimal.NullDecimal
	if o.overridePercent != "" {
		pct, err := decimal.NewFromString(o.overridePercent)
		if err != nil {
			return fmt.Errorf("invalid --override-percent %q", o.overridePercent)
		}
		override = decimal.NewNullDecimal(pct)
	}

	rules := entities.ZeroPricingRules()
	if o.rulesFile != "" {
		if rules, err = loadRulesFile(o.rulesFile); err != nil {
			return err
		}
	}

	answers := entities.AnswerMap{}
	if o.answersFile != "" {
		if answers, err = loadAnswersFile(o.answersFile); err != nil {
			return err
		}
	}
	for _, kv := range o.answers {
		q, v, ok := strings.Cut(kv, "=")
		if !ok || q == "" {
			return fmt.Errorf("invalid --answer %q, want question=option", kv)
		}
		answers[q] = entities.Single(v)
	}
	for _, kv := range o.multiAnswers {
		q, v, ok := strings.Cut(kv, "=")
		if !ok || q == "" {
			return fmt.Errorf("invalid --multi %q, want question=opt1,opt2", kv)
		}
		var opts []string
		if v != "" {
			opts = strings.Split(v, ",")
		}
		answers[q] = entities.Multi(opts...)
	}

	engine := pricing.NewEngine(a.cfg.Pricing.PowerOffBrands, a.cfg.Pricing.PowerOffDeductionPercent)
	res := engine.Evaluate(basePrice, answers, rules, o.brand, override)

	out := cmd.OutOrStdout()
	switch o.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "text":
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "QUESTION\tOPTION\tSOURCE\tAMOUNT")
		for _, l := range res.Lines {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Question, l.Option, l.Source, l.Amount.StringFixed(2))
		}
		fmt.Fprintf(tw, "\t\tbase price\t%s\n", res.BasePrice.StringFixed(2))
		fmt.Fprintf(tw, "\t\tmodifier\t%s\n", res.Modifier.StringFixed(2))
		fmt.Fprintf(tw, "\t\tfinal value\t%s\n", res.FinalValue.StringFixed(2))
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
}

func loadRulesFile(path string) (entities.PricingRules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entities.PricingRules{}, err
	}
	var rules entities.PricingRules
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return entities.PricingRules{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	return rules, nil
}

func loadAnswersFile(path string) (entities.AnswerMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse answers %s: %w", path, err)
	}

	answers := make(entities.AnswerMap, len(doc))
	for q, v := range doc {
		switch val := v.(type) {
		case string:
			answers[q] = entities.Single(val)
		case []any:
			opts := make([]string, 0, len(val))
			for _, item := range val {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("answer %s: %w", q, entities.ErrInvalidAnswer)
				}
				opts = append(opts, s)
			}
			answers[q] = entities.Multi(opts...)
		default:
			return nil, fmt.Errorf("answer %s: %w", q, entities.ErrInvalidAnswer)
		}
	}
	return answers, nil
}
