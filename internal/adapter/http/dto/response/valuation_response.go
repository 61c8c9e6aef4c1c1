package response

import (
	"time"

	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/domain/pricing"
	"tradein_valuation/internal/usecase"
)

type ValuationResponse struct {
	ID         string             `json:"id"`
	OrderID    string             `json:"order_id"`
	ProductID  string             `json:"product_id"`
	VariantID  string             `json:"variant_id,omitempty"`
	Category   string             `json:"category"`
	Brand      string             `json:"brand"`
	Model      string             `json:"model"`
	PostalCode string             `json:"postal_code"`
	State      string             `json:"state,omitempty"`
	Answers    entities.AnswerMap `json:"answers"`
	BasePrice  string             `json:"base_price"`
	FinalValue string             `json:"final_value"`
	Status     string             `json:"status"`
	Remarks    string             `json:"remarks,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromValuation(v entities.Valuation) ValuationResponse {
	return ValuationResponse{
		ID:         v.ID,
		OrderID:    v.ID,
		ProductID:  v.ProductID,
		VariantID:  v.VariantID,
		Category:   v.Category,
		Brand:      v.Brand,
		Model:      v.Model,
		PostalCode: v.PostalCode,
		State:      v.State,
		Answers:    v.Answers,
		BasePrice:  v.BasePrice.StringFixed(2),
		FinalValue: v.FinalValue.StringFixed(2),
		Status:     string(v.Status),
		Remarks:    v.Remarks,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

type BreakdownLine struct {
	Question string `json:"question"`
	Option   string `json:"option"`
	Source   string `json:"source"`
	Amount   string `json:"amount"`
}

// QuoteResponse is a priced preview; no order identifier is allocated.
type QuoteResponse struct {
	BasePrice  string          `json:"base_price"`
	Modifier   string          `json:"modifier"`
	FinalValue string          `json:"final_value"`
	RuleTier   string          `json:"rule_tier"`
	Breakdown  []BreakdownLine `json:"breakdown"`
}

func FromQuote(q usecase.Quote) QuoteResponse {
	return QuoteResponse{
		BasePrice:  q.Result.BasePrice.StringFixed(2),
		Modifier:   q.Result.Modifier.StringFixed(2),
		FinalValue: q.Result.FinalValue.StringFixed(2),
		RuleTier:   string(q.Tier),
		Breakdown:  fromLines(q.Result.Lines),
	}
}

func fromLines(lines []pricing.Line) []BreakdownLine {
	out := make([]BreakdownLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, BreakdownLine{
			Question: l.Question,
			Option:   l.Option,
			Source:   l.Source,
			Amount:   l.Amount.StringFixed(2),
		})
	}
	return out
}
