package request

import (
	"strings"

	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/usecase"

	"github.com/shopspring/decimal"
)

// ValuationRequest is the questionnaire payload posted by the storefront.
// Answers map question identifiers to a string or a list of strings.
type ValuationRequest struct {
	ProductID               string             `json:"product_id" binding:"required"`
	VariantID               string             `json:"variant_id"`
	Category                string             `json:"category"`
	Brand                   string             `json:"brand"`
	Model                   string             `json:"model"`
	PostalCode              string             `json:"postal_code"`
	State                   string             `json:"state"`
	Answers                 entities.AnswerMap `json:"answers"`
	BasePrice               decimal.Decimal    `json:"base_price"`
	PowerOffOverridePercent *decimal.Decimal   `json:"power_off_override_percent"`
}

func (r ValuationRequest) ToInput() usecase.ValuationInput {
	in := usecase.ValuationInput{
		ProductID:  strings.TrimSpace(r.ProductID),
		VariantID:  strings.TrimSpace(r.VariantID),
		Category:   strings.TrimSpace(r.Category),
		Brand:      strings.TrimSpace(r.Brand),
		Model:      strings.TrimSpace(r.Model),
		PostalCode: strings.TrimSpace(r.PostalCode),
		State:      strings.TrimSpace(r.State),
		Answers:    r.Answers,
		BasePrice:  r.BasePrice,
	}
	if r.PowerOffOverridePercent != nil {
		in.PowerOffOverridePercent = decimal.NewNullDecimal(*r.PowerOffOverridePercent)
	}
	return in
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RemarksRequest struct {
	Remarks string `json:"remarks"`
}
