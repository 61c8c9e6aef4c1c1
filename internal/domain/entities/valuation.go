package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValuationStatus represents the lifecycle of a trade-in valuation.
//
// Domain notes:
//   - A valuation is created once as pending and is never deleted.
//   - Staff and the pickup workflow move it forward; completed, cancelled and
//     reject are terminal.

type ValuationStatus string

const (
	ValuationStatusPending      ValuationStatus = "pending"
	ValuationStatusConfirmed    ValuationStatus = "confirmed"
	ValuationStatusHold         ValuationStatus = "hold"
	ValuationStatusVerification ValuationStatus = "verification"
	ValuationStatusReject       ValuationStatus = "reject"
	ValuationStatusSuspect      ValuationStatus = "suspect"
	ValuationStatusCompleted    ValuationStatus = "completed"
	ValuationStatusCancelled    ValuationStatus = "cancelled"

	// Pickup workflow.
	ValuationStatusPickedUp       ValuationStatus = "picked_up"
	ValuationStatusQCReview       ValuationStatus = "qc_review"
	ValuationStatusServiceStation ValuationStatus = "service_station"
	ValuationStatusShowroom       ValuationStatus = "showroom"
	ValuationStatusWarehouse      ValuationStatus = "warehouse"
)

var validValuationStatuses = map[ValuationStatus]struct{}{
	ValuationStatusPending:        {},
	ValuationStatusConfirmed:      {},
	ValuationStatusHold:           {},
	ValuationStatusVerification:   {},
	ValuationStatusReject:         {},
	ValuationStatusSuspect:        {},
	ValuationStatusCompleted:      {},
	ValuationStatusCancelled:      {},
	ValuationStatusPickedUp:       {},
	ValuationStatusQCReview:       {},
	ValuationStatusServiceStation: {},
	ValuationStatusShowroom:       {},
	ValuationStatusWarehouse:      {},
}

// IsValid reports whether s belongs to the fixed status enumeration.
func (s ValuationStatus) IsValid() bool {
	_, ok := validValuationStatuses[s]
	return ok
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s ValuationStatus) IsTerminal() bool {
	switch s {
	case ValuationStatusCompleted, ValuationStatusCancelled, ValuationStatusReject:
		return true
	}
	return false
}

// Valuation is the persisted result of one questionnaire submission.
//
// Storage model (DynamoDB):
//   - PK: id (the generated order identifier, e.g. TN01WTSMSG0042)
//
// Monetary representation:
//   - BasePrice and FinalValue are whole rupees held as decimals.
type Valuation struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	VariantID  string          `json:"variant_id,omitempty"`
	Category   string          `json:"category"`
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	PostalCode string          `json:"postal_code"`
	State      string          `json:"state,omitempty"`
	Answers    AnswerMap       `json:"answers"`
	BasePrice  decimal.Decimal `json:"base_price"`
	FinalValue decimal.Decimal `json:"final_value"`
	Status     ValuationStatus `json:"status"`
	Remarks    string          `json:"remarks,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
