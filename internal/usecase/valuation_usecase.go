package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/domain/pricing"
	"tradein_valuation/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrValuationNotFound      = errors.New("valuation not found")
	ErrValuationTerminal      = errors.New("valuation is in a terminal status")
	ErrStatusConflict         = errors.New("valuation status changed concurrently")
	ErrOrderIDCollision       = errors.New("order identifier already in use")
	ErrInvalidValuationID     = errors.New("invalid valuation id")
	ErrInvalidProductID       = errors.New("invalid product_id")
	ErrInvalidBasePrice       = errors.New("invalid base price")
	ErrInvalidOverridePercent = errors.New("invalid power-off override percent")
	ErrInvalidStatus          = errors.New("invalid valuation status")
)

var maxPercent = decimal.NewFromInt(100)

// ValuationInput is one questionnaire submission.
type ValuationInput struct {
	ProductID  string
	VariantID  string
	Category   string
	Brand      string
	Model      string
	PostalCode string
	State      string
	Answers    entities.AnswerMap
	BasePrice  decimal.Decimal

	// PowerOffOverridePercent replaces the brand/rule handling of a device
	// that does not power on.
	PowerOffOverridePercent decimal.NullDecimal
}

// Quote is a priced submission that was not stored.
type Quote struct {
	Result pricing.Result
	Tier   RuleTier
}

// IValuationUseCase exposes trade-in valuation operations:
//   - Quote prices answers without allocating an identifier.
//   - Submit prices, allocates the order identifier and stores the valuation.
//   - UpdateStatus / UpdateRemarks are the staff and pickup transitions.

type IValuationUseCase interface {
	Quote(ctx context.Context, in ValuationInput) (Quote, error)
	Submit(ctx context.Context, in ValuationInput) (entities.Valuation, error)
	GetByID(ctx context.Context, id string) (entities.Valuation, error)
	UpdateStatus(ctx context.Context, id string, status entities.ValuationStatus) (entities.Valuation, error)
	UpdateRemarks(ctx context.Context, id string, remarks string) (entities.Valuation, error)
}

type ValuationUseCase struct {
	repo     interfaces.IValuationRepository
	rules    *RuleSetResolver
	engine   *pricing.Engine
	ids      *OrderIDGenerator
	notifier interfaces.INotifier
	logger   *zap.Logger

	// dispatch runs fire-and-forget work.
	dispatch func(func())
}

var _ IValuationUseCase = (*ValuationUseCase)(nil)

func NewValuationUseCase(
	repo interfaces.IValuationRepository,
	rules *RuleSetResolver,
	engine *pricing.Engine,
	ids *OrderIDGenerator,
	notifier interfaces.INotifier,
	logger *zap.Logger,
) *ValuationUseCase {
	if engine == nil {
		engine = pricing.DefaultEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ValuationUseCase{
		repo:     repo,
		rules:    rules,
		engine:   engine,
		ids:      ids,
		notifier: notifier,
		logger:   logger,
		dispatch: func(f func()) { go f() },
	}
}

func (u *ValuationUseCase) Quote(ctx context.Context, in ValuationInput) (Quote, error) {
	in, err := normalizeInput(in)
	if err != nil {
		return Quote{}, err
	}

	rules, tier, err := u.rules.Resolve(ctx, in.ProductID, in.VariantID)
	if err != nil {
		return Quote{}, err
	}

	res := u.engine.Evaluate(in.BasePrice, in.Answers, rules, in.Brand, in.PowerOffOverridePercent)
	return Quote{Result: res, Tier: tier}, nil
}

func (u *ValuationUseCase) Submit(ctx context.Context, in ValuationInput) (entities.Valuation, error) {
	q, err := u.Quote(ctx, in)
	if err != nil {
		return entities.Valuation{}, err
	}
	in, _ = normalizeInput(in)

	id, err := u.ids.Generate(ctx, OrderIDRequest{
		PostalCode: in.PostalCode,
		Category:   in.Category,
		Brand:      in.Brand,
		State:      in.State,
	})
	if err != nil {
		u.logger.Error("order identifier generation failed", zap.String("product_id", in.ProductID), zap.Error(err))
		return entities.Valuation{}, err
	}

	now := time.Now().UTC()
	v := entities.Valuation{
		ID:         id,
		ProductID:  in.ProductID,
		VariantID:  in.VariantID,
		Category:   in.Category,
		Brand:      in.Brand,
		Model:      in.Model,
		PostalCode: in.PostalCode,
		State:      in.State,
		Answers:    in.Answers,
		BasePrice:  in.BasePrice,
		FinalValue: q.Result.FinalValue,
		Status:     entities.ValuationStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, v)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			u.logger.Error("order identifier collision", zap.String("order_id", id))
			return entities.Valuation{}, ErrOrderIDCollision
		}
		return entities.Valuation{}, err
	}

	u.logger.Info("valuation created",
		zap.String("order_id", created.ID),
		zap.String("rule_tier", string(q.Tier)),
		zap.String("base_price", created.BasePrice.String()),
		zap.String("final_value", created.FinalValue.String()))

	u.notifyCreated(ctx, created)
	return created, nil
}

func (u *ValuationUseCase) notifyCreated(ctx context.Context, v entities.Valuation) {
	if u.notifier == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	u.dispatch(func() {
		if err := u.notifier.ValuationCreated(ctx, v); err != nil {
			u.logger.Warn("valuation notification failed", zap.String("order_id", v.ID), zap.Error(err))
		}
	})
}

func (u *ValuationUseCase) GetByID(ctx context.Context, id string) (entities.Valuation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Valuation{}, ErrInvalidValuationID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Valuation{}, err
	}
	if v.ID == "" {
		return entities.Valuation{}, ErrValuationNotFound
	}
	return v, nil
}

func (u *ValuationUseCase) UpdateStatus(ctx context.Context, id string, status entities.ValuationStatus) (entities.Valuation, error) {
	status = entities.ValuationStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.IsValid() {
		return entities.Valuation{}, ErrInvalidStatus
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Valuation{}, err
	}
	if current.Status == status {
		return current, nil
	}
	if current.Status.IsTerminal() {
		return entities.Valuation{}, ErrValuationTerminal
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, status)
	if err != nil {
		return entities.Valuation{}, err
	}
	if updated.ID == "" {
		return u.resolveStatusRace(ctx, current, status)
	}
	u.logger.Info("valuation status changed",
		zap.String("order_id", updated.ID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(updated.Status)))
	return updated, nil
}

// resolveStatusRace explains a guarded status write that matched nothing:
// the record is gone, or another writer moved it after it was read.
func (u *ValuationUseCase) resolveStatusRace(ctx context.Context, read entities.Valuation, want entities.ValuationStatus) (entities.Valuation, error) {
	latest, err := u.GetByID(ctx, read.ID)
	if err != nil {
		return entities.Valuation{}, err
	}
	u.logger.Warn("valuation status moved during update",
		zap.String("order_id", latest.ID),
		zap.String("read", string(read.Status)),
		zap.String("stored", string(latest.Status)),
		zap.String("wanted", string(want)))
	switch {
	case latest.Status == want:
		return latest, nil
	case latest.Status.IsTerminal():
		return entities.Valuation{}, ErrValuationTerminal
	default:
		return entities.Valuation{}, ErrStatusConflict
	}
}

func (u *ValuationUseCase) UpdateRemarks(ctx context.Context, id string, remarks string) (entities.Valuation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Valuation{}, ErrInvalidValuationID
	}

	updated, err := u.repo.UpdateRemarks(ctx, id, strings.TrimSpace(remarks))
	if err != nil {
		return entities.Valuation{}, err
	}
	if updated.ID == "" {
		return entities.Valuation{}, ErrValuationNotFound
	}
	return updated, nil
}

func normalizeInput(in ValuationInput) (ValuationInput, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.VariantID = strings.TrimSpace(in.VariantID)
	in.Category = strings.TrimSpace(in.Category)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	in.State = strings.TrimSpace(in.State)

	if in.ProductID == "" {
		return in, ErrInvalidProductID
	}
	if in.BasePrice.IsNegative() {
		return in, ErrInvalidBasePrice
	}
	if o := in.PowerOffOverridePercent; o.Valid && (o.Decimal.IsNegative() || o.Decimal.GreaterThan(maxPercent)) {
		return in, ErrInvalidOverridePercent
	}
	if in.Answers == nil {
		in.Answers = entities.AnswerMap{}
	}
	return in, nil
}
