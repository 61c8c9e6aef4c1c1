package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "tradein_valuation/internal/adapter/http/dto/request"
	response "tradein_valuation/internal/adapter/http/dto/response"
	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/usecase"
	"tradein_valuation/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidValuationPayload = pkg.NewDomainErrorSimple("INVALID_VALUATION_INPUT", "Invalid valuation payload", http.StatusBadRequest)
	errInvalidStatusPayload    = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
)

// ValuationHandler serves the trade-in questionnaire and the staff status
// endpoints.
type ValuationHandler struct {
	usecase usecase.IValuationUseCase
	logger  *zap.Logger
}

func NewValuationHandler(uc usecase.IValuationUseCase, logger *zap.Logger) *ValuationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ValuationHandler{usecase: uc, logger: logger}
}

// QuoteValuation prices answers without storing them.
//
// @Summary  Preview a trade-in value
// @Tags     valuations
// @Accept   json
// @Produce  json
// @Param    payload body request.ValuationRequest true "Questionnaire"
// @Success  200 {object} response.QuoteResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Router   /valuations/quote [post]
func (h *ValuationHandler) QuoteValuation(c *gin.Context) {
	var payload request.ValuationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidValuationPayload.HTTPStatus, errInvalidValuationPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Quote(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// SubmitValuation prices answers, allocates the order identifier and stores
// the valuation as pending.
//
// @Summary  Submit a trade-in valuation
// @Tags     valuations
// @Accept   json
// @Produce  json
// @Param    payload body request.ValuationRequest true "Questionnaire"
// @Success  201 {object} response.ValuationResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Router   /valuations [post]
func (h *ValuationHandler) SubmitValuation(c *gin.Context) {
	var payload request.ValuationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidValuationPayload.HTTPStatus, errInvalidValuationPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromValuation(v))
}

// @Summary  Get a valuation by order id
// @Tags     valuations
// @Produce  json
// @Param    id path string true "Order id"
// @Success  200 {object} response.ValuationResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /valuations/{id} [get]
func (h *ValuationHandler) GetValuation(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromValuation(v))
}

// @Summary  Move a valuation to another status
// @Tags     valuations
// @Accept   json
// @Produce  json
// @Param    id      path string                true "Order id"
// @Param    payload body request.StatusRequest true "Status"
// @Success  200 {object} response.ValuationResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /valuations/{id}/status [patch]
func (h *ValuationHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Status) == "" {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.ValuationStatus(payload.Status))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromValuation(v))
}

// @Summary  Replace staff remarks on a valuation
// @Tags     valuations
// @Accept   json
// @Produce  json
// @Param    id      path string                 true "Order id"
// @Param    payload body request.RemarksRequest true "Remarks"
// @Success  200 {object} response.ValuationResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /valuations/{id}/remarks [patch]
func (h *ValuationHandler) UpdateRemarks(c *gin.Context) {
	var payload request.RemarksRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidValuationPayload.HTTPStatus, errInvalidValuationPayload.ToHTTPError())
		return
	}

	v, err := h.usecase.UpdateRemarks(c.Request.Context(), c.Param("id"), payload.Remarks)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromValuation(v))
}

func (h *ValuationHandler) writeError(c *gin.Context, err error) {
	appErr := mapValuationError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error("valuation request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapValuationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidValuationID),
		errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidBasePrice),
		errors.Is(err, usecase.ErrInvalidOverridePercent),
		errors.Is(err, entities.ErrInvalidAnswer):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown valuation status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValuationNotFound):
		return pkg.NewDomainErrorSimple("VALUATION_NOT_FOUND", "Valuation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrValuationTerminal):
		return pkg.NewDomainErrorSimple("VALUATION_CLOSED", "Valuation is already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Valuation status changed, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderIDCollision):
		return pkg.NewDomainErrorSimple("ORDER_ID_COLLISION", "Order id already in use, retry the submission", http.StatusConflict)
	case errors.Is(err, usecase.ErrRulesUnavailable):
		return pkg.NewDomainError("PRICING_UNAVAILABLE", "Pricing rules are unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderIDUnavailable):
		return pkg.NewDomainError("ORDER_ID_UNAVAILABLE", "Could not allocate an order id", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
