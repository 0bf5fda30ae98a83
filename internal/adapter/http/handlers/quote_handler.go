package handlers

import (
	"context"
	"net/http"
	request "quoteportal/internal/adapter/http/dto/request"
	response "quoteportal/internal/adapter/http/dto/response"
	"quoteportal/internal/domain/entities"
	"quoteportal/internal/usecase"
	"quoteportal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload  = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS", "Status is required", http.StatusBadRequest)
)

// QuoteHandler serves the quote request and status routes.
//
// Each status route writes exactly one of the three status fields.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// RequestQuote godoc
// @Summary  Submit a quote request
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body  body      request.QuoteRequest  true  "quote request"
// @Success  201   {object}  response.QuoteEnvelope
// @Failure  400   {object}  pkg.HTTPError
// @Router   /requestquote [post]
func (h *QuoteHandler) RequestQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}

	q, err := h.usecase.RequestQuote(c.Request.Context(), payload.ToCommand())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.QuoteEnvelope{Success: true, Quote: response.FromQuote(q)})
}

// GetQuotes godoc
// @Summary  List quote requests, newest first
// @Tags     quotes
// @Produce  json
// @Success  200  {object}  response.QuoteListEnvelope
// @Router   /requestquote-getitems [get]
func (h *QuoteHandler) GetQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.QuoteListEnvelope{Success: true, Quotes: response.FromQuotes(quotes)})
}

// GetQuote godoc
// @Summary  Get one quote
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "quote id"
// @Success  200  {object}  response.QuoteEnvelope
// @Failure  404  {object}  pkg.HTTPError
// @Router   /requestquote-getitems/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.QuoteEnvelope{Success: true, Quote: response.FromQuote(q)})
}

// UpdateQuoteStatus godoc
// @Summary  Approve, reject, revoke or reconsider a quote
// @Tags     status
// @Accept   json
// @Produce  json
// @Param    id    path      string                 true  "quote id"
// @Param    body  body      request.StatusRequest  true  "target status"
// @Success  200   {object}  response.QuoteEnvelope
// @Failure  409   {object}  pkg.HTTPError
// @Router   /update-quote-status/{id} [put]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidStatusPayload)
		return
	}
	h.writeStatus(c, payload.Status, h.usecase.UpdateQuoteStatus)
}

// UpdateTrackingStatus godoc
// @Summary  Move an order along the tracking pipeline
// @Tags     status
// @Accept   json
// @Produce  json
// @Param    id    path      string                 true  "quote id"
// @Param    body  body      request.StatusRequest  true  "target stage"
// @Success  200   {object}  response.QuoteEnvelope
// @Failure  409   {object}  pkg.HTTPError
// @Router   /update-tracking-status/{id} [put]
func (h *QuoteHandler) UpdateTrackingStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidStatusPayload)
		return
	}
	h.writeStatus(c, payload.Status, h.usecase.UpdateTrackingStatus)
}

// UpdatePaymentStatus godoc
// @Summary  Set the payment status of an order
// @Tags     status
// @Accept   json
// @Produce  json
// @Param    id    path      string                        true  "quote id"
// @Param    body  body      request.PaymentStatusRequest  true  "payment status"
// @Success  200   {object}  response.QuoteEnvelope
// @Failure  409   {object}  pkg.HTTPError
// @Router   /update-payment-status/{id} [put]
func (h *QuoteHandler) UpdatePaymentStatus(c *gin.Context) {
	var payload request.PaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidStatusPayload)
		return
	}
	h.writeStatus(c, payload.PaymentStatus, h.usecase.UpdatePaymentStatus)
}

func (h *QuoteHandler) writeStatus(
	c *gin.Context,
	status string,
	updater func(ctx context.Context, id string, status string) (entities.Quote, error),
) {
	q, err := updater(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.QuoteEnvelope{Success: true, Quote: response.FromQuote(q)})
}

// GetQuotations godoc
// @Summary  Quotes joined with their latest payment
// @Tags     quotes
// @Produce  json
// @Success  200  {object}  response.QuotationListEnvelope
// @Router   /quotations [get]
func (h *QuoteHandler) GetQuotations(c *gin.Context) {
	rows, err := h.usecase.ListQuotations(c.Request.Context())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.QuotationListEnvelope{Success: true, Quotations: response.FromQuotations(rows)})
}
