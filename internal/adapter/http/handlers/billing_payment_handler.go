package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	response "quoteportal/internal/adapter/http/dto/response"
	"quoteportal/internal/usecase"
	"quoteportal/pkg"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingPaymentHandler handles the "pay for my quote" routes.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
}

// NewBillingPaymentHandler builds the handler. In mock mode an unreadable body
// is replaced by an empty payload instead of being rejected.
func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode}
}

// PayQuote godoc
// @Summary  Pay for a quote through Mercado Pago
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    quote_id  path      string                               true  "quote id"
// @Param    body      body      request.BillingPaymentCreateRequest  true  "gateway payload, wrapped or not"
// @Success  200       {object}  response.BillingPaymentEnvelope
// @Failure  400       {object}  pkg.HTTPError
// @Failure  502       {object}  pkg.HTTPError
// @Router   /payments/{quote_id} [post]
func (h *BillingPaymentHandler) PayQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")
	log := zap.L().Named("payment").With(zap.String("quote_id", quoteID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("invalid payload", zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
		log.Info("invalid payload in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Pay(c.Request.Context(), quoteID, mpPayload)
	if err != nil {
		writeError(c, mapBillingPaymentError(err))
		return
	}

	c.JSON(http.StatusOK, response.BillingPaymentEnvelope{Success: true, Payment: response.FromBillingPayment(created)})
}

// GetLatestPayment godoc
// @Summary  Latest payment attempt of a quote
// @Tags     payments
// @Produce  json
// @Param    quote_id  path      string  true  "quote id"
// @Success  200       {object}  response.BillingPaymentEnvelope
// @Failure  404       {object}  pkg.HTTPError
// @Router   /payments/{quote_id} [get]
func (h *BillingPaymentHandler) GetLatestPayment(c *gin.Context) {
	quoteID := c.Param("quote_id")

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		writeError(c, mapBillingPaymentError(err))
		return
	}

	if len(payments) == 0 {
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.BillingPaymentEnvelope{Success: true, Payment: response.FromBillingPayment(latest)})
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
