package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"quoteportal/internal/adapter/http/handlers/mocks"
	"quoteportal/internal/domain/entities"
	"quoteportal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/api/requestquote", h.RequestQuote)
	r.GET("/api/requestquote-getitems", h.GetQuotes)
	r.GET("/api/requestquote-getitems/:id", h.GetQuote)
	r.PUT("/api/update-quote-status/:id", h.UpdateQuoteStatus)
	r.PUT("/api/update-tracking-status/:id", h.UpdateTrackingStatus)
	r.PUT("/api/update-payment-status/:id", h.UpdatePaymentStatus)
	r.GET("/api/quotations", h.GetQuotations)
	return r, uc
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_RequestQuote(t *testing.T) {
	t.Run("accepts string quantity", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().RequestQuote(gomock.Any(), usecase.RequestQuoteCommand{
			Name: "Ana", Email: "ana@example.com", Phone: "9876543210", ProductID: "p-1", Quantity: 3,
		}).Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}, nil)

		w := doJSON(r, http.MethodPost, "/api/requestquote",
			`{"name":"Ana","email":"ana@example.com","phonenumber":"9876543210","product":"p-1","quantity":"3"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("validation message is surfaced", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().RequestQuote(gomock.Any(), gomock.Any()).
			Return(entities.Quote{}, fmt.Errorf("%w: enter valid 10-digit number", usecase.ErrInvalidQuoteInput))

		w := doJSON(r, http.MethodPost, "/api/requestquote", `{"name":"Ana","phonenumber":"12"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "enter valid 10-digit number" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := doJSON(r, http.MethodPost, "/api/requestquote", `{"quantity":"lots"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Reads(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}}, nil)

		w := doJSON(r, http.MethodGet, "/api/requestquote-getitems", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Quotes  []struct {
				ID string `json:"_id"`
			} `json:"quotes"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Success || len(body.Quotes) != 2 || body.Quotes[0].ID != "q-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get missing", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "q-9").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := doJSON(r, http.MethodGet, "/api/requestquote-getitems/q-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("quotations", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ListQuotations(gomock.Any()).Return([]entities.Quotation{
			{Quote: entities.Quote{ID: "q-1"}, LatestPayment: &entities.BillingPayment{ID: "mp-1", Status: entities.PaymentStatusPaid}},
		}, nil)

		w := doJSON(r, http.MethodGet, "/api/quotations", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Quotations []struct {
				ID            string `json:"_id"`
				LatestPayment struct {
					ID string `json:"id"`
				} `json:"latestPayment"`
			} `json:"quotations"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Quotations) != 1 || body.Quotations[0].LatestPayment.ID != "mp-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_StatusRoutes(t *testing.T) {
	t.Run("quote status", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().UpdateQuoteStatus(gomock.Any(), "q-1", "Approved").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved}, nil)

		w := doJSON(r, http.MethodPut, "/api/update-quote-status/q-1", `{"status":"Approved"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote"]["status"] != "Approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("tracking status", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().UpdateTrackingStatus(gomock.Any(), "q-1", "Testing").
			Return(entities.Quote{ID: "q-1", TrackingStatus: entities.TrackingStatusTesting}, nil)

		w := doJSON(r, http.MethodPut, "/api/update-tracking-status/q-1", `{"status":"Testing"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("payment status uses its own key", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().UpdatePaymentStatus(gomock.Any(), "q-1", "Paid").
			Return(entities.Quote{ID: "q-1", PaymentStatus: entities.PaymentStatusPaid}, nil)

		w := doJSON(r, http.MethodPut, "/api/update-payment-status/q-1", `{"paymentStatus":"Paid"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing status", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := doJSON(r, http.MethodPut, "/api/update-payment-status/q-1", `{"status":"Paid"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid transition is a conflict", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().UpdateQuoteStatus(gomock.Any(), "q-1", "Rejected").
			Return(entities.Quote{}, fmt.Errorf("%w: Approved -> Rejected", usecase.ErrInvalidTransition))

		w := doJSON(r, http.MethodPut, "/api/update-quote-status/q-1", `{"status":"Rejected"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidQuoteID, http.StatusBadRequest},
		{usecase.ErrInvalidQuoteInput, http.StatusBadRequest},
		{fmt.Errorf("%w: quote status %q", entities.ErrUnknownStatus, "Maybe"), http.StatusBadRequest},
		{usecase.ErrQuoteNotFound, http.StatusNotFound},
		{usecase.ErrProductNotFound, http.StatusNotFound},
		{usecase.ErrInvalidTransition, http.StatusConflict},
		{usecase.ErrStatusConflict, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapQuoteError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
