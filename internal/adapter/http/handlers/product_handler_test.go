package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"quoteportal/internal/adapter/http/handlers/mocks"
	"quoteportal/internal/domain/entities"
	"quoteportal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProductRouter(t *testing.T) (*gin.Engine, *mocks.MockIProductUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProductUseCase(ctrl)
	h := NewProductHandler(uc)

	r := gin.New()
	r.GET("/api/getproducts", h.GetProducts)
	r.GET("/api/getproductsdropdown", h.GetProductsDropdown)
	r.POST("/api/addnewProduct", h.AddProduct)
	r.PUT("/api/updateproduct/:id", h.UpdateProduct)
	r.DELETE("/api/deleteproduct/:id", h.DeleteProduct)
	return r, uc
}

func TestProductHandler_GetProducts(t *testing.T) {
	r, uc := newProductRouter(t)
	uc.EXPECT().List(gomock.Any()).Return([]entities.Product{{ID: "p-1", Name: "Beam", Price: 10}}, nil)

	w := doJSON(r, http.MethodGet, "/api/getproducts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Success  bool `json:"success"`
		Products []struct {
			ID    string  `json:"_id"`
			Price float64 `json:"price"`
		} `json:"products"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if !body.Success || len(body.Products) != 1 || body.Products[0].ID != "p-1" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestProductHandler_Dropdown(t *testing.T) {
	r, uc := newProductRouter(t)
	uc.EXPECT().Dropdown(gomock.Any()).Return([]usecase.ProductOption{{ID: "p-1", Name: "Beam"}}, nil)

	w := doJSON(r, http.MethodGet, "/api/getproductsdropdown", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestProductHandler_AddProduct(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		r, uc := newProductRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.ProductInput{Name: "Beam", Price: 12.5, ImageURL: "http://img"}).
			Return(entities.Product{ID: "p-1", Name: "Beam", Price: 12.5}, nil)

		w := doJSON(r, http.MethodPost, "/api/addnewProduct", `{"name":"Beam","price":12.5,"imageUrl":"http://img"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("multipart form", func(t *testing.T) {
		r, uc := newProductRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.ProductInput{Name: "Bolt", Description: "M8", Price: 0.5}).
			Return(entities.Product{ID: "p-2", Name: "Bolt", Price: 0.5}, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("name", "Bolt")
		_ = mw.WriteField("description", "M8")
		_ = mw.WriteField("price", "0.5")
		_ = mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/addnewProduct", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing price", func(t *testing.T) {
		r, _ := newProductRouter(t)
		w := doJSON(r, http.MethodPost, "/api/addnewProduct", `{"name":"Beam"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	t.Run("update missing", func(t *testing.T) {
		r, uc := newProductRouter(t)
		uc.EXPECT().Update(gomock.Any(), "p-9", gomock.Any()).Return(entities.Product{}, usecase.ErrProductNotFound)

		w := doJSON(r, http.MethodPut, "/api/updateproduct/p-9", `{"name":"Beam","price":1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newProductRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/api/deleteproduct/p-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
