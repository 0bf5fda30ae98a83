package handlers

import (
	"net/http"
	request "quoteportal/internal/adapter/http/dto/request"
	response "quoteportal/internal/adapter/http/dto/response"
	"quoteportal/internal/usecase"
	"quoteportal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Name and a positive price are required", http.StatusBadRequest)
)

// ProductHandler serves the catalog routes.
type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// GetProducts godoc
// @Summary  List catalog products
// @Tags     products
// @Produce  json
// @Success  200  {object}  response.ProductListEnvelope
// @Router   /getproducts [get]
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.ProductListEnvelope{Success: true, Products: response.FromProducts(products)})
}

// GetProductsDropdown godoc
// @Summary  Product id/name pairs for the quote form
// @Tags     products
// @Produce  json
// @Success  200  {object}  response.ProductOptionListEnvelope
// @Router   /getproductsdropdown [get]
func (h *ProductHandler) GetProductsDropdown(c *gin.Context) {
	opts, err := h.usecase.Dropdown(c.Request.Context())
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.ProductOptionListEnvelope{Success: true, Products: opts})
}

// AddProduct godoc
// @Summary  Add a catalog product
// @Tags     products
// @Accept   json,mpfd
// @Produce  json
// @Param    body  body      request.ProductRequest  true  "product"
// @Success  201   {object}  response.ProductEnvelope
// @Failure  400   {object}  pkg.HTTPError
// @Router   /addnewProduct [post]
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBind(&payload); err != nil {
		writeError(c, errInvalidProductPayload)
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	zap.L().Named("product").Info("product added", zap.String("product_id", p.ID))
	c.JSON(http.StatusCreated, response.ProductEnvelope{Success: true, Product: response.FromProduct(p)})
}

// UpdateProduct godoc
// @Summary  Update a catalog product
// @Tags     products
// @Accept   json,mpfd
// @Produce  json
// @Param    id    path      string                  true  "product id"
// @Param    body  body      request.ProductRequest  true  "product"
// @Success  200   {object}  response.ProductEnvelope
// @Failure  404   {object}  pkg.HTTPError
// @Router   /updateproduct/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBind(&payload); err != nil {
		writeError(c, errInvalidProductPayload)
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapProductError(err))
		return
	}
	c.JSON(http.StatusOK, response.ProductEnvelope{Success: true, Product: response.FromProduct(p)})
}

// DeleteProduct godoc
// @Summary  Delete a catalog product
// @Tags     products
// @Produce  json
// @Param    id   path      string  true  "product id"
// @Success  200  {object}  response.MessageEnvelope
// @Failure  404  {object}  pkg.HTTPError
// @Router   /deleteproduct/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapProductError(err))
		return
	}
	zap.L().Named("product").Info("product deleted", zap.String("product_id", id))
	c.JSON(http.StatusOK, response.MessageEnvelope{Success: true, Message: "Product deleted"})
}
