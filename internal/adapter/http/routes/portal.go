package routes

import (
	"quoteportal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	rg.GET("/getproducts", h.GetProducts)
	rg.GET("/getproductsdropdown", h.GetProductsDropdown)
	rg.POST("/addnewProduct", h.AddProduct)
	rg.PUT("/updateproduct/:id", h.UpdateProduct)
	rg.DELETE("/deleteproduct/:id", h.DeleteProduct)
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	rg.POST("/requestquote", h.RequestQuote)
	rg.GET("/requestquote-getitems", h.GetQuotes)
	rg.GET("/requestquote-getitems/:id", h.GetQuote)
	rg.GET("/quotations", h.GetQuotations)

	// One route per status field; each writes only its own field.
	rg.PUT("/update-quote-status/:id", h.UpdateQuoteStatus)
	rg.PUT("/update-tracking-status/:id", h.UpdateTrackingStatus)
	rg.PUT("/update-payment-status/:id", h.UpdatePaymentStatus)
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.BillingPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", h.PayQuote)
		payments.GET("/:quote_id", h.GetLatestPayment)
	}
}
