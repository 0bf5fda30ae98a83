package request

// StatusRequest is the body of the quote and tracking status endpoints.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}
