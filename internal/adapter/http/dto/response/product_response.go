package response

import (
	"quoteportal/internal/domain/entities"
	"quoteportal/internal/usecase"
	"time"
)

type ProductResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProductEnvelope struct {
	Success bool            `json:"success"`
	Product ProductResponse `json:"product"`
}

type ProductListEnvelope struct {
	Success  bool              `json:"success"`
	Products []ProductResponse `json:"products"`
}

type ProductOptionListEnvelope struct {
	Success  bool                    `json:"success"`
	Products []usecase.ProductOption `json:"products"`
}

// MessageEnvelope is the body of operations that return no record.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProducts(ps []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}
