package request

import "quoteportal/internal/usecase"

// ProductRequest is accepted as JSON or as multipart/urlencoded form fields.
type ProductRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"imageUrl" form:"imageUrl"`
}

func (r ProductRequest) ToInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
	}
}
