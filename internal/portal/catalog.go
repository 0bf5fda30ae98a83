package portal

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"quoteportal/internal/domain/entities"
)

// ProductInput is the body of the add and update product forms.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	if in.Price <= 0 {
		return fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}
	return nil
}

// ProductOption is an entry of the quote form dropdown.
type ProductOption struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func (c *Client) ListProducts(ctx context.Context) ([]entities.Product, error) {
	var out struct {
		Products []entities.Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "getproducts", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) ProductOptions(ctx context.Context) ([]ProductOption, error) {
	var out struct {
		Products []ProductOption `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "getproductsdropdown", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

func (c *Client) AddProduct(ctx context.Context, s Session, in ProductInput) (entities.Product, error) {
	if err := s.requireAdmin(); err != nil {
		return entities.Product{}, err
	}
	if err := in.validate(); err != nil {
		return entities.Product{}, err
	}
	var out struct {
		Product entities.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodPost, "addnewProduct", in, &out); err != nil {
		return entities.Product{}, err
	}
	return out.Product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, s Session, id string, in ProductInput) (entities.Product, error) {
	if err := s.requireAdmin(); err != nil {
		return entities.Product{}, err
	}
	if err := requireID(id); err != nil {
		return entities.Product{}, err
	}
	if err := in.validate(); err != nil {
		return entities.Product{}, err
	}
	var out struct {
		Product entities.Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodPut, "updateproduct/"+id, in, &out); err != nil {
		return entities.Product{}, err
	}
	return out.Product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, s Session, id string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if err := requireID(id); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "deleteproduct/"+id, nil, nil)
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return nil
}
