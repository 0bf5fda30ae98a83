package usecase

import (
	"context"
	"errors"
	"quoteportal/internal/domain/entities"
	"quoteportal/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductInput = errors.New("invalid product input")
)

// ProductInput carries the editable product fields.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
}

// ProductOption is a dropdown entry on the quote request form.
type ProductOption struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type IProductUseCase interface {
	List(ctx context.Context) ([]entities.Product, error)
	Dropdown(ctx context.Context) ([]ProductOption, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Create(ctx context.Context, in ProductInput) (entities.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List returns the catalog sorted by name.
func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	products, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
	})
	return products, nil
}

func (u *ProductUseCase) Dropdown(ctx context.Context) ([]ProductOption, error) {
	products, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProductOption, 0, len(products))
	for _, p := range products {
		out = append(out, ProductOption{ID: p.ID, Name: p.Name})
	}
	return out, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (entities.Product, error) {
	in, err := validateProductInput(in)
	if err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (u *ProductUseCase) Update(ctx context.Context, id string, in ProductInput) (entities.Product, error) {
	in, err := validateProductInput(in)
	if err != nil {
		return entities.Product{}, err
	}

	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Price = in.Price
	if in.ImageURL != "" {
		existing.ImageURL = in.ImageURL
	}
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}

func validateProductInput(in ProductInput) (ProductInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if in.Name == "" || in.Price <= 0 {
		return ProductInput{}, ErrInvalidProductInput
	}
	return in, nil
}
