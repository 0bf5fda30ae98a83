package interfaces

import (
	"context"
	"quoteportal/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for quote/order records.
//
// Lookups return an empty entity (ID == "") when nothing matches.
// UpdateStatus is a compare-and-set: it only writes when the field still holds
// `from`, and returns an empty entity otherwise.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, field entities.StatusField, from, to string) (entities.Quote, error)
}
