package repository

import (
	"context"

	"quoteportal/internal/domain/entities"
	"quoteportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quoteItem struct {
	ID             string  `dynamodbav:"id"`
	Name           string  `dynamodbav:"name"`
	Email          string  `dynamodbav:"email"`
	Phone          string  `dynamodbav:"phonenumber"`
	ProductID      string  `dynamodbav:"productId"`
	ProductName    string  `dynamodbav:"product"`
	Quantity       int     `dynamodbav:"quantity"`
	Delivery       string  `dynamodbav:"delivery,omitempty"`
	Message        string  `dynamodbav:"message,omitempty"`
	Amount         float64 `dynamodbav:"amount"`
	Status         string  `dynamodbav:"status"`
	TrackingStatus string  `dynamodbav:"trackingStatus"`
	PaymentStatus  string  `dynamodbav:"paymentStatus"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists quote/order records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status attributes are named after entities.StatusField so a field can be
// addressed directly in an update expression.
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toQuoteItem(q)); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var it quoteItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	items, err := scanAll[quoteItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	return out, nil
}

// UpdateStatus writes `to` only while the field still holds `from`.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, field entities.StatusField, from, to string) (entities.Quote, error) {
	var it quoteItem
	ok, err := update(ctx, r.ddb, r.tableName, id, "#field = :from",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #field = :to, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":from":       &types.AttributeValueMemberS{Value: from},
				":to":         &types.AttributeValueMemberS{Value: to},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#field":      string(field),
				"#updated_at": "updated_at",
			}
			return expr, vals, names
		}, &it)
	if err != nil || !ok {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:             q.ID,
		Name:           q.Name,
		Email:          q.Email,
		Phone:          q.Phone,
		ProductID:      q.ProductID,
		ProductName:    q.ProductName,
		Quantity:       q.Quantity,
		Delivery:       q.Delivery,
		Message:        q.Message,
		Amount:         q.Amount,
		Status:         string(q.Status),
		TrackingStatus: string(q.TrackingStatus),
		PaymentStatus:  string(q.PaymentStatus),
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:             it.ID,
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		ProductID:      it.ProductID,
		ProductName:    it.ProductName,
		Quantity:       it.Quantity,
		Delivery:       it.Delivery,
		Message:        it.Message,
		Amount:         it.Amount,
		Status:         entities.QuoteStatus(it.Status),
		TrackingStatus: entities.TrackingStatus(it.TrackingStatus),
		PaymentStatus:  entities.PaymentStatus(it.PaymentStatus),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
