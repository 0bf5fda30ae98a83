package repository

import (
	"context"

	"quoteportal/internal/domain/entities"
	"quoteportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsQuoteIDIndex = "quote_id-index"

type billingPaymentItem struct {
	ID             string                 `dynamodbav:"id"`
	QuoteID        string                 `dynamodbav:"quote_id"`
	Date           string                 `dynamodbav:"date"`
	Status         string                 `dynamodbav:"status"`
	ProviderStatus string                 `dynamodbav:"provider_status,omitempty"`
	MPPayload      map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw   string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BillingPaymentDynamoRepository persists BillingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
type BillingPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(ddb DynamoAPI, tableName string) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toBillingPaymentItem(p)); err != nil {
		return entities.BillingPayment{}, err
	}
	return p, nil
}

func (r *BillingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	var it billingPaymentItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.BillingPayment{}, err
	}
	return fromBillingPaymentItem(it), nil
}

func (r *BillingPaymentDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.BillingPayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})

	items := make([]entities.BillingPayment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it billingPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromBillingPaymentItem(it))
		}
	}
	return items, nil
}

func (r *BillingPaymentDynamoRepository) List(ctx context.Context) ([]entities.BillingPayment, error) {
	items, err := scanAll[billingPaymentItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.BillingPayment, 0, len(items))
	for _, it := range items {
		out = append(out, fromBillingPaymentItem(it))
	}
	return out, nil
}

func toBillingPaymentItem(p entities.BillingPayment) billingPaymentItem {
	return billingPaymentItem{
		ID:             p.ID,
		QuoteID:        p.QuoteID,
		Date:           formatTime(p.Date),
		Status:         string(p.Status),
		ProviderStatus: p.ProviderStatus,
		MPPayload:      p.MPPayload,
		MPPayloadRaw:   string(p.MPPayloadRaw),
	}
}

func fromBillingPaymentItem(it billingPaymentItem) entities.BillingPayment {
	var raw []byte
	if it.MPPayloadRaw != "" {
		raw = []byte(it.MPPayloadRaw)
	}
	return entities.BillingPayment{
		ID:             it.ID,
		QuoteID:        it.QuoteID,
		Date:           parseTime(it.Date),
		Status:         entities.PaymentStatus(it.Status),
		ProviderStatus: it.ProviderStatus,
		MPPayload:      it.MPPayload,
		MPPayloadRaw:   raw,
	}
}
