package repository

import (
	"context"
	"errors"
	"strconv"

	"quoteportal/internal/domain/entities"
	"quoteportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type productItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
	ImageURL    string `dynamodbav:"image_url,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists the catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, tableName string) *ProductDynamoRepository {
	return &ProductDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toProductItem(p)); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	var it productItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	items, err := scanAll[productItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Product, 0, len(items))
	for _, it := range items {
		out = append(out, fromProductItem(it))
	}
	return out, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	var it productItem
	ok, err := update(ctx, r.ddb, r.tableName, p.ID, "",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #name = :name, #description = :description, #price = :price, #image_url = :image_url, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":name":        &types.AttributeValueMemberS{Value: p.Name},
				":description": &types.AttributeValueMemberS{Value: p.Description},
				":price":       &types.AttributeValueMemberS{Value: floatToString(p.Price)},
				":image_url":   &types.AttributeValueMemberS{Value: p.ImageURL},
				":updated_at":  &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#name":        "name",
				"#description": "description",
				"#price":       "price",
				"#image_url":   "image_url",
				"#updated_at":  "updated_at",
			}
			return expr, vals, names
		}, &it)
	if err != nil || !ok {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

// Delete reports false when no product had the id.
func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       floatToString(p.Price),
		ImageURL:    p.ImageURL,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		ImageURL:    it.ImageURL,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
