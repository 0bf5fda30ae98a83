package repository

import (
	"context"
	"testing"

	"quoteportal/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func TestProductDynamoRepository_PriceIsStoredAsString(t *testing.T) {
	ddb := &fakeDynamo{}
	_, err := NewProductDynamoRepository(ddb, "products").
		Create(context.Background(), entities.Product{ID: "p-1", Name: "Beam", Price: 12.5})
	require.NoError(t, err)
	require.Equal(t, &types.AttributeValueMemberS{Value: "12.5"}, ddb.puts[0].Item["price"])
}

func TestProductDynamoRepository_Update(t *testing.T) {
	t.Run("writes editable fields", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			av, err := attributevalue.MarshalMap(productItem{ID: "p-1", Name: "New", Price: "3"})
			require.NoError(t, err)
			return &dynamodb.UpdateItemOutput{Attributes: av}, nil
		}}
		got, err := NewProductDynamoRepository(ddb, "products").
			Update(context.Background(), entities.Product{ID: "p-1", Name: "New", Price: 3})
		require.NoError(t, err)
		require.Equal(t, "New", got.Name)
		require.Equal(t, 3.0, got.Price)
		require.Equal(t, "attribute_exists(#id)", aws.ToString(ddb.updates[0].ConditionExpression))
	})

	t.Run("missing product", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		got, err := NewProductDynamoRepository(ddb, "products").
			Update(context.Background(), entities.Product{ID: "p-9", Name: "X", Price: 1})
		require.NoError(t, err)
		require.Empty(t, got.ID)
	})
}

func TestProductDynamoRepository_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		ddb := &fakeDynamo{deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			require.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
			return &dynamodb.DeleteItemOutput{}, nil
		}}
		ok, err := NewProductDynamoRepository(ddb, "products").Delete(context.Background(), "p-1")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("nothing to delete", func(t *testing.T) {
		ddb := &fakeDynamo{deleteItem: func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		ok, err := NewProductDynamoRepository(ddb, "products").Delete(context.Background(), "p-1")
		require.NoError(t, err)
		require.False(t, ok)
	})
}
