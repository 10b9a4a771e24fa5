package repository

import (
	"context"
	"testing"
	"time"

	"checkout_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() entities.Order {
	created := time.Date(2026, 4, 2, 15, 4, 5, 0, time.UTC)
	exp := created.Add(30 * time.Minute)
	return entities.Order{
		ID:                "ord-1",
		Customer:          entities.CustomerSnapshot{Name: "Ana", Email: "ana@example.com", Phone: "11999990000"},
		Product:           entities.ProductSnapshot{ID: "prod-1", Name: "Course", Price: decimal.RequireFromString("199.90"), IsDigital: true},
		PaymentMethod:     entities.PaymentMethodPix,
		PaymentStatus:     entities.PaymentStatusPending,
		PaymentID:         "pay-1",
		ProviderPaymentID: "555",
		DeviceType:        entities.DeviceTypeMobile,
		PixExpirationDate: &exp,
		CreatedAt:         created,
		UpdatedAt:         created,
	}
}

func TestOrderDynamoRepository_CreateAndGet(t *testing.T) {
	var stored map[string]types.AttributeValue
	fake := &fakeDynamo{
		put: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		get: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	}
	repo := NewOrderDynamoRepository(fake, "")

	o := sampleOrder()
	_, err := repo.Create(context.Background(), o)
	require.NoError(t, err)

	require.Len(t, fake.putInputs, 1)
	assert.Equal(t, "orders", aws.ToString(fake.putInputs[0].TableName))
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(fake.putInputs[0].ConditionExpression))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "199.9"}, stored["product_price"])

	got, err := repo.GetByID(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, o.Customer, got.Customer)
	assert.True(t, o.Product.Price.Equal(got.Product.Price))
	assert.Equal(t, o.PaymentStatus, got.PaymentStatus)
	require.NotNil(t, got.PixExpirationDate)
	assert.True(t, o.PixExpirationDate.Equal(*got.PixExpirationDate))
	assert.True(t, o.CreatedAt.Equal(got.CreatedAt))
}

func TestOrderDynamoRepository_GetByID_NotFound(t *testing.T) {
	fake := &fakeDynamo{
		get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}
	repo := NewOrderDynamoRepository(fake, "orders-test")

	got, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestOrderDynamoRepository_LegacyStatusIsNormalized(t *testing.T) {
	item, err := attributevalue.MarshalMap(orderItem{ID: "ord-legacy", PaymentStatus: "APPROVED"})
	require.NoError(t, err)
	fake := &fakeDynamo{
		get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
	}

	got, err := NewOrderDynamoRepository(fake, "").GetByID(context.Background(), "ord-legacy")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusConfirmed, got.PaymentStatus)
}

func TestOrderDynamoRepository_CorruptCreatedAtIsAnError(t *testing.T) {
	item, err := attributevalue.MarshalMap(orderItem{ID: "ord-bad", PaymentStatus: "PENDING", CreatedAt: "yesterday"})
	require.NoError(t, err)
	fake := &fakeDynamo{
		get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
		query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil
		},
	}
	repo := NewOrderDynamoRepository(fake, "")

	_, err = repo.GetByID(context.Background(), "ord-bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ord-bad")
	assert.Contains(t, err.Error(), "created_at")

	_, err = repo.ListByPaymentID(context.Background(), "pay-1")
	require.Error(t, err)
}

func TestOrderDynamoRepository_EmptyTimestampsAreZero(t *testing.T) {
	item, err := attributevalue.MarshalMap(orderItem{ID: "ord-1", PaymentStatus: "PENDING"})
	require.NoError(t, err)
	fake := &fakeDynamo{
		get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: item}, nil
		},
	}

	got, err := NewOrderDynamoRepository(fake, "").GetByID(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.IsZero())
	assert.Nil(t, got.PixExpirationDate)
}

func TestOrderDynamoRepository_ListPaginates(t *testing.T) {
	page := func(id string) map[string]types.AttributeValue {
		item, _ := attributevalue.MarshalMap(orderItem{ID: id, PaymentStatus: "PENDING"})
		return item
	}
	fake := &fakeDynamo{}
	fake.scan = func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		if len(in.ExclusiveStartKey) == 0 {
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{page("a")}, LastEvaluatedKey: idKey("a")}, nil
		}
		return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{page("b")}}, nil
	}

	got, err := NewOrderDynamoRepository(fake, "").List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Len(t, fake.scanInputs, 2)
}

func TestOrderDynamoRepository_ListByPaymentID(t *testing.T) {
	fake := &fakeDynamo{
		query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			item, _ := attributevalue.MarshalMap(orderItem{ID: "ord-1", PaymentID: "pay-1", PaymentStatus: "CONFIRMED"})
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil
		},
	}

	got, err := NewOrderDynamoRepository(fake, "").ListByPaymentID(context.Background(), "pay-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "payment_id-index", aws.ToString(fake.queryInputs[0].IndexName))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "pay-1"}, fake.queryInputs[0].ExpressionAttributeValues[":pid"])
}

func TestOrderDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		fake := &fakeDynamo{
			update: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
			},
		}
		got, err := NewOrderDynamoRepository(fake, "").UpdateStatus(context.Background(), "missing", entities.PaymentStatusConfirmed)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("updated", func(t *testing.T) {
		fake := &fakeDynamo{
			update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				item, _ := attributevalue.MarshalMap(orderItem{ID: "ord-1", PaymentStatus: "REJECTED"})
				return &dynamodb.UpdateItemOutput{Attributes: item}, nil
			},
		}
		got, err := NewOrderDynamoRepository(fake, "").UpdateStatus(context.Background(), "ord-1", entities.PaymentStatusRejected)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusRejected, got.PaymentStatus)

		in := fake.updateInputs[0]
		assert.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberS{Value: "REJECTED"}, in.ExpressionAttributeValues[":status"])
		assert.Equal(t, "id", in.ExpressionAttributeNames["#id"])
	})
}

func TestOrderDynamoRepository_Delete(t *testing.T) {
	fake := &fakeDynamo{
		delete: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			if in.Key["id"].(*types.AttributeValueMemberS).Value == "ord-1" {
				return &dynamodb.DeleteItemOutput{Attributes: idKey("ord-1")}, nil
			}
			return &dynamodb.DeleteItemOutput{}, nil
		},
	}
	repo := NewOrderDynamoRepository(fake, "")

	deleted, err := repo.Delete(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
}
