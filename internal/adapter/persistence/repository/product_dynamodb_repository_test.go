package repository

import (
	"context"
	"testing"

	"checkout_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDynamoRepository(t *testing.T) {
	var stored []map[string]types.AttributeValue
	fake := &fakeDynamo{
		put: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			stored = append(stored, in.Item)
			return &dynamodb.PutItemOutput{}, nil
		},
		scan: func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			return &dynamodb.ScanOutput{Items: stored}, nil
		},
		get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}
	repo := NewProductDynamoRepository(fake, "")

	_, err := repo.Create(context.Background(), entities.Product{
		ID:                   "prod-1",
		Name:                 "Ebook",
		Price:                decimal.RequireFromString("29.90"),
		OverrideGlobalStatus: true,
		CustomManualStatus:   "ANALYSIS",
	})
	require.NoError(t, err)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ebook", list[0].Name)
	assert.True(t, list[0].Price.Equal(decimal.RequireFromString("29.9")))
	assert.True(t, list[0].OverrideGlobalStatus)
	assert.Equal(t, "ANALYSIS", list[0].CustomManualStatus)

	missing, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}
