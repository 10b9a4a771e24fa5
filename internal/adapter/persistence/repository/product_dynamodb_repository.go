package repository

import (
	"context"
	"fmt"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID                   string `dynamodbav:"id"`
	Name                 string `dynamodbav:"name"`
	Description          string `dynamodbav:"description,omitempty"`
	Price                string `dynamodbav:"price"`
	IsDigital            bool   `dynamodbav:"is_digital"`
	OverrideGlobalStatus bool   `dynamodbav:"override_global_status"`
	CustomManualStatus   string `dynamodbav:"custom_manual_status,omitempty"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ProductDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb DynamoAPI, tableName string) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it)
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	products := []entities.Product{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []productItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			p, err := fromProductItem(it)
			if err != nil {
				return nil, err
			}
			products = append(products, p)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return products, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		Price:                p.Price.String(),
		IsDigital:            p.IsDigital,
		OverrideGlobalStatus: p.OverrideGlobalStatus,
		CustomManualStatus:   p.CustomManualStatus,
		CreatedAt:            formatTime(p.CreatedAt),
		UpdatedAt:            formatTime(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) (entities.Product, error) {
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.Product{}, fmt.Errorf("product %s: %w", it.ID, err)
	}
	updatedAt, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Product{}, fmt.Errorf("product %s: %w", it.ID, err)
	}

	price, _ := decimal.NewFromString(it.Price)
	return entities.Product{
		ID:                   it.ID,
		Name:                 it.Name,
		Description:          it.Description,
		Price:                price,
		IsDigital:            it.IsDigital,
		OverrideGlobalStatus: it.OverrideGlobalStatus,
		CustomManualStatus:   it.CustomManualStatus,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}, nil
}
