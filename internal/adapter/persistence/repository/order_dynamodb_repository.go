package repository

import (
	"context"
	"fmt"
	"time"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultOrdersTableName = "orders"
	ordersPaymentIDIndex   = "payment_id-index"
)

type orderItem struct {
	ID                string `dynamodbav:"id"`
	PaymentID         string `dynamodbav:"payment_id"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	PaymentMethod     string `dynamodbav:"payment_method"`
	PaymentStatus     string `dynamodbav:"payment_status"`
	DeviceType        string `dynamodbav:"device_type"`

	CustomerName     string `dynamodbav:"customer_name"`
	CustomerEmail    string `dynamodbav:"customer_email"`
	CustomerDocument string `dynamodbav:"customer_document,omitempty"`
	CustomerPhone    string `dynamodbav:"customer_phone,omitempty"`

	ProductID        string `dynamodbav:"product_id"`
	ProductName      string `dynamodbav:"product_name"`
	ProductPrice     string `dynamodbav:"product_price"`
	ProductIsDigital bool   `dynamodbav:"product_is_digital"`

	CardBrand    string `dynamodbav:"card_brand,omitempty"`
	CardLast4    string `dynamodbav:"card_last4,omitempty"`
	Installments int    `dynamodbav:"installments,omitempty"`

	PixExpirationDate string `dynamodbav:"pix_expiration_date,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id)
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, fmt.Errorf("put order %s: %w", o.ID, err)
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Item)
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	orders := []entities.Order{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			o, err := unmarshalOrder(raw)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return orders, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *OrderDynamoRepository) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.Order, error) {
	orders := []entities.Order{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(ordersPaymentIDIndex),
			KeyConditionExpression: aws.String("payment_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: paymentID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			o, err := unmarshalOrder(raw)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
		if len(out.LastEvaluatedKey) == 0 {
			return orders, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// UpdateStatus returns a zero-value Order when the id does not exist.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #payment_status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	return unmarshalOrder(out.Attributes)
}

// Delete reports false when nothing was stored under id.
func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func unmarshalOrder(raw map[string]types.AttributeValue) (entities.Order, error) {
	var it orderItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                o.ID,
		PaymentID:         o.PaymentID,
		ProviderPaymentID: o.ProviderPaymentID,
		PaymentMethod:     string(o.PaymentMethod),
		PaymentStatus:     string(o.PaymentStatus),
		DeviceType:        string(o.DeviceType),
		CustomerName:      o.Customer.Name,
		CustomerEmail:     o.Customer.Email,
		CustomerDocument:  o.Customer.Document,
		CustomerPhone:     o.Customer.Phone,
		ProductID:         o.Product.ID,
		ProductName:       o.Product.Name,
		ProductPrice:      o.Product.Price.String(),
		ProductIsDigital:  o.Product.IsDigital,
		CardBrand:         string(o.CardBrand),
		CardLast4:         o.CardLast4,
		Installments:      o.Installments,
		CreatedAt:         formatTime(o.CreatedAt),
		UpdatedAt:         formatTime(o.UpdatedAt),
	}
	if o.PixExpirationDate != nil {
		it.PixExpirationDate = formatTime(*o.PixExpirationDate)
	}
	return it
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.Order{}, fmt.Errorf("order %s: %w", it.ID, err)
	}
	updatedAt, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.Order{}, fmt.Errorf("order %s: %w", it.ID, err)
	}

	price, _ := decimal.NewFromString(it.ProductPrice)
	// Rows written before the canonical vocabulary may hold legacy names.
	status, _ := entities.NormalizeStatus(it.PaymentStatus)
	o := entities.Order{
		ID: it.ID,
		Customer: entities.CustomerSnapshot{
			Name:     it.CustomerName,
			Email:    it.CustomerEmail,
			Document: it.CustomerDocument,
			Phone:    it.CustomerPhone,
		},
		Product: entities.ProductSnapshot{
			ID:        it.ProductID,
			Name:      it.ProductName,
			Price:     price,
			IsDigital: it.ProductIsDigital,
		},
		PaymentMethod:     entities.PaymentMethod(it.PaymentMethod),
		PaymentStatus:     status,
		PaymentID:         it.PaymentID,
		ProviderPaymentID: it.ProviderPaymentID,
		DeviceType:        entities.DeviceType(it.DeviceType),
		CardBrand:         entities.CardBrand(it.CardBrand),
		CardLast4:         it.CardLast4,
		Installments:      it.Installments,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	if it.PixExpirationDate != "" {
		exp, err := parseTime("pix_expiration_date", it.PixExpirationDate)
		if err != nil {
			return entities.Order{}, fmt.Errorf("order %s: %w", it.ID, err)
		}
		o.PixExpirationDate = &exp
	}
	return o, nil
}
