package repository

import (
	"context"
	"fmt"

	"checkout_service/internal/domain/entities"
	"checkout_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultSettingsTableName = "payment_settings"
	paymentSettingsID        = "payment"
)

type paymentSettingsItem struct {
	ID                   string `dynamodbav:"id"`
	IsEnabled            bool   `dynamodbav:"is_enabled"`
	SandboxMode          bool   `dynamodbav:"sandbox_mode"`
	AllowPix             bool   `dynamodbav:"allow_pix"`
	AllowCreditCard      bool   `dynamodbav:"allow_credit_card"`
	ManualCardProcessing bool   `dynamodbav:"manual_card_processing"`
	ManualCardStatus     string `dynamodbav:"manual_card_status,omitempty"`
	ManualPixPage        bool   `dynamodbav:"manual_pix_page"`
	SandboxAPIKey        string `dynamodbav:"sandbox_api_key,omitempty"`
	ProductionAPIKey     string `dynamodbav:"production_api_key,omitempty"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository stores the payment settings as a single item.
//
// Table requirements:
//   - PK: id (string); the document lives under id "payment"
type SettingsDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoAPI, tableName string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.PaymentSettings, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(paymentSettingsID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentSettings{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentSettings{}, false, nil
	}

	var it paymentSettingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentSettings{}, false, err
	}
	s, err := fromPaymentSettingsItem(it)
	if err != nil {
		return entities.PaymentSettings{}, false, err
	}
	return s, true, nil
}

// Save replaces the whole document in one PutItem.
func (r *SettingsDynamoRepository) Save(ctx context.Context, s entities.PaymentSettings) error {
	av, err := attributevalue.MarshalMap(toPaymentSettingsItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toPaymentSettingsItem(s entities.PaymentSettings) paymentSettingsItem {
	return paymentSettingsItem{
		ID:                   paymentSettingsID,
		IsEnabled:            s.IsEnabled,
		SandboxMode:          s.SandboxMode,
		AllowPix:             s.AllowPix,
		AllowCreditCard:      s.AllowCreditCard,
		ManualCardProcessing: s.ManualCardProcessing,
		ManualCardStatus:     s.ManualCardStatus,
		ManualPixPage:        s.ManualPixPage,
		SandboxAPIKey:        s.SandboxAPIKey,
		ProductionAPIKey:     s.ProductionAPIKey,
		UpdatedAt:            formatTime(s.UpdatedAt),
	}
}

func fromPaymentSettingsItem(it paymentSettingsItem) (entities.PaymentSettings, error) {
	updatedAt, err := parseTime("updated_at", it.UpdatedAt)
	if err != nil {
		return entities.PaymentSettings{}, fmt.Errorf("payment settings: %w", err)
	}
	return entities.PaymentSettings{
		IsEnabled:            it.IsEnabled,
		SandboxMode:          it.SandboxMode,
		AllowPix:             it.AllowPix,
		AllowCreditCard:      it.AllowCreditCard,
		ManualCardProcessing: it.ManualCardProcessing,
		ManualCardStatus:     it.ManualCardStatus,
		ManualPixPage:        it.ManualPixPage,
		SandboxAPIKey:        it.SandboxAPIKey,
		ProductionAPIKey:     it.ProductionAPIKey,
		UpdatedAt:            updatedAt,
	}, nil
}
