package database

import (
	"context"
	"strings"

	appconfig "checkout_service/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoDBClient builds the DynamoDB client. A configured endpoint (e.g.
// http://dynamodb:8000 for DynamoDB Local) replaces the AWS one.
func NewDynamoDBClient(ctx context.Context, c appconfig.DynamoConfig) (*dynamodb.Client, error) {
	cfg, err := NewAWSConfig(ctx, c)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimSpace(c.Endpoint)
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, c appconfig.DynamoConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(c.Region),
		config.WithCredentialsProvider(creds),
	)
}
