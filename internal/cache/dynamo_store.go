package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBClient defines the interface for DynamoDB operations we need
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// dynamoItem is the table layout: partition key "cacheKey", binary "value".
type dynamoItem struct {
	Key         string `dynamodbav:"cacheKey"`
	Value       []byte `dynamodbav:"value"`
	LastUpdated int64  `dynamodbav:"lastUpdated"`
}

// DynamoStore keeps cache entries as items in a DynamoDB table
type DynamoStore struct {
	client    DynamoDBClient
	tableName string
}

func NewDynamoStore(client DynamoDBClient, tableName string) (*DynamoStore, error) {
	if tableName == "" {
		return nil, fmt.Errorf("empty table name")
	}
	return &DynamoStore{
		client:    client,
		tableName: tableName,
	}, nil
}

func (s *DynamoStore) keyAttr(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"cacheKey": &types.AttributeValueMemberS{Value: key},
	}
}

func (s *DynamoStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.keyAttr(key),
	})
	if err != nil {
		return nil, fmt.Errorf("getting item from DynamoDB: %w", err)
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}

	var item dynamoItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("unmarshaling cache item: %w", err)
	}
	return item.Value, nil
}

func (s *DynamoStore) Put(ctx context.Context, key string, value []byte) error {
	item, err := attributevalue.MarshalMap(dynamoItem{
		Key:         key,
		Value:       value,
		LastUpdated: time.Now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("marshaling cache item: %w", err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("putting item in DynamoDB: %w", err)
	}
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, key string) error {
	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.keyAttr(key),
	}); err != nil {
		return fmt.Errorf("deleting item from DynamoDB: %w", err)
	}
	return nil
}
