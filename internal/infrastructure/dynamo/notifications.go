package dynamo

import (
	"context"
	"fmt"

	"github.com/Evanshango/chatty-backend/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MaxTransactItems is the DynamoDB limit on actions in one transaction.
const MaxTransactItems = 100

// NotificationRepo provides typed DynamoDB operations for the notifications table.
type NotificationRepo struct {
	client    API
	tableName string
}

func NewNotificationRepo(client API, tableName string) *NotificationRepo {
	return &NotificationRepo{client: client, tableName: tableName}
}

// ListRecent queries the recipient-created_at GSI newest first, returning at most limit items.
func (r *NotificationRepo) ListRecent(ctx context.Context, recipient string, limit int32) ([]domain.Notification, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(indexNotificationsRecipient),
		KeyConditionExpression:   aws.String("#r = :r"),
		ExpressionAttributeNames: map[string]string{"#r": attrRecipient},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":r": &types.AttributeValueMemberS{Value: recipient},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}
	notifications := []domain.Notification{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &notifications); err != nil {
		return nil, fmt.Errorf("unmarshal notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead sets read=true on every id in a single transaction. Each update is
// conditioned on the item existing, so either all ids are marked or none are.
func (r *NotificationRepo) MarkRead(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if len(ids) > MaxTransactItems {
		return fmt.Errorf("at most %d notifications per request: %w", MaxTransactItems, domain.ErrBadRequest)
	}
	items := make([]types.TransactWriteItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.tableName),
				Key:                 strKey(attrNotificationID, id),
				UpdateExpression:    aws.String("SET #read = :t"),
				ConditionExpression: aws.String("attribute_exists(#pk)"),
				ExpressionAttributeNames: map[string]string{
					"#read": attrRead,
					"#pk":   attrNotificationID,
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":t": &types.AttributeValueMemberBOOL{Value: true},
				},
			},
		})
	}
	_, err := r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}
