package repository

import (
	"context"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultNotificationsTableName = "notifications"

type notificationItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	Title      string `dynamodbav:"title"`
	Body       string `dynamodbav:"body"`
	ActionLink string `dynamodbav:"action_link,omitempty"`
	Read       bool   `dynamodbav:"read"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists in-platform notifications in
// DynamoDB. Table requirements:
//   - PK: id (string)

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(notificationItem{
		ID:         n.ID,
		UserID:     n.UserID,
		Title:      n.Title,
		Body:       n.Body,
		ActionLink: n.ActionLink,
		Read:       n.Read,
		CreatedAt:  formatTime(n.CreatedAt),
	})
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}
