package repository

import (
	"context"
	"errors"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName   = "payments"
	paymentsTransactionIDIndex = "transaction_id-index"
)

type paymentItem struct {
	EventID       string    `dynamodbav:"event_id"`
	TransactionID string    `dynamodbav:"transaction_id,omitempty"`
	BuyerID       string    `dynamodbav:"buyer_id,omitempty"`
	UnitID        string    `dynamodbav:"unit_id,omitempty"`
	PaymentType   string    `dynamodbav:"payment_type"`
	Amount        moneyItem `dynamodbav:"amount"`
	Status        string    `dynamodbav:"status"`
	FailureReason string    `dynamodbav:"failure_reason,omitempty"`
	ReceivedAt    string    `dynamodbav:"received_at"`
}

// PaymentDynamoRepository persists provider payment events in DynamoDB.
//
// Table requirements:
//   - PK: event_id (string, provider-assigned)
//   - GSI: transaction_id-index (PK: transaction_id)
//
// The provider event id as PK is the whole idempotency mechanism: Create's
// conditional put records an event exactly once, and a replayed delivery
// reads back the original record instead of writing.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, bool, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#event_id)"),
		ExpressionAttributeNames: map[string]string{
			"#event_id": "event_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			stored, getErr := r.GetByEventID(ctx, p.EventID)
			if getErr != nil {
				return entities.Payment{}, false, getErr
			}
			return stored, false, nil
		}
		return entities.Payment{}, false, err
	}
	return p, true, nil
}

func (r *PaymentDynamoRepository) GetByEventID(ctx context.Context, eventID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"event_id": &types.AttributeValueMemberS{Value: eventID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByTransactionID(ctx context.Context, transactionID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsTransactionIDIndex),
		KeyConditionExpression: aws.String("transaction_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: transactionID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		EventID:       p.EventID,
		TransactionID: p.TransactionID,
		BuyerID:       p.BuyerID,
		UnitID:        p.UnitID,
		PaymentType:   string(p.PaymentType),
		Amount:        toMoneyItem(p.Amount),
		Status:        string(p.Status),
		FailureReason: p.FailureReason,
		ReceivedAt:    formatTime(p.ReceivedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		EventID:       it.EventID,
		TransactionID: it.TransactionID,
		BuyerID:       it.BuyerID,
		UnitID:        it.UnitID,
		PaymentType:   entities.PaymentType(it.PaymentType),
		Amount:        fromMoneyItem(it.Amount),
		Status:        entities.PaymentStatus(it.Status),
		FailureReason: it.FailureReason,
		ReceivedAt:    parseTime(it.ReceivedAt),
	}
}
