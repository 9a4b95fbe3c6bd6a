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
	defaultTransactionsTableName = "transactions"
	transactionsBuyerIDIndex     = "buyer_id-index"
)

type transactionEventItem struct {
	ID       string            `dynamodbav:"id"`
	Type     string            `dynamodbav:"type"`
	Metadata map[string]string `dynamodbav:"metadata,omitempty"`
	At       string            `dynamodbav:"at"`
}

type transactionItem struct {
	ID               string                 `dynamodbav:"id"`
	ReferenceNumber  string                 `dynamodbav:"reference_number"`
	BuyerID          string                 `dynamodbav:"buyer_id"`
	UnitID           string                 `dynamodbav:"unit_id"`
	Status           string                 `dynamodbav:"status"`
	Stage            string                 `dynamodbav:"stage"`
	AgreedPrice      moneyItem              `dynamodbav:"agreed_price"`
	DepositPaid      moneyItem              `dynamodbav:"deposit_paid"`
	TotalPaid        moneyItem              `dynamodbav:"total_paid"`
	MortgageRequired bool                   `dynamodbav:"mortgage_required"`
	MortgageApproved bool                   `dynamodbav:"mortgage_approved"`
	Events           []transactionEventItem `dynamodbav:"events"`
	CreatedAt        string                 `dynamodbav:"created_at"`
	UpdatedAt        string                 `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists Transaction entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: buyer_id-index (PK: buyer_id)
//
// UpdateStatus writes the status, derived stage, optional financials and the
// audit event in a single conditional UpdateItem, so the event log can never
// drift from the status it describes.

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, tx entities.Transaction) (entities.Transaction, error) {
	it := toTransactionItem(tx)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transaction{}, err
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
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func (r *TransactionDynamoRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(transactionsBuyerIDIndex),
		KeyConditionExpression: aws.String("buyer_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: buyerID},
		},
	})
	if err != nil {
		return nil, err
	}

	txs := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		txs = append(txs, fromTransactionItem(it))
	}
	return txs, nil
}

// ListAll feeds the funnel report. A full scan is acceptable at current table
// sizes; revisit with a sparse GSI if transaction volume grows.
func (r *TransactionDynamoRepository) ListAll(ctx context.Context) ([]entities.Transaction, error) {
	var txs []entities.Transaction
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it transactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			txs = append(txs, fromTransactionItem(it))
		}
	}
	return txs, nil
}

func (r *TransactionDynamoRepository) UpdateStatus(ctx context.Context, id string, expected entities.TransactionStatus, update interfaces.TransactionStatusUpdate, event entities.TransactionEvent) (entities.Transaction, error) {
	entry, err := attributevalue.Marshal(transactionEventItem{
		ID:       event.ID,
		Type:     event.Type,
		Metadata: event.Metadata,
		At:       formatTime(event.At),
	})
	if err != nil {
		return entities.Transaction{}, err
	}

	expr := "SET #status = :next, #stage = :stage, #updated_at = :now, #events = list_append(if_not_exists(#events, :empty), :event)"
	vals := map[string]types.AttributeValue{
		":next":     &types.AttributeValueMemberS{Value: string(update.Status)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
		":stage":    &types.AttributeValueMemberS{Value: string(update.Stage)},
		":now":      &types.AttributeValueMemberS{Value: formatTime(event.At)},
		":empty":    &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":event":    &types.AttributeValueMemberL{Value: []types.AttributeValue{entry}},
	}
	names := map[string]string{
		"#status":     "status",
		"#stage":      "stage",
		"#updated_at": "updated_at",
		"#events":     "events",
	}
	if update.DepositPaid != nil {
		deposit, err := attributevalue.Marshal(toMoneyItem(*update.DepositPaid))
		if err != nil {
			return entities.Transaction{}, err
		}
		expr += ", deposit_paid = :deposit"
		vals[":deposit"] = deposit
	}
	if update.TotalPaid != nil {
		total, err := attributevalue.Marshal(toMoneyItem(*update.TotalPaid))
		if err != nil {
			return entities.Transaction{}, err
		}
		expr += ", total_paid = :total"
		vals[":total"] = total
	}
	if update.MortgageApproved != nil {
		expr += ", mortgage_approved = :mortgage"
		vals[":mortgage"] = &types.AttributeValueMemberBOOL{Value: *update.MortgageApproved}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return entities.Transaction{}, getErr
			}
			if existing.ID == "" {
				return entities.Transaction{}, nil
			}
			return entities.Transaction{}, interfaces.ErrConditionFailed
		}
		return entities.Transaction{}, err
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transaction{}, err
	}
	return fromTransactionItem(it), nil
}

func toTransactionItem(tx entities.Transaction) transactionItem {
	events := make([]transactionEventItem, 0, len(tx.Events))
	for _, e := range tx.Events {
		events = append(events, transactionEventItem{
			ID:       e.ID,
			Type:     e.Type,
			Metadata: e.Metadata,
			At:       formatTime(e.At),
		})
	}
	return transactionItem{
		ID:               tx.ID,
		ReferenceNumber:  tx.ReferenceNumber,
		BuyerID:          tx.BuyerID,
		UnitID:           tx.UnitID,
		Status:           string(tx.Status),
		Stage:            string(tx.Stage),
		AgreedPrice:      toMoneyItem(tx.AgreedPrice),
		DepositPaid:      toMoneyItem(tx.DepositPaid),
		TotalPaid:        toMoneyItem(tx.TotalPaid),
		MortgageRequired: tx.MortgageRequired,
		MortgageApproved: tx.MortgageApproved,
		Events:           events,
		CreatedAt:        formatTime(tx.CreatedAt),
		UpdatedAt:        formatTime(tx.UpdatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	events := make([]entities.TransactionEvent, 0, len(it.Events))
	for _, e := range it.Events {
		events = append(events, entities.TransactionEvent{
			ID:       e.ID,
			Type:     e.Type,
			Metadata: e.Metadata,
			At:       parseTime(e.At),
		})
	}
	return entities.Transaction{
		ID:               it.ID,
		ReferenceNumber:  it.ReferenceNumber,
		BuyerID:          it.BuyerID,
		UnitID:           it.UnitID,
		Status:           entities.TransactionStatus(it.Status),
		Stage:            entities.TransactionStage(it.Stage),
		AgreedPrice:      fromMoneyItem(it.AgreedPrice),
		DepositPaid:      fromMoneyItem(it.DepositPaid),
		TotalPaid:        fromMoneyItem(it.TotalPaid),
		MortgageRequired: it.MortgageRequired,
		MortgageApproved: it.MortgageApproved,
		Events:           events,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
