package repository

import (
	"context"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMortgageAppsTableName = "mortgage_applications"
	mortgageAppsBuyerIDIndex     = "buyer_id-index"
)

type mortgageApplicationItem struct {
	ID            string    `dynamodbav:"id"`
	BuyerID       string    `dynamodbav:"buyer_id"`
	TransactionID string    `dynamodbav:"transaction_id,omitempty"`
	Lender        string    `dynamodbav:"lender"`
	LoanAmount    moneyItem `dynamodbav:"loan_amount"`
	PropertyValue moneyItem `dynamodbav:"property_value"`
	TermYears     int       `dynamodbav:"term_years"`
	LTV           string    `dynamodbav:"ltv"`
	Status        string    `dynamodbav:"status"`
	CreatedAt     string    `dynamodbav:"created_at"`
	UpdatedAt     string    `dynamodbav:"updated_at"`
}

// MortgageApplicationDynamoRepository persists MortgageApplication entities
// in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: buyer_id-index (PK: buyer_id)

type MortgageApplicationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMortgageApplicationRepository = (*MortgageApplicationDynamoRepository)(nil)

func NewMortgageApplicationDynamoRepository(ddb *dynamodb.Client) *MortgageApplicationDynamoRepository {
	return &MortgageApplicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MORTGAGE_APPLICATIONS_TABLE", defaultMortgageAppsTableName),
	}
}

func (r *MortgageApplicationDynamoRepository) Create(ctx context.Context, app entities.MortgageApplication) (entities.MortgageApplication, error) {
	it := toMortgageApplicationItem(app)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.MortgageApplication{}, err
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
		return entities.MortgageApplication{}, err
	}
	return app, nil
}

func (r *MortgageApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.MortgageApplication, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MortgageApplication{}, err
	}
	if len(out.Item) == 0 {
		return entities.MortgageApplication{}, nil
	}

	var it mortgageApplicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MortgageApplication{}, err
	}
	return fromMortgageApplicationItem(it), nil
}

func (r *MortgageApplicationDynamoRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.MortgageApplication, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(mortgageAppsBuyerIDIndex),
		KeyConditionExpression: aws.String("buyer_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: buyerID},
		},
	})
	if err != nil {
		return nil, err
	}

	apps := make([]entities.MortgageApplication, 0, len(out.Items))
	for _, raw := range out.Items {
		var it mortgageApplicationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		apps = append(apps, fromMortgageApplicationItem(it))
	}
	return apps, nil
}

func toMortgageApplicationItem(app entities.MortgageApplication) mortgageApplicationItem {
	return mortgageApplicationItem{
		ID:            app.ID,
		BuyerID:       app.BuyerID,
		TransactionID: app.TransactionID,
		Lender:        app.Lender,
		LoanAmount:    toMoneyItem(app.LoanAmount),
		PropertyValue: toMoneyItem(app.PropertyValue),
		TermYears:     app.TermYears,
		LTV:           app.LTV,
		Status:        string(app.Status),
		CreatedAt:     formatTime(app.CreatedAt),
		UpdatedAt:     formatTime(app.UpdatedAt),
	}
}

func fromMortgageApplicationItem(it mortgageApplicationItem) entities.MortgageApplication {
	return entities.MortgageApplication{
		ID:            it.ID,
		BuyerID:       it.BuyerID,
		TransactionID: it.TransactionID,
		Lender:        it.Lender,
		LoanAmount:    fromMoneyItem(it.LoanAmount),
		PropertyValue: fromMoneyItem(it.PropertyValue),
		TermYears:     it.TermYears,
		LTV:           it.LTV,
		Status:        entities.MortgageApplicationStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
