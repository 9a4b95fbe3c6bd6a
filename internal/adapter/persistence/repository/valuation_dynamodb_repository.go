package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultValuationsTableName = "valuations"
	valuationsIDIndex          = "id-index"
)

type valuationWorkItemItem struct {
	Description string    `dynamodbav:"description"`
	Quantity    string    `dynamodbav:"quantity,omitempty"`
	Amount      moneyItem `dynamodbav:"amount"`
}

type materialOnSiteItem struct {
	Description string    `dynamodbav:"description"`
	Value       moneyItem `dynamodbav:"value"`
}

type valuationVariationItem struct {
	Reference string    `dynamodbav:"reference"`
	Type      string    `dynamodbav:"type"`
	Amount    moneyItem `dynamodbav:"amount"`
	Approved  bool      `dynamodbav:"approved"`
}

type valuationItem struct {
	ID                   string                   `dynamodbav:"id"`
	ProjectID            string                   `dynamodbav:"project_id"`
	ValuationNumber      int                      `dynamodbav:"valuation_number"`
	PeriodFrom           string                   `dynamodbav:"period_from"`
	PeriodTo             string                   `dynamodbav:"period_to"`
	ContractorID         string                   `dynamodbav:"contractor_id"`
	ContractorNotes      string                   `dynamodbav:"contractor_notes"`
	WorkCompleted        []valuationWorkItemItem  `dynamodbav:"work_completed"`
	MaterialsOnSite      []materialOnSiteItem     `dynamodbav:"materials_on_site"`
	Variations           []valuationVariationItem `dynamodbav:"variations"`
	GrossValuation       moneyItem                `dynamodbav:"gross_valuation"`
	RetentionPercentage  string                   `dynamodbav:"retention_percentage"`
	RetentionAmount      moneyItem                `dynamodbav:"retention_amount"`
	PreviousCertificates moneyItem                `dynamodbav:"previous_certificates"`
	NetAmount            moneyItem                `dynamodbav:"net_amount"`
	Status               string                   `dynamodbav:"status"`
	QSReviewedAt         string                   `dynamodbav:"qs_reviewed_at,omitempty"`
	QSReviewedBy         string                   `dynamodbav:"qs_reviewed_by,omitempty"`
	QSComments           string                   `dynamodbav:"qs_comments,omitempty"`
	PaidAt               string                   `dynamodbav:"paid_at,omitempty"`
	CreatedAt            string                   `dynamodbav:"created_at"`
	UpdatedAt            string                   `dynamodbav:"updated_at"`
}

// ValuationDynamoRepository persists ContractorValuation entities in
// DynamoDB.
//
// Table requirements:
//   - PK: project_id (string), SK: valuation_number (number)
//   - GSI: id-index (PK: id)
//
// The composite key makes the valuation number unique per project by
// construction: Create's conditional put fails with ErrConditionFailed when
// the number is already taken, with no read-before-write.

type ValuationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IValuationRepository = (*ValuationDynamoRepository)(nil)

func NewValuationDynamoRepository(ddb *dynamodb.Client) *ValuationDynamoRepository {
	return &ValuationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VALUATIONS_TABLE", defaultValuationsTableName),
	}
}

func (r *ValuationDynamoRepository) Create(ctx context.Context, v entities.ContractorValuation) (entities.ContractorValuation, error) {
	it := toValuationItem(v)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ContractorValuation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#project_id)"),
		ExpressionAttributeNames: map[string]string{
			"#project_id": "project_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ContractorValuation{}, interfaces.ErrConditionFailed
		}
		return entities.ContractorValuation{}, err
	}
	return v, nil
}

func (r *ValuationDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractorValuation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(valuationsIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ContractorValuation{}, err
	}
	if len(out.Items) == 0 {
		return entities.ContractorValuation{}, nil
	}

	var it valuationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ContractorValuation{}, err
	}
	return fromValuationItem(it), nil
}

func (r *ValuationDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ContractorValuation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	valuations := make([]entities.ContractorValuation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it valuationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		valuations = append(valuations, fromValuationItem(it))
	}
	return valuations, nil
}

func (r *ValuationDynamoRepository) UpdateStatus(ctx context.Context, projectID string, valuationNumber int, expected entities.ValuationStatus, update interfaces.ValuationStatusUpdate) (entities.ContractorValuation, error) {
	now := time.Now().UTC()
	expr := "SET #status = :next, #updated_at = :now"
	vals := map[string]types.AttributeValue{
		":next":     &types.AttributeValueMemberS{Value: string(update.Status)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
		":now":      &types.AttributeValueMemberS{Value: formatTime(now)},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if update.QSReviewedAt != nil {
		expr += ", qs_reviewed_at = :reviewed_at, qs_reviewed_by = :reviewed_by, qs_comments = :comments"
		vals[":reviewed_at"] = &types.AttributeValueMemberS{Value: formatTime(*update.QSReviewedAt)}
		vals[":reviewed_by"] = &types.AttributeValueMemberS{Value: update.QSReviewedBy}
		vals[":comments"] = &types.AttributeValueMemberS{Value: update.QSComments}
	}
	if update.PaidAt != nil {
		expr += ", paid_at = :paid_at"
		vals[":paid_at"] = &types.AttributeValueMemberS{Value: formatTime(*update.PaidAt)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"project_id":       &types.AttributeValueMemberS{Value: projectID},
			"valuation_number": &types.AttributeValueMemberN{Value: strconv.Itoa(valuationNumber)},
		},
		ConditionExpression:       aws.String("attribute_exists(#project_id) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#project_id": "project_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ContractorValuation{}, interfaces.ErrConditionFailed
		}
		return entities.ContractorValuation{}, err
	}

	var it valuationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ContractorValuation{}, err
	}
	return fromValuationItem(it), nil
}

func toValuationItem(v entities.ContractorValuation) valuationItem {
	work := make([]valuationWorkItemItem, 0, len(v.WorkCompleted))
	for _, w := range v.WorkCompleted {
		work = append(work, valuationWorkItemItem{
			Description: w.Description,
			Quantity:    w.Quantity,
			Amount:      toMoneyItem(w.Amount),
		})
	}
	materials := make([]materialOnSiteItem, 0, len(v.MaterialsOnSite))
	for _, m := range v.MaterialsOnSite {
		materials = append(materials, materialOnSiteItem{
			Description: m.Description,
			Value:       toMoneyItem(m.Value),
		})
	}
	variations := make([]valuationVariationItem, 0, len(v.Variations))
	for _, va := range v.Variations {
		variations = append(variations, valuationVariationItem{
			Reference: va.Reference,
			Type:      string(va.Type),
			Amount:    toMoneyItem(va.Amount),
			Approved:  va.Approved,
		})
	}
	return valuationItem{
		ID:                   v.ID,
		ProjectID:            v.ProjectID,
		ValuationNumber:      v.ValuationNumber,
		PeriodFrom:           formatTime(v.PeriodFrom),
		PeriodTo:             formatTime(v.PeriodTo),
		ContractorID:         v.ContractorID,
		ContractorNotes:      v.ContractorNotes,
		WorkCompleted:        work,
		MaterialsOnSite:      materials,
		Variations:           variations,
		GrossValuation:       toMoneyItem(v.GrossValuation),
		RetentionPercentage:  v.RetentionPercentage,
		RetentionAmount:      toMoneyItem(v.RetentionAmount),
		PreviousCertificates: toMoneyItem(v.PreviousCertificates),
		NetAmount:            toMoneyItem(v.NetAmount),
		Status:               string(v.Status),
		QSReviewedAt:         formatTimePtr(v.QSReviewedAt),
		QSReviewedBy:         v.QSReviewedBy,
		QSComments:           v.QSComments,
		PaidAt:               formatTimePtr(v.PaidAt),
		CreatedAt:            formatTime(v.CreatedAt),
		UpdatedAt:            formatTime(v.UpdatedAt),
	}
}

func fromValuationItem(it valuationItem) entities.ContractorValuation {
	work := make([]entities.ValuationWorkItem, 0, len(it.WorkCompleted))
	for _, w := range it.WorkCompleted {
		work = append(work, entities.ValuationWorkItem{
			Description: w.Description,
			Quantity:    w.Quantity,
			Amount:      fromMoneyItem(w.Amount),
		})
	}
	materials := make([]entities.MaterialOnSite, 0, len(it.MaterialsOnSite))
	for _, m := range it.MaterialsOnSite {
		materials = append(materials, entities.MaterialOnSite{
			Description: m.Description,
			Value:       fromMoneyItem(m.Value),
		})
	}
	variations := make([]entities.ValuationVariation, 0, len(it.Variations))
	for _, va := range it.Variations {
		variations = append(variations, entities.ValuationVariation{
			Reference: va.Reference,
			Type:      entities.VariationType(va.Type),
			Amount:    fromMoneyItem(va.Amount),
			Approved:  va.Approved,
		})
	}
	return entities.ContractorValuation{
		ID:                   it.ID,
		ProjectID:            it.ProjectID,
		ValuationNumber:      it.ValuationNumber,
		PeriodFrom:           parseTime(it.PeriodFrom),
		PeriodTo:             parseTime(it.PeriodTo),
		ContractorID:         it.ContractorID,
		ContractorNotes:      it.ContractorNotes,
		WorkCompleted:        work,
		MaterialsOnSite:      materials,
		Variations:           variations,
		GrossValuation:       fromMoneyItem(it.GrossValuation),
		RetentionPercentage:  it.RetentionPercentage,
		RetentionAmount:      fromMoneyItem(it.RetentionAmount),
		PreviousCertificates: fromMoneyItem(it.PreviousCertificates),
		NetAmount:            fromMoneyItem(it.NetAmount),
		Status:               entities.ValuationStatus(it.Status),
		QSReviewedAt:         parseTimePtr(it.QSReviewedAt),
		QSReviewedBy:         it.QSReviewedBy,
		QSComments:           it.QSComments,
		PaidAt:               parseTimePtr(it.PaidAt),
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
