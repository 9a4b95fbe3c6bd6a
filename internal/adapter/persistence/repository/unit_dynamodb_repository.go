package repository

import (
	"context"
	"errors"
	"time"

	"propie_backend/internal/domain/entities"
	"propie_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUnitsTableName    = "units"
	unitsDevelopmentIDIndex  = "development_id-index"
	unitsSearchScanPageLimit = 250
)

type unitItem struct {
	ID            string    `dynamodbav:"id"`
	DevelopmentID string    `dynamodbav:"development_id"`
	Name          string    `dynamodbav:"name"`
	Bedrooms      int       `dynamodbav:"bedrooms"`
	Bathrooms     int       `dynamodbav:"bathrooms"`
	FloorAreaSqm  string    `dynamodbav:"floor_area_sqm,omitempty"`
	BERRating     string    `dynamodbav:"ber_rating,omitempty"`
	Price         moneyItem `dynamodbav:"price"`
	Status        string    `dynamodbav:"status"`
	ReservedBy    string    `dynamodbav:"reserved_by,omitempty"`
	CreatedAt     string    `dynamodbav:"created_at"`
	UpdatedAt     string    `dynamodbav:"updated_at"`
}

// UnitDynamoRepository persists Unit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: development_id-index (PK: development_id)
//
// Status moves are compare-and-swap on the current status so a unit can only
// walk the sales funnel one step at a time even under concurrent payment
// events. Release additionally pins reserved_by, so a failed payment can
// never free a reservation now held by a different buyer.

type UnitDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUnitRepository = (*UnitDynamoRepository)(nil)

func NewUnitDynamoRepository(ddb *dynamodb.Client) *UnitDynamoRepository {
	return &UnitDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("UNITS_TABLE", defaultUnitsTableName),
	}
}

func (r *UnitDynamoRepository) GetByID(ctx context.Context, id string) (entities.Unit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Unit{}, err
	}
	if len(out.Item) == 0 {
		return entities.Unit{}, nil
	}

	var it unitItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Unit{}, err
	}
	return fromUnitItem(it), nil
}

func (r *UnitDynamoRepository) ListByDevelopmentID(ctx context.Context, developmentID string) ([]entities.Unit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(unitsDevelopmentIDIndex),
		KeyConditionExpression: aws.String("development_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: developmentID},
		},
	})
	if err != nil {
		return nil, err
	}

	units := make([]entities.Unit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it unitItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		units = append(units, fromUnitItem(it))
	}
	return units, nil
}

// Search narrows by development through the GSI when it can; price and
// bedroom filters are applied in memory because decimal-string amounts are
// not comparable inside a DynamoDB filter expression.
func (r *UnitDynamoRepository) Search(ctx context.Context, criteria entities.UnitSearchCriteria) ([]entities.Unit, error) {
	var candidates []entities.Unit
	if criteria.DevelopmentID != "" {
		units, err := r.ListByDevelopmentID(ctx, criteria.DevelopmentID)
		if err != nil {
			return nil, err
		}
		candidates = units
	} else {
		paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
			TableName: aws.String(r.tableName),
			Limit:     aws.Int32(unitsSearchScanPageLimit),
		})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, raw := range page.Items {
				var it unitItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				candidates = append(candidates, fromUnitItem(it))
			}
		}
	}

	matches := make([]entities.Unit, 0, len(candidates))
	for _, unit := range candidates {
		if !matchesCriteria(unit, criteria) {
			continue
		}
		matches = append(matches, unit)
	}
	return matches, nil
}

func matchesCriteria(unit entities.Unit, criteria entities.UnitSearchCriteria) bool {
	if criteria.Status != "" && unit.Status != criteria.Status {
		return false
	}
	if criteria.MinBedrooms > 0 && unit.Bedrooms < criteria.MinBedrooms {
		return false
	}
	if criteria.MinPrice != nil {
		ok, err := criteria.MinPrice.LessThanOrEqual(unit.Price)
		if err != nil || !ok {
			return false
		}
	}
	if criteria.MaxPrice != nil {
		ok, err := unit.Price.LessThanOrEqual(*criteria.MaxPrice)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

func (r *UnitDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.UnitStatus, reservedBy string) (entities.Unit, error) {
	expr := "SET #status = :next, #updated_at = :now"
	vals := map[string]types.AttributeValue{
		":next":     &types.AttributeValueMemberS{Value: string(next)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
		":now":      &types.AttributeValueMemberS{Value: formatTime(time.Now().UTC())},
	}
	if next == entities.UnitStatusReserved && reservedBy != "" {
		expr += ", reserved_by = :reserved_by"
		vals[":reserved_by"] = &types.AttributeValueMemberS{Value: reservedBy}
	}
	if next == entities.UnitStatusAvailable {
		expr += " REMOVE reserved_by"
	}

	return r.update(ctx, id, "attribute_exists(#id) AND #status = :expected", expr, vals, nil)
}

func (r *UnitDynamoRepository) Release(ctx context.Context, id string, buyerID string) (entities.Unit, error) {
	expr := "SET #status = :available, #updated_at = :now REMOVE reserved_by"
	vals := map[string]types.AttributeValue{
		":available": &types.AttributeValueMemberS{Value: string(entities.UnitStatusAvailable)},
		":reserved":  &types.AttributeValueMemberS{Value: string(entities.UnitStatusReserved)},
		":buyer":     &types.AttributeValueMemberS{Value: buyerID},
		":now":       &types.AttributeValueMemberS{Value: formatTime(time.Now().UTC())},
	}
	return r.update(ctx, id, "attribute_exists(#id) AND #status = :reserved AND reserved_by = :buyer", expr, vals, nil)
}

func (r *UnitDynamoRepository) update(ctx context.Context, id, condition, expr string, vals map[string]types.AttributeValue, names map[string]string) (entities.Unit, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames: mergeNames(names, map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return entities.Unit{}, getErr
			}
			if existing.ID == "" {
				return entities.Unit{}, nil
			}
			return entities.Unit{}, interfaces.ErrConditionFailed
		}
		return entities.Unit{}, err
	}

	var it unitItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Unit{}, err
	}
	return fromUnitItem(it), nil
}

func fromUnitItem(it unitItem) entities.Unit {
	return entities.Unit{
		ID:            it.ID,
		DevelopmentID: it.DevelopmentID,
		Name:          it.Name,
		Bedrooms:      it.Bedrooms,
		Bathrooms:     it.Bathrooms,
		FloorAreaSqm:  it.FloorAreaSqm,
		BERRating:     it.BERRating,
		Price:         fromMoneyItem(it.Price),
		Status:        entities.UnitStatus(it.Status),
		ReservedBy:    it.ReservedBy,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
