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
	defaultHTBClaimsTableName = "htb_claims"
	htbClaimsBuyerIDIndex     = "buyer_id-index"
)

type htbStatusUpdateItem struct {
	ID             string `dynamodbav:"id"`
	PreviousStatus string `dynamodbav:"previous_status"`
	NewStatus      string `dynamodbav:"new_status"`
	UpdatedBy      string `dynamodbav:"updated_by"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	Notes          string `dynamodbav:"notes,omitempty"`
}

type htbDocumentItem struct {
	ID         string `dynamodbav:"id"`
	URL        string `dynamodbav:"url"`
	Name       string `dynamodbav:"name"`
	Type       string `dynamodbav:"type"`
	UploadedBy string `dynamodbav:"uploaded_by"`
	UploadedAt string `dynamodbav:"uploaded_at"`
}

type htbNoteItem struct {
	ID        string `dynamodbav:"id"`
	Content   string `dynamodbav:"content"`
	Private   bool   `dynamodbav:"private"`
	AuthorID  string `dynamodbav:"author_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

type htbClaimItem struct {
	ID                   string                `dynamodbav:"id"`
	BuyerID              string                `dynamodbav:"buyer_id"`
	PropertyID           string                `dynamodbav:"property_id"`
	RequestedAmount      moneyItem             `dynamodbav:"requested_amount"`
	ApprovedAmount       *moneyItem            `dynamodbav:"approved_amount,omitempty"`
	Status               string                `dynamodbav:"status"`
	FundsPaymentStatus   string                `dynamodbav:"funds_payment_status"`
	AccessCode           string                `dynamodbav:"access_code,omitempty"`
	AccessCodeExpiryDate string                `dynamodbav:"access_code_expiry_date,omitempty"`
	ClaimCode            string                `dynamodbav:"claim_code,omitempty"`
	ClaimCodeExpiryDate  string                `dynamodbav:"claim_code_expiry_date,omitempty"`
	ApplicationDate      string                `dynamodbav:"application_date"`
	LastUpdatedDate      string                `dynamodbav:"last_updated_date"`
	StatusHistory        []htbStatusUpdateItem `dynamodbav:"status_history"`
	Documents            []htbDocumentItem     `dynamodbav:"documents"`
	Notes                []htbNoteItem         `dynamodbav:"notes"`
}

// HTBClaimDynamoRepository persists HTBClaim aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: buyer_id-index (PK: buyer_id)
//
// Status transitions are single UpdateItem calls conditioned on the stored
// status, so two racing writers can never both win; the loser gets
// interfaces.ErrConditionFailed. History, documents and notes are appended
// with list_append and never rewritten.

type HTBClaimDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHTBClaimRepository = (*HTBClaimDynamoRepository)(nil)

func NewHTBClaimDynamoRepository(ddb *dynamodb.Client) *HTBClaimDynamoRepository {
	return &HTBClaimDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HTB_CLAIMS_TABLE", defaultHTBClaimsTableName),
	}
}

func (r *HTBClaimDynamoRepository) Create(ctx context.Context, claim entities.HTBClaim) (entities.HTBClaim, error) {
	it := toHTBClaimItem(claim)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.HTBClaim{}, err
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
		return entities.HTBClaim{}, err
	}
	return claim, nil
}

func (r *HTBClaimDynamoRepository) GetByID(ctx context.Context, id string) (entities.HTBClaim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.HTBClaim{}, err
	}
	if len(out.Item) == 0 {
		return entities.HTBClaim{}, nil
	}

	var it htbClaimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.HTBClaim{}, err
	}
	return fromHTBClaimItem(it), nil
}

func (r *HTBClaimDynamoRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.HTBClaim, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(htbClaimsBuyerIDIndex),
		KeyConditionExpression: aws.String("buyer_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: buyerID},
		},
	})
	if err != nil {
		return nil, err
	}

	claims := make([]entities.HTBClaim, 0, len(out.Items))
	for _, raw := range out.Items {
		var it htbClaimItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		claims = append(claims, fromHTBClaimItem(it))
	}
	return claims, nil
}

// ApplyTransition moves the claim to update.NewStatus and appends the history
// entry in one conditional write. The condition pins the stored status to
// expected; a lost race returns interfaces.ErrConditionFailed, a missing
// claim a zero value.
func (r *HTBClaimDynamoRepository) ApplyTransition(ctx context.Context, claimID string, expected entities.HTBClaimStatus, update entities.HTBStatusUpdate, changes entities.HTBTransitionChanges) (entities.HTBClaim, error) {
	entry, err := attributevalue.Marshal(htbStatusUpdateItem{
		ID:             update.ID,
		PreviousStatus: string(update.PreviousStatus),
		NewStatus:      string(update.NewStatus),
		UpdatedBy:      update.UpdatedBy,
		UpdatedAt:      formatTime(update.UpdatedAt),
		Notes:          update.Notes,
	})
	if err != nil {
		return entities.HTBClaim{}, err
	}

	expr := "SET #status = :next, #last_updated = :now, #history = list_append(if_not_exists(#history, :empty), :entry)"
	vals := map[string]types.AttributeValue{
		":next":     &types.AttributeValueMemberS{Value: string(update.NewStatus)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
		":now":      &types.AttributeValueMemberS{Value: formatTime(update.UpdatedAt)},
		":empty":    &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":entry":    &types.AttributeValueMemberL{Value: []types.AttributeValue{entry}},
	}
	names := map[string]string{
		"#status":       "status",
		"#last_updated": "last_updated_date",
		"#history":      "status_history",
	}
	if changes.AccessCode != "" {
		expr += ", access_code = :access_code"
		vals[":access_code"] = &types.AttributeValueMemberS{Value: changes.AccessCode}
	}
	if changes.AccessCodeExpiryDate != nil {
		expr += ", access_code_expiry_date = :access_expiry"
		vals[":access_expiry"] = &types.AttributeValueMemberS{Value: formatTime(*changes.AccessCodeExpiryDate)}
	}
	if changes.ClaimCode != "" {
		expr += ", claim_code = :claim_code"
		vals[":claim_code"] = &types.AttributeValueMemberS{Value: changes.ClaimCode}
	}
	if changes.ClaimCodeExpiryDate != nil {
		expr += ", claim_code_expiry_date = :claim_expiry"
		vals[":claim_expiry"] = &types.AttributeValueMemberS{Value: formatTime(*changes.ClaimCodeExpiryDate)}
	}
	if changes.ApprovedAmount != nil {
		approved, err := attributevalue.Marshal(toMoneyItem(*changes.ApprovedAmount))
		if err != nil {
			return entities.HTBClaim{}, err
		}
		expr += ", approved_amount = :approved"
		vals[":approved"] = approved
	}

	return r.update(ctx, claimID, "attribute_exists(#id) AND #status = :expected", expr, vals, names)
}

func (r *HTBClaimDynamoRepository) UpdateFundsPaymentStatus(ctx context.Context, claimID string, expected, next entities.HTBFundsPaymentStatus) (entities.HTBClaim, error) {
	expr := "SET #funds_status = :next, #last_updated = :now"
	vals := map[string]types.AttributeValue{
		":next":     &types.AttributeValueMemberS{Value: string(next)},
		":expected": &types.AttributeValueMemberS{Value: string(expected)},
		":now":      &types.AttributeValueMemberS{Value: formatTime(time.Now().UTC())},
	}
	names := map[string]string{
		"#funds_status": "funds_payment_status",
		"#last_updated": "last_updated_date",
	}
	return r.update(ctx, claimID, "attribute_exists(#id) AND #funds_status = :expected", expr, vals, names)
}

func (r *HTBClaimDynamoRepository) AddDocument(ctx context.Context, claimID string, doc entities.HTBDocument) (entities.HTBClaim, error) {
	entry, err := attributevalue.Marshal(htbDocumentItem{
		ID:         doc.ID,
		URL:        doc.URL,
		Name:       doc.Name,
		Type:       doc.Type,
		UploadedBy: doc.UploadedBy,
		UploadedAt: formatTime(doc.UploadedAt),
	})
	if err != nil {
		return entities.HTBClaim{}, err
	}
	return r.appendToList(ctx, claimID, "documents", entry, doc.UploadedAt)
}

func (r *HTBClaimDynamoRepository) AddNote(ctx context.Context, claimID string, note entities.HTBNote) (entities.HTBClaim, error) {
	entry, err := attributevalue.Marshal(htbNoteItem{
		ID:        note.ID,
		Content:   note.Content,
		Private:   note.Private,
		AuthorID:  note.AuthorID,
		CreatedAt: formatTime(note.CreatedAt),
	})
	if err != nil {
		return entities.HTBClaim{}, err
	}
	return r.appendToList(ctx, claimID, "notes", entry, note.CreatedAt)
}

func (r *HTBClaimDynamoRepository) appendToList(ctx context.Context, claimID, attr string, entry types.AttributeValue, at time.Time) (entities.HTBClaim, error) {
	expr := "SET #list = list_append(if_not_exists(#list, :empty), :entry), #last_updated = :now"
	vals := map[string]types.AttributeValue{
		":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":entry": &types.AttributeValueMemberL{Value: []types.AttributeValue{entry}},
		":now":   &types.AttributeValueMemberS{Value: formatTime(at)},
	}
	names := map[string]string{
		"#list":         attr,
		"#last_updated": "last_updated_date",
	}
	return r.update(ctx, claimID, "attribute_exists(#id)", expr, vals, names)
}

// update runs one conditional UpdateItem. A failed condition on a claim that
// exists maps to interfaces.ErrConditionFailed; on a claim that does not, to
// the zero value.
func (r *HTBClaimDynamoRepository) update(ctx context.Context, claimID, condition, expr string, vals map[string]types.AttributeValue, names map[string]string) (entities.HTBClaim, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: claimID},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, getErr := r.GetByID(ctx, claimID)
			if getErr != nil {
				return entities.HTBClaim{}, getErr
			}
			if existing.ID == "" {
				return entities.HTBClaim{}, nil
			}
			return entities.HTBClaim{}, interfaces.ErrConditionFailed
		}
		return entities.HTBClaim{}, err
	}

	var it htbClaimItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.HTBClaim{}, err
	}
	return fromHTBClaimItem(it), nil
}

func toHTBClaimItem(c entities.HTBClaim) htbClaimItem {
	history := make([]htbStatusUpdateItem, 0, len(c.StatusHistory))
	for _, h := range c.StatusHistory {
		history = append(history, htbStatusUpdateItem{
			ID:             h.ID,
			PreviousStatus: string(h.PreviousStatus),
			NewStatus:      string(h.NewStatus),
			UpdatedBy:      h.UpdatedBy,
			UpdatedAt:      formatTime(h.UpdatedAt),
			Notes:          h.Notes,
		})
	}
	docs := make([]htbDocumentItem, 0, len(c.Documents))
	for _, d := range c.Documents {
		docs = append(docs, htbDocumentItem{
			ID:         d.ID,
			URL:        d.URL,
			Name:       d.Name,
			Type:       d.Type,
			UploadedBy: d.UploadedBy,
			UploadedAt: formatTime(d.UploadedAt),
		})
	}
	notes := make([]htbNoteItem, 0, len(c.Notes))
	for _, n := range c.Notes {
		notes = append(notes, htbNoteItem{
			ID:        n.ID,
			Content:   n.Content,
			Private:   n.Private,
			AuthorID:  n.AuthorID,
			CreatedAt: formatTime(n.CreatedAt),
		})
	}
	return htbClaimItem{
		ID:                   c.ID,
		BuyerID:              c.BuyerID,
		PropertyID:           c.PropertyID,
		RequestedAmount:      toMoneyItem(c.RequestedAmount),
		ApprovedAmount:       toMoneyItemPtr(c.ApprovedAmount),
		Status:               string(c.Status),
		FundsPaymentStatus:   string(c.FundsPaymentStatus),
		AccessCode:           c.AccessCode,
		AccessCodeExpiryDate: formatTimePtr(c.AccessCodeExpiryDate),
		ClaimCode:            c.ClaimCode,
		ClaimCodeExpiryDate:  formatTimePtr(c.ClaimCodeExpiryDate),
		ApplicationDate:      formatTime(c.ApplicationDate),
		LastUpdatedDate:      formatTime(c.LastUpdatedDate),
		StatusHistory:        history,
		Documents:            docs,
		Notes:                notes,
	}
}

func fromHTBClaimItem(it htbClaimItem) entities.HTBClaim {
	history := make([]entities.HTBStatusUpdate, 0, len(it.StatusHistory))
	for _, h := range it.StatusHistory {
		history = append(history, entities.HTBStatusUpdate{
			ID:             h.ID,
			PreviousStatus: entities.HTBClaimStatus(h.PreviousStatus),
			NewStatus:      entities.HTBClaimStatus(h.NewStatus),
			UpdatedBy:      h.UpdatedBy,
			UpdatedAt:      parseTime(h.UpdatedAt),
			Notes:          h.Notes,
		})
	}
	docs := make([]entities.HTBDocument, 0, len(it.Documents))
	for _, d := range it.Documents {
		docs = append(docs, entities.HTBDocument{
			ID:         d.ID,
			URL:        d.URL,
			Name:       d.Name,
			Type:       d.Type,
			UploadedBy: d.UploadedBy,
			UploadedAt: parseTime(d.UploadedAt),
		})
	}
	notes := make([]entities.HTBNote, 0, len(it.Notes))
	for _, n := range it.Notes {
		notes = append(notes, entities.HTBNote{
			ID:        n.ID,
			Content:   n.Content,
			Private:   n.Private,
			AuthorID:  n.AuthorID,
			CreatedAt: parseTime(n.CreatedAt),
		})
	}
	return entities.HTBClaim{
		ID:                   it.ID,
		BuyerID:              it.BuyerID,
		PropertyID:           it.PropertyID,
		RequestedAmount:      fromMoneyItem(it.RequestedAmount),
		ApprovedAmount:       fromMoneyItemPtr(it.ApprovedAmount),
		Status:               entities.HTBClaimStatus(it.Status),
		FundsPaymentStatus:   entities.HTBFundsPaymentStatus(it.FundsPaymentStatus),
		AccessCode:           it.AccessCode,
		AccessCodeExpiryDate: parseTimePtr(it.AccessCodeExpiryDate),
		ClaimCode:            it.ClaimCode,
		ClaimCodeExpiryDate:  parseTimePtr(it.ClaimCodeExpiryDate),
		ApplicationDate:      parseTime(it.ApplicationDate),
		LastUpdatedDate:      parseTime(it.LastUpdatedDate),
		StatusHistory:        history,
		Documents:            docs,
		Notes:                notes,
	}
}
