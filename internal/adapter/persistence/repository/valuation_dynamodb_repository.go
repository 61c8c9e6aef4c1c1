package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultValuationsTableName = "valuations"

type valuationItem struct {
	ID         string `dynamodbav:"id"`
	ProductID  string `dynamodbav:"product_id"`
	VariantID  string `dynamodbav:"variant_id,omitempty"`
	Category   string `dynamodbav:"category"`
	Brand      string `dynamodbav:"brand"`
	Model      string `dynamodbav:"model"`
	PostalCode string `dynamodbav:"postal_code"`
	State      string `dynamodbav:"state,omitempty"`
	Answers    string `dynamodbav:"answers"`
	BasePrice  string `dynamodbav:"base_price"`
	FinalValue string `dynamodbav:"final_value"`
	Status     string `dynamodbav:"status"`
	Remarks    string `dynamodbav:"remarks,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ValuationDynamoRepository persists Valuation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string), the order identifier
//
// Amounts are stored as decimal strings; answers as their JSON document.

type ValuationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	logger    *zap.Logger
}

var _ interfaces.IValuationRepository = (*ValuationDynamoRepository)(nil)

func NewValuationDynamoRepository(ddb DynamoDBAPI, tableName string, logger *zap.Logger) *ValuationDynamoRepository {
	if tableName == "" {
		tableName = DefaultValuationsTableName
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ValuationDynamoRepository{ddb: ddb, tableName: tableName, logger: logger}
}

func (r *ValuationDynamoRepository) Create(ctx context.Context, v entities.Valuation) (entities.Valuation, error) {
	it, err := toValuationItem(v)
	if err != nil {
		return entities.Valuation{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Valuation{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.Valuation{}, fmt.Errorf("%w: %s", interfaces.ErrDuplicateKey, v.ID)
		}
		return entities.Valuation{}, err
	}
	return v, nil
}

func (r *ValuationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Valuation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Valuation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Valuation{}, nil
	}

	var it valuationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Valuation{}, err
	}
	return r.fromValuationItem(it), nil
}

func (r *ValuationDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ValuationStatus) (entities.Valuation, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(to)},
			":expected":   &types.AttributeValueMemberS{Value: string(from)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, "#status = :expected", vals, names
	})
}

func (r *ValuationDynamoRepository) UpdateRemarks(ctx context.Context, id string, remarks string) (entities.Valuation, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #remarks = :remarks, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":remarks":    &types.AttributeValueMemberS{Value: remarks},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#remarks":    "remarks",
			"#updated_at": "updated_at",
		}
		return expr, "", vals, names
	})
}

// update applies build's expression to an existing item. A failed condition,
// including the optional extra guard, yields a zero Valuation.
func (r *ValuationDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr, guard string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Valuation, error) {
	updateExpr, guard, values, names := build(nowString())

	condition := "attribute_exists(#id)"
	if guard != "" {
		condition += " AND " + guard
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey(id),
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Valuation{}, nil
		}
		return entities.Valuation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Valuation{}, nil
	}
	var it valuationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Valuation{}, err
	}
	return r.fromValuationItem(it), nil
}

func toValuationItem(v entities.Valuation) (valuationItem, error) {
	answers := v.Answers
	if answers == nil {
		answers = entities.AnswerMap{}
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return valuationItem{}, fmt.Errorf("encode answers: %w", err)
	}
	return valuationItem{
		ID:         v.ID,
		ProductID:  v.ProductID,
		VariantID:  v.VariantID,
		Category:   v.Category,
		Brand:      v.Brand,
		Model:      v.Model,
		PostalCode: v.PostalCode,
		State:      v.State,
		Answers:    string(raw),
		BasePrice:  v.BasePrice.String(),
		FinalValue: v.FinalValue.String(),
		Status:     string(v.Status),
		Remarks:    v.Remarks,
		CreatedAt:  v.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  v.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func (r *ValuationDynamoRepository) fromValuationItem(it valuationItem) entities.Valuation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	basePrice, err := decimal.NewFromString(it.BasePrice)
	if err != nil {
		r.logger.Warn("stored base price is not a decimal", zap.String("order_id", it.ID), zap.Error(err))
	}
	finalValue, err := decimal.NewFromString(it.FinalValue)
	if err != nil {
		r.logger.Warn("stored final value is not a decimal", zap.String("order_id", it.ID), zap.Error(err))
	}
	answers := entities.AnswerMap{}
	if it.Answers != "" {
		if err := json.Unmarshal([]byte(it.Answers), &answers); err != nil {
			r.logger.Warn("stored answers are not valid JSON", zap.String("order_id", it.ID), zap.Error(err))
		}
	}
	return entities.Valuation{
		ID:         it.ID,
		ProductID:  it.ProductID,
		VariantID:  it.VariantID,
		Category:   it.Category,
		Brand:      it.Brand,
		Model:      it.Model,
		PostalCode: it.PostalCode,
		State:      it.State,
		Answers:    answers,
		BasePrice:  basePrice,
		FinalValue: finalValue,
		Status:     entities.ValuationStatus(it.Status),
		Remarks:    it.Remarks,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
