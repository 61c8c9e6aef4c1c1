package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"tradein_valuation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	DefaultCountersTableName = "counters"
	DefaultSequenceCounterID = "order_sequence"
)

type counterItem struct {
	ID        string `dynamodbav:"id"`
	Value     int64  `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// SequenceCounterDynamoRepository keeps the order sequence in a single
// DynamoDB item.
//
// Table requirements:
//   - PK: id (string)
//   - value: number, last issued sequence
//
// IncrementTx reads the item and writes value+1 in a transaction guarded by
// the value it read, so two writers that read the same value cannot both
// commit.
type SequenceCounterDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	counterID string
	newToken  func() string
}

var _ interfaces.ISequenceCounterRepository = (*SequenceCounterDynamoRepository)(nil)

func NewSequenceCounterDynamoRepository(ddb DynamoDBAPI, tableName, counterID string) *SequenceCounterDynamoRepository {
	if tableName == "" {
		tableName = DefaultCountersTableName
	}
	if counterID == "" {
		counterID = DefaultSequenceCounterID
	}
	return &SequenceCounterDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		counterID: counterID,
		newToken:  uuid.NewString,
	}
}

func (r *SequenceCounterDynamoRepository) IncrementTx(ctx context.Context) (int64, error) {
	current, exists, err := r.read(ctx)
	if err != nil {
		return 0, err
	}
	next := current + 1

	names := map[string]string{"#value": "value", "#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":next":       &types.AttributeValueMemberN{Value: strconv.FormatInt(next, 10)},
		":updated_at": &types.AttributeValueMemberS{Value: nowString()},
	}
	var condition string
	if exists {
		condition = "#value = :current"
		values[":current"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(current, 10)}
	} else {
		condition = "attribute_not_exists(#id)"
		names["#id"] = "id"
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		ClientRequestToken: aws.String(r.newToken()),
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:                 aws.String(r.tableName),
					Key:                       stringKey(r.counterID),
					UpdateExpression:          aws.String("SET #value = :next, #updated_at = :updated_at"),
					ConditionExpression:       aws.String(condition),
					ExpressionAttributeNames:  names,
					ExpressionAttributeValues: values,
				},
			},
		},
	})
	if err != nil {
		if isContention(err) {
			return 0, fmt.Errorf("%w: %v", interfaces.ErrSequenceContention, err)
		}
		return 0, err
	}
	return next, nil
}

// IncrementBestEffort adds one to the counter without a transaction. It can
// race with IncrementTx but never moves the counter backwards.
func (r *SequenceCounterDynamoRepository) IncrementBestEffort(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              stringKey(r.counterID),
		UpdateExpression: aws.String("ADD #value :one SET #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#value":      "value",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	var it counterItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return 0, err
	}
	return it.Value, nil
}

func (r *SequenceCounterDynamoRepository) Current(ctx context.Context) (int64, error) {
	current, _, err := r.read(ctx)
	return current, err
}

func (r *SequenceCounterDynamoRepository) read(ctx context.Context) (int64, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(r.counterID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, false, err
	}
	if len(out.Item) == 0 {
		return 0, false, nil
	}
	var it counterItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, false, err
	}
	return it.Value, true, nil
}

func isContention(err error) bool {
	var conflict *types.TransactionConflictException
	if errors.As(err, &conflict) {
		return true
	}
	if isConditionalCheckFailed(err) {
		return true
	}
	var canceled *types.TransactionCanceledException
	if !errors.As(err, &canceled) {
		return false
	}
	for _, reason := range canceled.CancellationReasons {
		switch aws.ToString(reason.Code) {
		case "ConditionalCheckFailed", "TransactionConflict":
			return true
		}
	}
	return false
}
