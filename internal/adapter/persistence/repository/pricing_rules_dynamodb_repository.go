package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"tradein_valuation/internal/domain/entities"
	"tradein_valuation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	DefaultPricingRulesTableName = "pricing_rules"
	GlobalRulesKey               = "global#default"
)

type pricingRulesItem struct {
	ID        string `dynamodbav:"id"`
	Rules     string `dynamodbav:"rules"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// PricingRulesDynamoRepository reads rule tiers from DynamoDB.
//
// Table requirements:
//   - PK: id (string): variant#{id}, product#{id} or global#default
//   - rules: JSON document of entities.PricingRules

type PricingRulesDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPricingRulesRepository = (*PricingRulesDynamoRepository)(nil)

func NewPricingRulesDynamoRepository(ddb DynamoDBAPI, tableName string) *PricingRulesDynamoRepository {
	if tableName == "" {
		tableName = DefaultPricingRulesTableName
	}
	return &PricingRulesDynamoRepository{ddb: ddb, tableName: tableName}
}

func VariantRulesKey(variantID string) string { return "variant#" + variantID }
func ProductRulesKey(productID string) string { return "product#" + productID }

func (r *PricingRulesDynamoRepository) GetVariantRules(ctx context.Context, variantID string) (entities.PricingRules, bool, error) {
	return r.get(ctx, VariantRulesKey(variantID))
}

func (r *PricingRulesDynamoRepository) GetProductRules(ctx context.Context, productID string) (entities.PricingRules, bool, error) {
	return r.get(ctx, ProductRulesKey(productID))
}

func (r *PricingRulesDynamoRepository) GetGlobalRules(ctx context.Context) (entities.PricingRules, bool, error) {
	return r.get(ctx, GlobalRulesKey)
}

// Put stores a rule document under key. Used by tooling to seed tiers.
func (r *PricingRulesDynamoRepository) Put(ctx context.Context, key string, rules entities.PricingRules) error {
	raw, err := json.Marshal(rules)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(pricingRulesItem{ID: key, Rules: string(raw), UpdatedAt: nowString()})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PricingRulesDynamoRepository) get(ctx context.Context, key string) (entities.PricingRules, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey(key),
	})
	if err != nil {
		return entities.PricingRules{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.PricingRules{}, false, nil
	}

	var it pricingRulesItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingRules{}, false, fmt.Errorf("%w: %s: %v", interfaces.ErrMalformedRules, key, err)
	}
	var rules entities.PricingRules
	if err := json.Unmarshal([]byte(it.Rules), &rules); err != nil {
		return entities.PricingRules{}, false, fmt.Errorf("%w: %s: %v", interfaces.ErrMalformedRules, key, err)
	}
	return rules, true, nil
}
