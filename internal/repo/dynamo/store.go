package dynamo

import (
	"Reminder/internal/model"
	"Reminder/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// updateSet собирает SET/REMOVE выражение частичного обновления.
type updateSet struct {
	ub      expression.UpdateBuilder
	changes int
}

func (u *updateSet) set(name string, value any) {
	u.ub = u.ub.Set(expression.Name(name), expression.Value(value))
	u.changes++
}

// optional пишет значение или удаляет атрибут, если поле очищено.
func (u *updateSet) optional(name string, o model.Optional[string]) {
	if !o.Set {
		return
	}
	if o.Cleared() {
		u.ub = u.ub.Remove(expression.Name(name))
		u.changes++
		return
	}
	u.set(name, o.Value)
}

func getItem(ctx context.Context, api API, table, keyName, id string, dst any) (bool, error) {
	out, err := api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       stringKey(keyName, id),
	})
	if err != nil {
		return false, fmt.Errorf("get %s from %s: %w", id, table, err)
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, dst); err != nil {
		return false, fmt.Errorf("decode %s from %s: %w", id, table, err)
	}
	return true, nil
}

func putItem(ctx context.Context, api API, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("encode item for %s: %w", table, err)
	}
	if _, err := api.PutItem(ctx, &dynamodb.PutItemInput{TableName: aws.String(table), Item: av}); err != nil {
		return fmt.Errorf("put into %s: %w", table, err)
	}
	return nil
}

// updateItem применяет выражение только к существующей записи.
// Без условия attribute_exists UpdateItem создал бы новую запись.
func updateItem(ctx context.Context, api API, table, keyName, id string, u *updateSet, dst any) error {
	expr, err := expression.NewBuilder().
		WithUpdate(u.ub).
		WithCondition(expression.AttributeExists(expression.Name(keyName))).
		Build()
	if err != nil {
		return fmt.Errorf("build update for %s: %w", table, err)
	}
	out, err := api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       stringKey(keyName, id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return repo.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update %s in %s: %w", id, table, err)
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, dst); err != nil {
		return fmt.Errorf("decode %s from %s: %w", id, table, err)
	}
	return nil
}

func deleteItem(ctx context.Context, api API, table, keyName, id string) error {
	_, err := api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       stringKey(keyName, id),
	})
	if err != nil {
		return fmt.Errorf("delete %s from %s: %w", id, table, err)
	}
	return nil
}

// queryByOwner читает все страницы индекса UserIdIndex для владельца.
func queryByOwner[T any](ctx context.Context, api API, table, userID string, newestFirst bool) ([]T, error) {
	keyCond := expression.Key("userId").Equal(expression.Value(userID))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("build query for %s: %w", table, err)
	}
	p := dynamodb.NewQueryPaginator(api, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(IndexUserID),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(!newestFirst),
	})
	items := make([]T, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query %s by owner %s: %w", table, userID, err)
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("decode %s page: %w", table, err)
		}
		items = append(items, batch...)
	}
	return items, nil
}

func scanAll[T any](ctx context.Context, api API, table string) ([]T, error) {
	p := dynamodb.NewScanPaginator(api, &dynamodb.ScanInput{TableName: aws.String(table)})
	items := make([]T, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("decode %s page: %w", table, err)
		}
		items = append(items, batch...)
	}
	return items, nil
}
