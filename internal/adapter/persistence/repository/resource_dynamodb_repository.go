package repository

import (
	"context"
	"sort"

	"client_portal/internal/domain/entities"
	"client_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ResourceDynamoRepository persists one resource variant in its own
// DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//   - GSI client_id-index: clientId (string)
//
// The variant constructors (NewLeadDynamoRepository etc.) supply the table
// name, the attribute the status filter matches, and the item codecs.
type ResourceDynamoRepository[T entities.Resource] struct {
	ddb        *dynamodb.Client
	tableName  string
	statusAttr string
	marshal    func(T) (map[string]types.AttributeValue, error)
	unmarshal  func(map[string]types.AttributeValue) (T, error)
}

// ListByClient queries the owner GSI, optionally narrowed by status, and
// pages the result in memory: DynamoDB has no native offset, and a client's
// working set is small enough to sort here.
func (r *ResourceDynamoRepository[T]) ListByClient(ctx context.Context, clientID, status string, limit, offset int) ([]T, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(clientIndexName),
		KeyConditionExpression: aws.String("#cid = :cid"),
		ExpressionAttributeNames: map[string]string{
			"#cid": "clientId",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	}
	if status != "" {
		input.FilterExpression = aws.String("#st = :st")
		input.ExpressionAttributeNames["#st"] = r.statusAttr
		input.ExpressionAttributeValues[":st"] = &types.AttributeValueMemberS{Value: status}
	}

	var items []T
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, av := range out.Items {
			item, err := r.unmarshal(av)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortKey() > items[j].SortKey()
	})

	if offset >= len(items) {
		return []T{}, nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (r *ResourceDynamoRepository[T]) GetByID(ctx context.Context, id string) (T, bool, error) {
	var zero T

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, false, err
	}
	if len(out.Item) == 0 {
		return zero, false, nil
	}

	item, err := r.unmarshal(out.Item)
	if err != nil {
		return zero, false, err
	}
	return item, true, nil
}

func (r *ResourceDynamoRepository[T]) Create(ctx context.Context, res T) (T, error) {
	var zero T

	if res.GetID() == "" {
		res.SetID(uuid.NewString())
	}

	av, err := r.marshal(res)
	if err != nil {
		return zero, err
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
		return zero, err
	}
	return res, nil
}

// Save replaces the whole item. Concurrent saves to the same id are
// last-write-wins, matching the store's per-document write semantics.
func (r *ResourceDynamoRepository[T]) Save(ctx context.Context, res T) (T, error) {
	var zero T

	av, err := r.marshal(res)
	if err != nil {
		return zero, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return zero, err
	}
	return res, nil
}

func (r *ResourceDynamoRepository[T]) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

var _ interfaces.ResourceRepository[*entities.Lead] = (*ResourceDynamoRepository[*entities.Lead])(nil)
