package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"client_portal/internal/domain/entities"
	"client_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientProfileItem struct {
	UID       string `dynamodbav:"uid"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Company   string `dynamodbav:"company"`
	Phone     string `dynamodbav:"phone"`
	StartDate string `dynamodbav:"start_date"`
	Status    string `dynamodbav:"status"`
	Plan      string `dynamodbav:"plan"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ClientProfileDynamoRepository persists client account documents.
//
// Table requirements:
//   - PK: uid (string)
type ClientProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientProfileRepository = (*ClientProfileDynamoRepository)(nil)

func NewClientProfileDynamoRepository(ddb *dynamodb.Client) *ClientProfileDynamoRepository {
	return &ClientProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientProfileDynamoRepository) GetByUID(ctx context.Context, uid string) (*entities.ClientProfile, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"uid": &types.AttributeValueMemberS{Value: uid},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it clientProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return fromClientProfileItem(it), true, nil
}

// UpdateProfile applies the non-nil fields in a single conditional
// UpdateItem; the attribute_exists guard turns "no profile" into
// found=false instead of creating a partial document.
func (r *ClientProfileDynamoRepository) UpdateProfile(ctx context.Context, uid string, name, company, phone *string) (*entities.ClientProfile, bool, error) {
	sets := []string{"#updated_at = :updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	names := map[string]string{
		"#uid":        "uid",
		"#updated_at": "updated_at",
	}

	if name != nil {
		sets = append(sets, "#name = :name")
		names["#name"] = "name"
		values[":name"] = &types.AttributeValueMemberS{Value: *name}
	}
	if company != nil {
		sets = append(sets, "#company = :company")
		names["#company"] = "company"
		values[":company"] = &types.AttributeValueMemberS{Value: *company}
	}
	if phone != nil {
		sets = append(sets, "#phone = :phone")
		names["#phone"] = "phone"
		values[":phone"] = &types.AttributeValueMemberS{Value: *phone}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"uid": &types.AttributeValueMemberS{Value: uid},
		},
		ConditionExpression:       aws.String("attribute_exists(#uid)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var it clientProfileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return nil, false, err
	}
	return fromClientProfileItem(it), true, nil
}

func fromClientProfileItem(it clientProfileItem) *entities.ClientProfile {
	return &entities.ClientProfile{
		UID:       it.UID,
		Name:      it.Name,
		Email:     it.Email,
		Company:   it.Company,
		Phone:     it.Phone,
		StartDate: parseTime(it.StartDate),
		Status:    it.Status,
		Plan:      it.Plan,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
