package repository

import (
	"client_portal/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID            string `dynamodbav:"id"`
	ClientID      string `dynamodbav:"clientId"`
	Name          string `dynamodbav:"name"`
	Phone         string `dynamodbav:"phone"`
	Email         string `dynamodbav:"email"`
	Status        string `dynamodbav:"status"`
	Notes         string `dynamodbav:"notes"`
	LastContacted string `dynamodbav:"last_contacted,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

func NewLeadDynamoRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[*entities.Lead] {
	return &ResourceDynamoRepository[*entities.Lead]{
		ddb:        ddb,
		tableName:  getenvDefault("LEADS_TABLE", defaultLeadsTableName),
		statusAttr: "status",
		marshal: func(l *entities.Lead) (map[string]types.AttributeValue, error) {
			return attributevalue.MarshalMap(toLeadItem(l))
		},
		unmarshal: func(av map[string]types.AttributeValue) (*entities.Lead, error) {
			var it leadItem
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				return nil, err
			}
			return fromLeadItem(it), nil
		},
	}
}

func toLeadItem(l *entities.Lead) leadItem {
	return leadItem{
		ID:            l.ID,
		ClientID:      l.ClientID,
		Name:          l.Name,
		Phone:         l.Phone,
		Email:         l.Email,
		Status:        string(l.Status),
		Notes:         l.Notes,
		LastContacted: l.LastContacted,
		CreatedAt:     formatTime(l.CreatedAt),
		UpdatedAt:     formatTime(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) *entities.Lead {
	return &entities.Lead{
		ID:            it.ID,
		ClientID:      it.ClientID,
		Name:          it.Name,
		Phone:         it.Phone,
		Email:         it.Email,
		Status:        entities.LeadStatus(it.Status),
		Notes:         it.Notes,
		LastContacted: it.LastContacted,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
