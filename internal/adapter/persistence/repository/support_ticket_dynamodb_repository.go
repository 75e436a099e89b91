package repository

import (
	"client_portal/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSupportTicketsTableName = "support_tickets"

type replyItem struct {
	ID        string `dynamodbav:"id"`
	Message   string `dynamodbav:"message"`
	Author    string `dynamodbav:"author"`
	CreatedAt string `dynamodbav:"created_at"`
}

type supportTicketItem struct {
	ID          string      `dynamodbav:"id"`
	ClientID    string      `dynamodbav:"clientId"`
	Subject     string      `dynamodbav:"subject"`
	Message     string      `dynamodbav:"message"`
	Priority    string      `dynamodbav:"priority"`
	Status      string      `dynamodbav:"status"`
	Replies     []replyItem `dynamodbav:"replies,omitempty"`
	CreatedAt   string      `dynamodbav:"created_at"`
	UpdatedAt   string      `dynamodbav:"updated_at"`
	LastUpdated string      `dynamodbav:"last_updated"`
}

func NewSupportTicketDynamoRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[*entities.SupportTicket] {
	return &ResourceDynamoRepository[*entities.SupportTicket]{
		ddb:        ddb,
		tableName:  getenvDefault("SUPPORT_TICKETS_TABLE", defaultSupportTicketsTableName),
		statusAttr: "status",
		marshal: func(t *entities.SupportTicket) (map[string]types.AttributeValue, error) {
			return attributevalue.MarshalMap(toSupportTicketItem(t))
		},
		unmarshal: func(av map[string]types.AttributeValue) (*entities.SupportTicket, error) {
			var it supportTicketItem
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				return nil, err
			}
			return fromSupportTicketItem(it), nil
		},
	}
}

func toSupportTicketItem(t *entities.SupportTicket) supportTicketItem {
	item := supportTicketItem{
		ID:          t.ID,
		ClientID:    t.ClientID,
		Subject:     t.Subject,
		Message:     t.Message,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
		LastUpdated: formatTime(t.LastUpdated),
	}
	for _, r := range t.Replies {
		item.Replies = append(item.Replies, replyItem{
			ID:        r.ID,
			Message:   r.Message,
			Author:    r.Author,
			CreatedAt: formatTime(r.CreatedAt),
		})
	}
	return item
}

func fromSupportTicketItem(it supportTicketItem) *entities.SupportTicket {
	t := &entities.SupportTicket{
		ID:          it.ID,
		ClientID:    it.ClientID,
		Subject:     it.Subject,
		Message:     it.Message,
		Priority:    entities.TicketPriority(it.Priority),
		Status:      entities.TicketStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
		LastUpdated: parseTime(it.LastUpdated),
	}
	for _, r := range it.Replies {
		t.Replies = append(t.Replies, entities.Reply{
			ID:        r.ID,
			Message:   r.Message,
			Author:    r.Author,
			CreatedAt: parseTime(r.CreatedAt),
		})
	}
	return t
}
