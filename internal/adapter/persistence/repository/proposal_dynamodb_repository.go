package repository

import (
	"client_portal/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProposalsTableName = "proposals"

type proposalItem struct {
	ID          string  `dynamodbav:"id"`
	ClientID    string  `dynamodbav:"clientId"`
	Title       string  `dynamodbav:"title"`
	Description string  `dynamodbav:"description"`
	Amount      float64 `dynamodbav:"amount"`
	Status      string  `dynamodbav:"status"`
	PDFKey      string  `dynamodbav:"pdf_url,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ResourceDynamoRepository[*entities.Proposal] {
	return &ResourceDynamoRepository[*entities.Proposal]{
		ddb:        ddb,
		tableName:  getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
		statusAttr: "status",
		marshal: func(p *entities.Proposal) (map[string]types.AttributeValue, error) {
			return attributevalue.MarshalMap(toProposalItem(p))
		},
		unmarshal: func(av map[string]types.AttributeValue) (*entities.Proposal, error) {
			var it proposalItem
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				return nil, err
			}
			return fromProposalItem(it), nil
		},
	}
}

func toProposalItem(p *entities.Proposal) proposalItem {
	return proposalItem{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Title:       p.Title,
		Description: p.Description,
		Amount:      p.Amount,
		Status:      string(p.Status),
		PDFKey:      p.PDFKey,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

func fromProposalItem(it proposalItem) *entities.Proposal {
	return &entities.Proposal{
		ID:          it.ID,
		ClientID:    it.ClientID,
		Title:       it.Title,
		Description: it.Description,
		Amount:      it.Amount,
		Status:      entities.ProposalStatus(it.Status),
		PDFKey:      it.PDFKey,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
