package repository

import (
	"context"

	"client_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRevokedTokensTableName = "revoked_tokens"

// RevokedTokenDynamoRepository reads the revocation list maintained by the
// credential provider's session management. This service never writes it.
//
// Table requirements:
//   - PK: jti (string)
type RevokedTokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRevokedTokenStore = (*RevokedTokenDynamoRepository)(nil)

func NewRevokedTokenDynamoRepository(ddb *dynamodb.Client) *RevokedTokenDynamoRepository {
	return &RevokedTokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVOKED_TOKENS_TABLE", defaultRevokedTokensTableName),
	}
}

func (r *RevokedTokenDynamoRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"jti": &types.AttributeValueMemberS{Value: jti},
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}
