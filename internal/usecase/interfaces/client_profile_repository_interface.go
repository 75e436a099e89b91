package interfaces

import (
	"context"

	"client_portal/internal/domain/entities"
)

// IClientProfileRepository abstracts DynamoDB persistence for the client
// profile document, keyed directly by the authenticated client id.
//
// UpdateProfile applies only the non-nil fields, refreshes updated_at, and
// reports found=false when no profile exists for uid.
type IClientProfileRepository interface {
	GetByUID(ctx context.Context, uid string) (*entities.ClientProfile, bool, error)
	UpdateProfile(ctx context.Context, uid string, name, company, phone *string) (*entities.ClientProfile, bool, error)
}
