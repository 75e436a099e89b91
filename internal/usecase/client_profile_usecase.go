package usecase

import (
	"context"
	"errors"

	"client_portal/internal/domain/entities"
	"client_portal/internal/usecase/interfaces"
)

var ErrProfileNotFound = errors.New("client profile not found")

// UpdateProfileInput is a partial patch of the editable profile fields.
// Name is only applied when non-empty; company and phone may be cleared.
type UpdateProfileInput struct {
	Name    *string
	Company *string
	Phone   *string
}

type IClientProfileUseCase interface {
	Get(ctx context.Context, uid string) (*entities.ClientProfile, error)
	Update(ctx context.Context, uid string, in UpdateProfileInput) (*entities.ClientProfile, error)
}

// ClientProfileUseCase reads and edits the caller's own account document.
// The document key is the authenticated client id, so no separate ownership
// check exists here.
type ClientProfileUseCase struct {
	repo interfaces.IClientProfileRepository
}

var _ IClientProfileUseCase = (*ClientProfileUseCase)(nil)

func NewClientProfileUseCase(repo interfaces.IClientProfileRepository) *ClientProfileUseCase {
	return &ClientProfileUseCase{repo: repo}
}

func (u *ClientProfileUseCase) Get(ctx context.Context, uid string) (*entities.ClientProfile, error) {
	p, found, err := u.repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (u *ClientProfileUseCase) Update(ctx context.Context, uid string, in UpdateProfileInput) (*entities.ClientProfile, error) {
	name := in.Name
	if name != nil && *name == "" {
		name = nil
	}

	p, found, err := u.repo.UpdateProfile(ctx, uid, name, in.Company, in.Phone)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrProfileNotFound
	}
	return p, nil
}
