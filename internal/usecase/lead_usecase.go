package usecase

import (
	"context"
	"strings"

	"client_portal/internal/domain/entities"
	"client_portal/internal/usecase/interfaces"
)

// CreateLeadInput carries the client-supplied lead fields. Any clientId in
// the inbound payload is ignored; ownership comes from the token.
type CreateLeadInput struct {
	Name   string
	Phone  string
	Email  string
	Status string
	Notes  string
}

// UpdateLeadInput is a partial patch. A nil field was not supplied. Name,
// phone, email and status are only applied when non-empty; notes is applied
// even when cleared to the empty string.
type UpdateLeadInput struct {
	Name          *string
	Phone         *string
	Email         *string
	Status        *string
	Notes         *string
	LastContacted *string
}

type ILeadUseCase interface {
	List(ctx context.Context, clientID, status string, limit, offset int) (Page[*entities.Lead], error)
	Get(ctx context.Context, clientID, id string) (*entities.Lead, error)
	Create(ctx context.Context, clientID string, in CreateLeadInput) (*entities.Lead, error)
	Update(ctx context.Context, clientID, id string, in UpdateLeadInput) error
	Delete(ctx context.Context, clientID, id string) error
}

type LeadUseCase struct {
	leads *ResourceAccessor[*entities.Lead]
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ResourceRepository[*entities.Lead]) *LeadUseCase {
	return &LeadUseCase{leads: NewResourceAccessor(repo)}
}

func (u *LeadUseCase) List(ctx context.Context, clientID, status string, limit, offset int) (Page[*entities.Lead], error) {
	return u.leads.List(ctx, clientID, status, limit, offset)
}

func (u *LeadUseCase) Get(ctx context.Context, clientID, id string) (*entities.Lead, error) {
	return u.leads.Get(ctx, clientID, id)
}

func (u *LeadUseCase) Create(ctx context.Context, clientID string, in CreateLeadInput) (*entities.Lead, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, ErrMissingFields
	}

	l := &entities.Lead{
		Name:   in.Name,
		Phone:  in.Phone,
		Email:  in.Email,
		Status: entities.LeadStatus(in.Status),
		Notes:  in.Notes,
	}
	return u.leads.Create(ctx, clientID, l)
}

func (u *LeadUseCase) Update(ctx context.Context, clientID, id string, in UpdateLeadInput) error {
	_, err := u.leads.Update(ctx, clientID, id, func(l *entities.Lead) error {
		if in.Status != nil && *in.Status != "" {
			if !l.ValidStatus(*in.Status) {
				return ErrInvalidStatus
			}
			l.Status = entities.LeadStatus(*in.Status)
		}
		if in.Name != nil && *in.Name != "" {
			l.Name = *in.Name
		}
		if in.Phone != nil && *in.Phone != "" {
			l.Phone = *in.Phone
		}
		if in.Email != nil && *in.Email != "" {
			l.Email = *in.Email
		}
		if in.Notes != nil {
			l.Notes = *in.Notes
		}
		if in.LastContacted != nil && *in.LastContacted != "" {
			l.LastContacted = *in.LastContacted
		}
		return nil
	})
	return err
}

func (u *LeadUseCase) Delete(ctx context.Context, clientID, id string) error {
	return u.leads.Delete(ctx, clientID, id)
}
