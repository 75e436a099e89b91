package usecase

import (
	"context"
	"strings"

	"client_portal/internal/domain/entities"
	"client_portal/internal/usecase/interfaces"
)

type CreateAppointmentInput struct {
	LeadID string
	Date   string
	Time   string
	Notes  string
}

type IAppointmentUseCase interface {
	List(ctx context.Context, clientID, status string, limit, offset int) (Page[*entities.Appointment], error)
	Get(ctx context.Context, clientID, id string) (*entities.Appointment, error)
	Create(ctx context.Context, clientID string, in CreateAppointmentInput) (*entities.Appointment, error)
	UpdateOutcome(ctx context.Context, clientID, id, outcome string, notes *string) error
	Delete(ctx context.Context, clientID, id string) error
}

// AppointmentUseCase owns the one cross-resource rule in the portal: an
// appointment can only be booked against a lead the same client owns. The
// lead lookup goes through the lead accessor under the caller's identity, so
// a foreign lead fails with the same forbidden classification a direct read
// would.
type AppointmentUseCase struct {
	appointments *ResourceAccessor[*entities.Appointment]
	leads        *ResourceAccessor[*entities.Lead]
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(
	appointmentRepo interfaces.ResourceRepository[*entities.Appointment],
	leadRepo interfaces.ResourceRepository[*entities.Lead],
) *AppointmentUseCase {
	return &AppointmentUseCase{
		appointments: NewResourceAccessor(appointmentRepo),
		leads:        NewResourceAccessor(leadRepo),
	}
}

func (u *AppointmentUseCase) List(ctx context.Context, clientID, status string, limit, offset int) (Page[*entities.Appointment], error) {
	return u.appointments.List(ctx, clientID, status, limit, offset)
}

func (u *AppointmentUseCase) Get(ctx context.Context, clientID, id string) (*entities.Appointment, error) {
	return u.appointments.Get(ctx, clientID, id)
}

func (u *AppointmentUseCase) Create(ctx context.Context, clientID string, in CreateAppointmentInput) (*entities.Appointment, error) {
	if strings.TrimSpace(in.LeadID) == "" || strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return nil, ErrMissingFields
	}

	// Ownership chain: the referenced lead must exist and belong to the
	// same client. ErrNotFound/ErrForbidden propagate as-is.
	if _, err := u.leads.Get(ctx, clientID, in.LeadID); err != nil {
		return nil, err
	}

	a := &entities.Appointment{
		LeadID: in.LeadID,
		Date:   in.Date,
		Time:   in.Time,
		Notes:  in.Notes,
	}
	return u.appointments.Create(ctx, clientID, a)
}

func (u *AppointmentUseCase) UpdateOutcome(ctx context.Context, clientID, id, outcome string, notes *string) error {
	if !entities.ValidOutcomeUpdate(outcome) {
		return ErrInvalidStatus
	}

	_, err := u.appointments.Update(ctx, clientID, id, func(a *entities.Appointment) error {
		a.Outcome = entities.AppointmentOutcome(outcome)
		if notes != nil {
			a.Notes = *notes
		}
		return nil
	})
	return err
}

func (u *AppointmentUseCase) Delete(ctx context.Context, clientID, id string) error {
	return u.appointments.Delete(ctx, clientID, id)
}
