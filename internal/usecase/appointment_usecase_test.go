package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"client_portal/internal/domain/entities"
)

func newAppointmentFixture(t *testing.T) (*AppointmentUseCase, *fakeRepo[*entities.Appointment], *fakeRepo[*entities.Lead]) {
	t.Helper()
	appointments := newFakeRepo[*entities.Appointment]()
	leads := newFakeRepo[*entities.Lead]()
	return NewAppointmentUseCase(appointments, leads), appointments, leads
}

func TestAppointmentUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc, _, _ := newAppointmentFixture(t)

		cases := []CreateAppointmentInput{
			{Date: "2026-09-01", Time: "10:00"},
			{LeadID: "lead-1", Time: "10:00"},
			{LeadID: "lead-1", Date: "2026-09-01"},
		}
		for _, in := range cases {
			if _, err := uc.Create(context.Background(), "client-1", in); !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields for %+v, got %v", in, err)
			}
		}
	})

	t.Run("unknown lead", func(t *testing.T) {
		uc, appointments, _ := newAppointmentFixture(t)

		_, err := uc.Create(context.Background(), "client-1", CreateAppointmentInput{LeadID: "missing", Date: "2026-09-01", Time: "10:00"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if len(appointments.items) != 0 {
			t.Fatalf("appointment persisted for unknown lead")
		}
	})

	t.Run("foreign lead", func(t *testing.T) {
		uc, appointments, leads := newAppointmentFixture(t)
		l := seedLead(t, leads, "client-2", entities.LeadStatusWarm, time.Now())

		_, err := uc.Create(context.Background(), "client-1", CreateAppointmentInput{LeadID: l.ID, Date: "2026-09-01", Time: "10:00"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if len(appointments.items) != 0 {
			t.Fatalf("appointment persisted against a foreign lead")
		}
	})

	t.Run("success defaults to scheduled", func(t *testing.T) {
		uc, _, leads := newAppointmentFixture(t)
		l := seedLead(t, leads, "client-1", entities.LeadStatusWarm, time.Now())

		a, err := uc.Create(context.Background(), "client-1", CreateAppointmentInput{LeadID: l.ID, Date: "2026-09-01", Time: "10:00", Notes: "first visit"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Outcome != entities.AppointmentScheduled {
			t.Fatalf("expected scheduled, got %s", a.Outcome)
		}
		if a.ClientID != "client-1" || a.LeadID != l.ID {
			t.Fatalf("unexpected appointment: %+v", a)
		}
	})
}

func TestAppointmentUseCase_UpdateOutcome(t *testing.T) {
	seed := func(t *testing.T, uc *AppointmentUseCase, leads *fakeRepo[*entities.Lead], clientID string) *entities.Appointment {
		t.Helper()
		l := seedLead(t, leads, clientID, entities.LeadStatusWarm, time.Now())
		a, err := uc.Create(context.Background(), clientID, CreateAppointmentInput{LeadID: l.ID, Date: "2026-09-01", Time: "10:00"})
		if err != nil {
			t.Fatalf("seed appointment: %v", err)
		}
		return a
	}

	t.Run("scheduled not settable", func(t *testing.T) {
		uc, appointments, leads := newAppointmentFixture(t)
		a := seed(t, uc, leads, "client-1")

		err := uc.UpdateOutcome(context.Background(), "client-1", a.ID, "scheduled", nil)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
		if appointments.items[a.ID].Outcome != entities.AppointmentScheduled {
			t.Fatalf("outcome changed")
		}
	})

	t.Run("invalid outcome checked before fetch", func(t *testing.T) {
		uc, _, _ := newAppointmentFixture(t)

		// A bogus outcome fails validation even when the appointment does
		// not exist.
		err := uc.UpdateOutcome(context.Background(), "client-1", "missing", "done", nil)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("valid outcome with notes", func(t *testing.T) {
		uc, appointments, leads := newAppointmentFixture(t)
		a := seed(t, uc, leads, "client-1")

		notes := "client rescheduled"
		if err := uc.UpdateOutcome(context.Background(), "client-1", a.ID, "follow-up", &notes); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := appointments.items[a.ID]
		if got.Outcome != entities.AppointmentFollowUp {
			t.Fatalf("expected follow-up, got %s", got.Outcome)
		}
		if got.Notes != notes {
			t.Fatalf("expected notes applied, got %q", got.Notes)
		}
	})

	t.Run("foreign appointment", func(t *testing.T) {
		uc, _, leads := newAppointmentFixture(t)
		a := seed(t, uc, leads, "client-2")

		err := uc.UpdateOutcome(context.Background(), "client-1", a.ID, "completed", nil)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}
