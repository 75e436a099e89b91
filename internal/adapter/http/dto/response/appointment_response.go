package response

import (
	"time"

	"client_portal/internal/domain/entities"
)

type AppointmentResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	LeadID    string    `json:"leadId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Outcome   string    `json:"outcome"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromAppointment(a *entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:        a.ID,
		ClientID:  a.ClientID,
		LeadID:    a.LeadID,
		Date:      a.Date,
		Time:      a.Time,
		Outcome:   string(a.Outcome),
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromAppointments(appointments []*entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, FromAppointment(a))
	}
	return out
}
