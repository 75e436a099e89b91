package entities

import "time"

// AppointmentOutcome tracks what happened (or will happen) at a meeting.
// "scheduled" is the create-time default; the outcome endpoint only accepts
// the four terminal values.
type AppointmentOutcome string

const (
	AppointmentScheduled AppointmentOutcome = "scheduled"
	AppointmentCompleted AppointmentOutcome = "completed"
	AppointmentNoShow    AppointmentOutcome = "no-show"
	AppointmentFollowUp  AppointmentOutcome = "follow-up"
	AppointmentCancelled AppointmentOutcome = "cancelled"
)

// Appointment is a meeting booked against one of the client's own leads.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): clientId
//
// Date and Time are kept as the caller-supplied strings ("2006-01-02",
// "15:04"); listing orders by Date descending.
type Appointment struct {
	ID        string             `json:"id"`
	ClientID  string             `json:"clientId"`
	LeadID    string             `json:"leadId"`
	Date      string             `json:"date"`
	Time      string             `json:"time"`
	Outcome   AppointmentOutcome `json:"outcome"`
	Notes     string             `json:"notes"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (a *Appointment) GetID() string         { return a.ID }
func (a *Appointment) SetID(id string)       { a.ID = id }
func (a *Appointment) GetClientID() string   { return a.ClientID }
func (a *Appointment) SetClientID(id string) { a.ClientID = id }
func (a *Appointment) GetStatus() string     { return string(a.Outcome) }
func (a *Appointment) SetStatus(s string)    { a.Outcome = AppointmentOutcome(s) }
func (a *Appointment) DefaultStatus() string { return string(AppointmentScheduled) }
func (a *Appointment) SortKey() string       { return a.Date }

func (a *Appointment) ValidStatus(s string) bool {
	switch AppointmentOutcome(s) {
	case AppointmentScheduled, AppointmentCompleted, AppointmentNoShow,
		AppointmentFollowUp, AppointmentCancelled:
		return true
	}
	return false
}

// ValidOutcomeUpdate reports whether s may be set through the outcome
// endpoint. "scheduled" is create-only.
func ValidOutcomeUpdate(s string) bool {
	switch AppointmentOutcome(s) {
	case AppointmentCompleted, AppointmentNoShow, AppointmentFollowUp, AppointmentCancelled:
		return true
	}
	return false
}

func (a *Appointment) Stamp(now time.Time) {
	a.CreatedAt = now
	a.UpdatedAt = now
}

func (a *Appointment) Touch(now time.Time) {
	a.UpdatedAt = now
}
