package entities

import "time"

// LeadStatus is the sales temperature of a lead.
type LeadStatus string

const (
	LeadStatusHot  LeadStatus = "hot"
	LeadStatusWarm LeadStatus = "warm"
	LeadStatusCold LeadStatus = "cold"
	LeadStatusDead LeadStatus = "dead"
)

// Lead is a sales lead owned by a single client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): clientId
type Lead struct {
	ID       string     `json:"id"`
	ClientID string     `json:"clientId"`
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email"`
	Status   LeadStatus `json:"status"`
	Notes    string     `json:"notes"`
	// LastContacted is a caller-supplied ISO date string; empty until the
	// client records a contact.
	LastContacted string    `json:"last_contacted,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (l *Lead) GetID() string          { return l.ID }
func (l *Lead) SetID(id string)        { l.ID = id }
func (l *Lead) GetClientID() string    { return l.ClientID }
func (l *Lead) SetClientID(id string)  { l.ClientID = id }
func (l *Lead) GetStatus() string      { return string(l.Status) }
func (l *Lead) SetStatus(s string)     { l.Status = LeadStatus(s) }
func (l *Lead) DefaultStatus() string  { return string(LeadStatusWarm) }
func (l *Lead) SortKey() string        { return l.CreatedAt.UTC().Format(time.RFC3339Nano) }

func (l *Lead) ValidStatus(s string) bool {
	switch LeadStatus(s) {
	case LeadStatusHot, LeadStatusWarm, LeadStatusCold, LeadStatusDead:
		return true
	}
	return false
}

func (l *Lead) Stamp(now time.Time) {
	l.CreatedAt = now
	l.UpdatedAt = now
}

func (l *Lead) Touch(now time.Time) {
	l.UpdatedAt = now
}
