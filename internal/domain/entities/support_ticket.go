package entities

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// ValidTicketPriority reports whether p is an accepted priority value.
func ValidTicketPriority(p string) bool {
	switch TicketPriority(p) {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// Reply is a single message appended to a ticket's thread. Replies have no
// lifecycle of their own: append-only, never removed, ordered by append.
type Reply struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// SupportTicket is a help request owned by a single client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): clientId
//
// Replies are embedded in the ticket item; the whole thread is small and is
// always read and written together with its ticket.
type SupportTicket struct {
	ID          string         `json:"id"`
	ClientID    string         `json:"clientId"`
	Subject     string         `json:"subject"`
	Message     string         `json:"message"`
	Priority    TicketPriority `json:"priority"`
	Status      TicketStatus   `json:"status"`
	Replies     []Reply        `json:"replies,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	LastUpdated time.Time      `json:"last_updated"`
}

func (t *SupportTicket) GetID() string         { return t.ID }
func (t *SupportTicket) SetID(id string)       { t.ID = id }
func (t *SupportTicket) GetClientID() string   { return t.ClientID }
func (t *SupportTicket) SetClientID(id string) { t.ClientID = id }
func (t *SupportTicket) GetStatus() string     { return string(t.Status) }
func (t *SupportTicket) SetStatus(s string)    { t.Status = TicketStatus(s) }
func (t *SupportTicket) DefaultStatus() string { return string(TicketStatusOpen) }
func (t *SupportTicket) SortKey() string       { return t.CreatedAt.UTC().Format(time.RFC3339Nano) }

func (t *SupportTicket) ValidStatus(s string) bool {
	switch TicketStatus(s) {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

func (t *SupportTicket) Stamp(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
	t.LastUpdated = now
}

func (t *SupportTicket) Touch(now time.Time) {
	t.UpdatedAt = now
	t.LastUpdated = now
}
