package entities

import "time"

// Resource is the contract shared by every client-owned record kind
// (Lead, Appointment, Proposal, SupportTicket).
//
// Ownership model:
//   - ClientID is stamped once, at creation, from the authenticated client.
//   - Every read/update/delete re-checks ClientID against the caller.
//
// The accessor in internal/usecase is generic over this interface so the
// ownership gate exists exactly once instead of once per variant.
type Resource interface {
	GetID() string
	SetID(id string)
	GetClientID() string
	SetClientID(id string)
	GetStatus() string
	SetStatus(status string)

	// ValidStatus reports whether status belongs to the variant's enum.
	ValidStatus(status string) bool
	DefaultStatus() string

	// SortKey is the value list results are ordered by, descending.
	// Lexicographic order on the key must match chronological order.
	SortKey() string

	// Stamp initializes both timestamps at creation.
	Stamp(now time.Time)
	// Touch refreshes the mutation timestamp.
	Touch(now time.Time)
}
