package entities

import "time"

// ProposalStatus is the lifecycle of a proposal document.
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
	ProposalStatusRevised  ProposalStatus = "revised"
)

// Proposal is a priced offer owned by a single client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): clientId
//
// PDFKey is the blob-store object key of the rendered document; empty when
// no file has been attached. Download links are always issued as short-lived
// signed URLs, never as raw keys.
type Proposal struct {
	ID          string         `json:"id"`
	ClientID    string         `json:"clientId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Amount      float64        `json:"amount"`
	Status      ProposalStatus `json:"status"`
	PDFKey      string         `json:"pdf_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (p *Proposal) GetID() string         { return p.ID }
func (p *Proposal) SetID(id string)       { p.ID = id }
func (p *Proposal) GetClientID() string   { return p.ClientID }
func (p *Proposal) SetClientID(id string) { p.ClientID = id }
func (p *Proposal) GetStatus() string     { return string(p.Status) }
func (p *Proposal) SetStatus(s string)    { p.Status = ProposalStatus(s) }
func (p *Proposal) DefaultStatus() string { return string(ProposalStatusDraft) }
func (p *Proposal) SortKey() string       { return p.CreatedAt.UTC().Format(time.RFC3339Nano) }

func (p *Proposal) ValidStatus(s string) bool {
	switch ProposalStatus(s) {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusAccepted,
		ProposalStatusRejected, ProposalStatusRevised:
		return true
	}
	return false
}

func (p *Proposal) Stamp(now time.Time) {
	p.CreatedAt = now
	p.UpdatedAt = now
}

func (p *Proposal) Touch(now time.Time) {
	p.UpdatedAt = now
}
