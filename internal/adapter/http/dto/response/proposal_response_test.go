package response

import (
	"testing"
	"time"

	"client_portal/internal/domain/entities"
)

func TestFromProposal(t *testing.T) {
	now := time.Now().UTC()
	p := &entities.Proposal{
		ID:          "prop-1",
		ClientID:    "client-1",
		Title:       "Website redesign",
		Description: "Full redesign",
		Amount:      4500,
		Status:      entities.ProposalStatusSent,
		PDFKey:      "proposals/prop-1.pdf",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromProposal(p)
	if res.ID != "prop-1" || res.ClientID != "client-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 4500 || res.Status != "sent" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	// The storage key must not leak; only the presence flag does.
	if !res.HasPDF {
		t.Fatalf("expected has_pdf true")
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}

	p.PDFKey = ""
	if FromProposal(p).HasPDF {
		t.Fatalf("expected has_pdf false without a key")
	}
}

func TestFromSupportTicket_Replies(t *testing.T) {
	now := time.Now().UTC()
	ticket := &entities.SupportTicket{
		ID:       "tic-1",
		ClientID: "client-1",
		Subject:  "s",
		Message:  "m",
		Priority: entities.TicketPriorityHigh,
		Status:   entities.TicketStatusInProgress,
		Replies: []entities.Reply{
			{ID: "rep-1", Message: "first", Author: "client", CreatedAt: now},
			{ID: "rep-2", Message: "second", Author: "client", CreatedAt: now.Add(time.Minute)},
		},
	}

	res := FromSupportTicket(ticket)
	if len(res.Replies) != 2 || res.Replies[0].ID != "rep-1" || res.Replies[1].ID != "rep-2" {
		t.Fatalf("unexpected replies: %+v", res.Replies)
	}
	if res.Priority != "high" || res.Status != "in_progress" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}

	// A ticket without replies serializes as an empty list, not null.
	ticket.Replies = nil
	if got := FromSupportTicket(ticket).Replies; got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil replies, got %#v", got)
	}
}
