package usecase

import (
	"context"
	"errors"
	"testing"

	"client_portal/internal/domain/entities"
)

func createTicket(t *testing.T, uc *SupportTicketUseCase, clientID string) *entities.SupportTicket {
	t.Helper()
	ticket, err := uc.Create(context.Background(), clientID, CreateTicketInput{
		Subject: "Billing question",
		Message: "I was charged twice this month",
	})
	if err != nil {
		t.Fatalf("create ticket: %v", err)
	}
	return ticket
}

func TestSupportTicketUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewSupportTicketUseCase(newFakeRepo[*entities.SupportTicket]())

		cases := []CreateTicketInput{
			{Message: "m"},
			{Subject: "s"},
			{Subject: "  ", Message: "m"},
		}
		for _, in := range cases {
			if _, err := uc.Create(context.Background(), "client-1", in); !errors.Is(err, ErrMissingFields) {
				t.Fatalf("expected ErrMissingFields for %+v, got %v", in, err)
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		uc := NewSupportTicketUseCase(newFakeRepo[*entities.SupportTicket]())
		ticket := createTicket(t, uc, "client-1")

		if ticket.Status != entities.TicketStatusOpen {
			t.Fatalf("expected open, got %s", ticket.Status)
		}
		if ticket.Priority != entities.TicketPriorityMedium {
			t.Fatalf("expected medium, got %s", ticket.Priority)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc := NewSupportTicketUseCase(newFakeRepo[*entities.SupportTicket]())

		_, err := uc.Create(context.Background(), "client-1", CreateTicketInput{Subject: "s", Message: "m", Priority: "critical"})
		if !errors.Is(err, ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("explicit priority kept", func(t *testing.T) {
		uc := NewSupportTicketUseCase(newFakeRepo[*entities.SupportTicket]())

		ticket, err := uc.Create(context.Background(), "client-1", CreateTicketInput{Subject: "s", Message: "m", Priority: "urgent"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ticket.Priority != entities.TicketPriorityUrgent {
			t.Fatalf("expected urgent, got %s", ticket.Priority)
		}
	})
}

func TestSupportTicketUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		repo := newFakeRepo[*entities.SupportTicket]()
		uc := NewSupportTicketUseCase(repo)
		ticket := createTicket(t, uc, "client-1")

		err := uc.UpdateStatus(context.Background(), "client-1", ticket.ID, "done")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
		if repo.items[ticket.ID].Status != entities.TicketStatusOpen {
			t.Fatalf("status changed")
		}
	})

	t.Run("valid transition", func(t *testing.T) {
		repo := newFakeRepo[*entities.SupportTicket]()
		uc := NewSupportTicketUseCase(repo)
		ticket := createTicket(t, uc, "client-1")

		if err := uc.UpdateStatus(context.Background(), "client-1", ticket.ID, "resolved"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.items[ticket.ID].Status != entities.TicketStatusResolved {
			t.Fatalf("expected resolved, got %s", repo.items[ticket.ID].Status)
		}
	})

	t.Run("foreign ticket", func(t *testing.T) {
		repo := newFakeRepo[*entities.SupportTicket]()
		uc := NewSupportTicketUseCase(repo)
		ticket := createTicket(t, uc, "client-2")

		err := uc.UpdateStatus(context.Background(), "client-1", ticket.ID, "closed")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestSupportTicketUseCase_AddReply(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		repo := newFakeRepo[*entities.SupportTicket]()
		uc := NewSupportTicketUseCase(repo)
		ticket := createTicket(t, uc, "client-1")

		_, err := uc.AddReply(context.Background(), "client-1", ticket.ID, "   ")
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
		if len(repo.items[ticket.ID].Replies) != 0 {
			t.Fatalf("reply appended despite empty message")
		}
	})

	t.Run("append only", func(t *testing.T) {
		repo := newFakeRepo[*entities.SupportTicket]()
		uc := NewSupportTicketUseCase(repo)
		ticket := createTicket(t, uc, "client-1")

		first, err := uc.AddReply(context.Background(), "client-1", ticket.ID, "any update?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.AddReply(context.Background(), "client-1", ticket.ID, "still waiting")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		replies := repo.items[ticket.ID].Replies
		if len(replies) != 2 {
			t.Fatalf("expected 2 replies, got %d", len(replies))
		}
		if replies[0].ID != first.ID || replies[1].ID != second.ID {
			t.Fatalf("replies out of append order")
		}
		if first.Author != "client" || second.Author != "client" {
			t.Fatalf("expected client authorship, got %q/%q", first.Author, second.Author)
		}
		if first.ID == second.ID {
			t.Fatalf("reply ids must be unique")
		}
	})

	t.Run("foreign ticket", func(t *testing.T) {
		repo := newFakeRepo[*entities.SupportTicket]()
		uc := NewSupportTicketUseCase(repo)
		ticket := createTicket(t, uc, "client-2")

		_, err := uc.AddReply(context.Background(), "client-1", ticket.ID, "hello")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestSupportTicketUseCase_Delete(t *testing.T) {
	repo := newFakeRepo[*entities.SupportTicket]()
	uc := NewSupportTicketUseCase(repo)
	ticket := createTicket(t, uc, "client-1")

	if err := uc.Delete(context.Background(), "client-1", ticket.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.items[ticket.ID]; ok {
		t.Fatalf("ticket still present")
	}
}
