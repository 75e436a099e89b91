package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"client_portal/internal/domain/entities"
	"client_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrEmptyMessage    = errors.New("reply message is required")
)

// replyAuthorClient marks replies added through the portal, as opposed to
// staff replies written by the back office.
const replyAuthorClient = "client"

type CreateTicketInput struct {
	Subject  string
	Message  string
	Priority string
}

type ISupportTicketUseCase interface {
	List(ctx context.Context, clientID, status string, limit, offset int) (Page[*entities.SupportTicket], error)
	Get(ctx context.Context, clientID, id string) (*entities.SupportTicket, error)
	Create(ctx context.Context, clientID string, in CreateTicketInput) (*entities.SupportTicket, error)
	UpdateStatus(ctx context.Context, clientID, id, status string) error
	AddReply(ctx context.Context, clientID, id, message string) (entities.Reply, error)
	Delete(ctx context.Context, clientID, id string) error
}

type SupportTicketUseCase struct {
	tickets *ResourceAccessor[*entities.SupportTicket]
}

var _ ISupportTicketUseCase = (*SupportTicketUseCase)(nil)

func NewSupportTicketUseCase(repo interfaces.ResourceRepository[*entities.SupportTicket]) *SupportTicketUseCase {
	return &SupportTicketUseCase{tickets: NewResourceAccessor(repo)}
}

func (u *SupportTicketUseCase) List(ctx context.Context, clientID, status string, limit, offset int) (Page[*entities.SupportTicket], error) {
	return u.tickets.List(ctx, clientID, status, limit, offset)
}

func (u *SupportTicketUseCase) Get(ctx context.Context, clientID, id string) (*entities.SupportTicket, error) {
	return u.tickets.Get(ctx, clientID, id)
}

func (u *SupportTicketUseCase) Create(ctx context.Context, clientID string, in CreateTicketInput) (*entities.SupportTicket, error) {
	if strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.Message) == "" {
		return nil, ErrMissingFields
	}

	priority := in.Priority
	if priority == "" {
		priority = string(entities.TicketPriorityMedium)
	}
	if !entities.ValidTicketPriority(priority) {
		return nil, ErrInvalidPriority
	}

	t := &entities.SupportTicket{
		Subject:  in.Subject,
		Message:  in.Message,
		Priority: entities.TicketPriority(priority),
	}
	return u.tickets.Create(ctx, clientID, t)
}

func (u *SupportTicketUseCase) UpdateStatus(ctx context.Context, clientID, id, status string) error {
	if !(&entities.SupportTicket{}).ValidStatus(status) {
		return ErrInvalidStatus
	}

	_, err := u.tickets.Update(ctx, clientID, id, func(t *entities.SupportTicket) error {
		t.Status = entities.TicketStatus(status)
		return nil
	})
	return err
}

// AddReply appends a client-authored reply to the ticket's thread. Replies
// are append-only; nothing in the portal removes or edits them.
func (u *SupportTicketUseCase) AddReply(ctx context.Context, clientID, id, message string) (entities.Reply, error) {
	if strings.TrimSpace(message) == "" {
		return entities.Reply{}, ErrEmptyMessage
	}

	reply := entities.Reply{
		ID:        uuid.NewString(),
		Message:   message,
		Author:    replyAuthorClient,
		CreatedAt: time.Now().UTC(),
	}

	_, err := u.tickets.Update(ctx, clientID, id, func(t *entities.SupportTicket) error {
		t.Replies = append(t.Replies, reply)
		return nil
	})
	if err != nil {
		return entities.Reply{}, err
	}
	return reply, nil
}

func (u *SupportTicketUseCase) Delete(ctx context.Context, clientID, id string) error {
	return u.tickets.Delete(ctx, clientID, id)
}
