package response

import (
	"time"

	"client_portal/internal/domain/entities"
)

type ReplyResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type SupportTicketResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"clientId"`
	Subject     string          `json:"subject"`
	Message     string          `json:"message"`
	Priority    string          `json:"priority"`
	Status      string          `json:"status"`
	Replies     []ReplyResponse `json:"replies"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	LastUpdated time.Time       `json:"last_updated"`
}

func FromReply(r entities.Reply) ReplyResponse {
	return ReplyResponse{
		ID:        r.ID,
		Message:   r.Message,
		Author:    r.Author,
		CreatedAt: r.CreatedAt,
	}
}

func FromSupportTicket(t *entities.SupportTicket) SupportTicketResponse {
	replies := make([]ReplyResponse, 0, len(t.Replies))
	for _, r := range t.Replies {
		replies = append(replies, FromReply(r))
	}
	return SupportTicketResponse{
		ID:          t.ID,
		ClientID:    t.ClientID,
		Subject:     t.Subject,
		Message:     t.Message,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Replies:     replies,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		LastUpdated: t.LastUpdated,
	}
}

func FromSupportTickets(tickets []*entities.SupportTicket) []SupportTicketResponse {
	out := make([]SupportTicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, FromSupportTicket(t))
	}
	return out
}
