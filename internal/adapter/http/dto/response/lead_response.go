package response

import (
	"time"

	"client_portal/internal/domain/entities"
)

type LeadResponse struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"clientId"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	LastContacted string    `json:"last_contacted,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromLead(l *entities.Lead) LeadResponse {
	return LeadResponse{
		ID:            l.ID,
		ClientID:      l.ClientID,
		Name:          l.Name,
		Phone:         l.Phone,
		Email:         l.Email,
		Status:        string(l.Status),
		Notes:         l.Notes,
		LastContacted: l.LastContacted,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func FromLeads(leads []*entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}
