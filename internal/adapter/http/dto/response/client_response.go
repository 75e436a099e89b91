package response

import (
	"time"

	"client_portal/internal/domain/entities"
)

type ClientProfileResponse struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Phone     string    `json:"phone"`
	StartDate time.Time `json:"start_date"`
	Status    string    `json:"status"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromClientProfile(p *entities.ClientProfile) ClientProfileResponse {
	return ClientProfileResponse{
		UID:       p.UID,
		Name:      p.Name,
		Email:     p.Email,
		Company:   p.Company,
		Phone:     p.Phone,
		StartDate: p.StartDate,
		Status:    p.Status,
		Plan:      p.Plan,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
