package response

import (
	"time"

	"client_portal/internal/domain/entities"
)

type ProposalResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	HasPDF      bool      `json:"has_pdf"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DownloadResponse carries a signed, time-limited link; the raw storage key
// never leaves the service.
type DownloadResponse struct {
	DownloadURL string `json:"download_url"`
	ExpiresIn   int    `json:"expires_in"`
}

func FromProposal(p *entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Title:       p.Title,
		Description: p.Description,
		Amount:      p.Amount,
		Status:      string(p.Status),
		HasPDF:      p.PDFKey != "",
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProposals(proposals []*entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, FromProposal(p))
	}
	return out
}

func FromDownloadLink(url string, expiresIn int) DownloadResponse {
	return DownloadResponse{DownloadURL: url, ExpiresIn: expiresIn}
}
