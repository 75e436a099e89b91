package request

type CreateProposalRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
