package request

type CreateTicketRequest struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

type AddReplyRequest struct {
	Message string `json:"message"`
}
