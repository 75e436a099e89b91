package request

type CreateLeadRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// UpdateLeadRequest is a partial patch; pointer fields distinguish "not
// supplied" from "explicitly set".
type UpdateLeadRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
	LastContacted *string `json:"last_contacted"`
}
