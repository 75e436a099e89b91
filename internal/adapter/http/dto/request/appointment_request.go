package request

type CreateAppointmentRequest struct {
	LeadID string `json:"leadId"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Notes  string `json:"notes"`
}

type UpdateOutcomeRequest struct {
	Outcome string  `json:"outcome"`
	Notes   *string `json:"notes"`
}
