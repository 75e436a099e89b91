package response

// Pagination mirrors the page window the caller asked for. Total is the
// number of items in this page, not the full matching count.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// Envelope is the shape of every successful response.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

func Created(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func Paged(data any, limit, offset, total int) Envelope {
	return Envelope{
		Success:    true,
		Data:       data,
		Pagination: &Pagination{Limit: limit, Offset: offset, Total: total},
	}
}
