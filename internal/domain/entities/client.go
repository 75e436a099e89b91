package entities

import "time"

// Client is the authenticated principal derived from a verified bearer
// token. It lives for one request and is never persisted by this layer.
type Client struct {
	ID            string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// ClientProfile is the client account document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: uid (the authenticated client id)
//
// The document key is the principal id itself, so profile access needs no
// separate ownership check.
type ClientProfile struct {
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
