package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// clientRequest is the full mutable field set of a client record. Create and
// update share it: updates replace the record wholesale.
type clientRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Mobile    string `json:"mobile"     validate:"required"`
	Birthday  string `json:"birthday"   validate:"required,datetime=2006-01-02"`
	AddInfo   string `json:"add_info"`
}

// clientResponse is the transport view of a client record, intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type clientResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Birthday  string    `json:"birthday"`
	AddInfo   string    `json:"add_info"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
