package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")
var ErrEmailTaken = errors.New("email already in use")
var ErrInvalidID = errors.New("id must be a positive integer")
var ErrRateLimited = errors.New("too many requests")

// Client is a contact record. Identifiers are positive sequential integers
// assigned by the store; email is not unique across clients.
type Client struct {
	ID        int64     `json:"id"         bson:"_id"`
	FirstName string    `json:"first_name" bson:"first_name"`
	LastName  string    `json:"last_name"  bson:"last_name"`
	Email     string    `json:"email"      bson:"email"`
	Mobile    string    `json:"mobile"     bson:"mobile"`
	Birthday  time.Time `json:"birthday"   bson:"birthday"`
	AddInfo   string    `json:"add_info"   bson:"add_info"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
