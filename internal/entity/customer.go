package entity

import "time"

// Customer is a client of the repair shop.
//
// ID is assigned by the database and stays zero until the customer is
// persisted. Email and Address are optional; a nil pointer maps to SQL NULL.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
