package model

import "time"

// Customer is a contact record owning zero or more Measurements.
// Measurements are always held sorted by date descending.
type Customer struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
	NIC         string    `db:"nic" json:"nic"`
	JobNumber   string    `db:"job_number" json:"job_number"`
	RequestDate time.Time `db:"request_date" json:"request_date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	Measurements []Measurement `json:"measurements"`
}
