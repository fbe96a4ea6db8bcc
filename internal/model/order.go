package model

import "time"

// Order is a derived view row pairing one customer with one of its
// measurements for the status-tracking list. It is never persisted and has
// no identity beyond the measurement it mirrors.
type Order struct {
	CustomerID       string           `json:"customer_id"`
	CustomerName     string           `json:"customer_name"`
	CustomerEmail    string           `json:"customer_email"`
	NIC              string           `json:"nic"`
	JobNumber        string           `json:"job_number"`
	MeasurementID    string           `json:"measurement_id"`
	MeasurementDate  time.Time        `json:"measurement_date"`
	PaymentStatus    PaymentStatus    `json:"payment_status"`
	CompletionStatus CompletionStatus `json:"completion_status"`
}
