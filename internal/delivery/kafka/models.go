package kafka

import "time"

type OrderCreatedMessage struct {
	SchemaVersion int       `json:"schema_version"`
	OrderIDs      []string  `json:"order_ids"`
	UserID        string    `json:"user_id"`
	GrandTotal    float64   `json:"grand_total"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}
