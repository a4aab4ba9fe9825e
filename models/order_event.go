package models

import "time"

// OrderEvent is published to Kafka after an order has been materialized from
// a completed checkout session. Consumers (notifications, analytics) are
// outside this service.
type OrderEvent struct {
	Type               string    `json:"type"` // e.g. "order.created"
	OrderID            string    `json:"order_id"`
	CustomerExternalID string    `json:"customer_external_id"`
	TotalAmount        float64   `json:"total_amount"`
	Timestamp          time.Time `json:"timestamp"` // UTC event time
}
