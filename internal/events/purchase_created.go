package events

import "time"

const PurchaseCreatedTopic = "bms.purchase.lifecycle.v1"

type PurchaseCreatedEvent struct {
	EventType   string    `json:"event_type"`
	PurchaseID  string    `json:"purchase_id"`
	CompanyID   string    `json:"company_id"`
	ClientID    string    `json:"client_id"`
	TotalAmount float64   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}
