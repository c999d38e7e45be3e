package events

import "time"

const CompanyLifecycleTopic = "bms.company.lifecycle.v1"

type CompanyLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	CompanyID  string    `json:"company_id"`
	OwnerID    string    `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	CompanyCreated = "company.created"
	CompanyDeleted = "company.deleted"
)
