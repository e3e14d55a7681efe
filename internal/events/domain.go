// Package events manages the event lifecycle. Creation is gated on the OWNER
// role; ownership and initial status are stamped by the server, never taken
// from the client.
package events

import "time"

// Status is the event lifecycle state.
type Status string

const (
	StatusOngoing Status = "ONGOING"
	StatusEnded   Status = "ENDED"
)

// Event represents a persisted event.
type Event struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Source      string     `json:"source"`
	Destination string     `json:"destination"`
	OwnerEmail  string     `json:"ownerEmail"`
	Purpose     string     `json:"purpose"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Draft carries the client-supplied fields for a new event. Owner and status
// are deliberately absent.
type Draft struct {
	Name        string
	Description string
	Source      string
	Destination string
	Purpose     string
	StartDate   *time.Time
	EndDate     *time.Time
}
