package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/hr-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated   EventType = "employee_created"
	EventEmployeeUpdated   EventType = "employee_updated"
	EventEmployeeDeleted   EventType = "employee_deleted"
	EventEmployeesImported EventType = "employees_imported"
	EventTaxonomyUpdated   EventType = "taxonomy_updated"
	EventPasswordChanged   EventType = "password_changed"
)

// Types lists every event type, for subscribers that want all of them.
func Types() []EventType {
	return []EventType{
		EventEmployeeCreated,
		EventEmployeeUpdated,
		EventEmployeeDeleted,
		EventEmployeesImported,
		EventTaxonomyUpdated,
		EventPasswordChanged,
	}
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EmployeeID string      `json:"employee_id,omitempty"`
	Actor      domain.Role `json:"actor,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload,omitempty"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, actor domain.Role, employeeID string, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EmployeeID: employeeID,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}
}

// EmployeeChangedPayload payload.
type EmployeeChangedPayload struct {
	FullName string `json:"full_name"`
	Team     string `json:"team,omitempty"`
	Status   string `json:"status,omitempty"`
}

// EmployeesImportedPayload payload.
type EmployeesImportedPayload struct {
	Added      int `json:"added"`
	Duplicates int `json:"duplicates"`
	Unnamed    int `json:"unnamed"`
	Total      int `json:"total"`
}

// TaxonomyUpdatedPayload payload.
type TaxonomyUpdatedPayload struct {
	Version    int    `json:"version"`
	SchoolName string `json:"school_name"`
}

// PasswordChangedPayload payload.
type PasswordChangedPayload struct {
	Role domain.Role `json:"role"`
}
