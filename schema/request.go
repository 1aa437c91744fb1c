package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	REQUEST_PENDING   = "PENDING"
	REQUEST_ACCEPTED  = "ACCEPTED"
	REQUEST_COMPLETED = "COMPLETED"
	REQUEST_CANCELLED = "CANCELLED"
)

// ServiceRequest is a single service engagement between one client and at
// most one provider. Status follows PENDING → ACCEPTED → COMPLETED, with
// cancellation allowed from PENDING and ACCEPTED. COMPLETED and CANCELLED
// are terminal; the record is never deleted.
type ServiceRequest struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ClientID    string      `json:"client_id"`
	ProviderID  string      `json:"provider_id,omitempty"`
	ServiceType ServiceType `json:"service_type"`
	Status      string      `json:"status" sql:"default:'PENDING'"`
	Location    Location    `json:"location" gorm:"type:jsonb"`
	CreatedAt   time.Time   `json:"created_at"`
	AcceptedAt  *time.Time  `json:"accepted_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// Terminal reports whether a status permits no further transitions.
func TerminalStatus(status string) bool {
	return status == REQUEST_COMPLETED || status == REQUEST_CANCELLED
}

// CanTransition reports whether a status transition is a legal move of the
// request lifecycle.
func CanTransition(from, to string) bool {
	switch to {
	case REQUEST_ACCEPTED:
		return from == REQUEST_PENDING
	case REQUEST_COMPLETED:
		return from == REQUEST_ACCEPTED
	case REQUEST_CANCELLED:
		return from == REQUEST_PENDING || from == REQUEST_ACCEPTED
	}
	return false
}
