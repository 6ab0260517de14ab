package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record types for the dashboard tables. These mirror the hosted schema;
// rows come back untyped and are decoded on demand with Row.Decode.

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectOnHold     ProjectStatus = "on_hold"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// Priority represents the urgency of a request or ticket
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Client is an agency client account
type Client struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	LogoURL      *string   `json:"logo_url"`
	Domain       *string   `json:"domain"`
	ContactEmail *string   `json:"contact_email"`
	ContactPhone *string   `json:"contact_phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Project is a client project tracked on the dashboard
type Project struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	ClientID    uuid.UUID     `json:"client_id"`
	Status      ProjectStatus `json:"status"`
	StartDate   *string       `json:"start_date"`
	EndDate     *string       `json:"end_date"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// FeatureRequest is a client-submitted feature request
type FeatureRequest struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ClientID    uuid.UUID  `json:"client_id"`
	ProjectID   *uuid.UUID `json:"project_id"`
	Status      string     `json:"status"`
	Priority    Priority   `json:"priority"`
	SubmittedBy *uuid.UUID `json:"submitted_by"`
	SubmittedAt time.Time  `json:"submitted_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SupportTicket is a client support ticket
type SupportTicket struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ClientID    uuid.UUID  `json:"client_id"`
	ProjectID   *uuid.UUID `json:"project_id"`
	Status      string     `json:"status"`
	Priority    Priority   `json:"priority"`
	SubmittedBy *uuid.UUID `json:"submitted_by"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	SubmittedAt time.Time  `json:"submitted_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ActivityLog is an audit trail entry written by other parts of the system
type ActivityLog struct {
	ID         uuid.UUID      `json:"id"`
	UserID     *uuid.UUID     `json:"user_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Details    map[string]any `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}

// DecodeRows decodes a result's rows into a typed slice.
func DecodeRows[T any](rows []Row) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		var rec T
		if err := row.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
