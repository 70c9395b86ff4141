package client

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Business rule constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Domain errors
var (
	ErrAlreadyInactive = errors.New("client is already inactive")
	ErrAlreadyActive   = errors.New("client is already active")
)

// Client holds the coach-side record of a coached client.
// Sessions reference clients by ID only; this package owns no session state.
type Client struct {
	ID          string
	Name        string
	Email       string
	TrainerName string
	Status      string
}

// Validate checks if the Client has valid data.
// PRE: Client struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Email must contain '@', Name must not be empty
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("client name cannot be empty")
	}
	if len(c.Name) > MaxNameLength {
		return errors.New("client name cannot exceed 100 characters")
	}
	if !strings.Contains(c.Email, "@") {
		return errors.New("client email must be valid")
	}
	if c.Status != StatusActive && c.Status != StatusInactive {
		return errors.New("status must be 'active' or 'inactive'")
	}
	return nil
}

// IsActive returns true if the client is currently active.
// INVARIANT: Status field is not mutated
func (c *Client) IsActive() bool {
	return c.Status == StatusActive
}

// Deactivate sets the client status to inactive.
// PRE: Client is currently active
// POST: Status is set to inactive
func (c *Client) Deactivate() error {
	if c.Status == StatusInactive {
		return ErrAlreadyInactive
	}
	c.Status = StatusInactive
	return nil
}

// Reactivate sets the client status back to active.
// PRE: Client is currently inactive
// POST: Status is set to active
func (c *Client) Reactivate() error {
	if c.Status == StatusActive {
		return ErrAlreadyActive
	}
	c.Status = StatusActive
	return nil
}
