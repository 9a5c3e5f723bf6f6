package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yigit/placementportal/internal/app/models"
)

// Timestamp is a client-supplied start time. JSON strings are kept as sent; a JSON
// integer is Unix milliseconds and is kept as its decimal digits.
type Timestamp string

// UnmarshalJSON accepts a string or an integer; null leaves t unchanged
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Timestamp(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("start must be a date string or epoch milliseconds")
	}
	ms, err := n.Int64()
	if err != nil || ms < 0 {
		return fmt.Errorf("start must be a date string or epoch milliseconds")
	}
	*t = Timestamp(n.String())
	return nil
}

// CreateSessionRequest is the body of POST /sessions. Start accepts RFC 3339, datetime-local
// input or epoch milliseconds.
type CreateSessionRequest struct {
	Company string    `json:"company" example:"Acme Corp"`
	Start   Timestamp `json:"start" swaggertype:"string" example:"2025-03-14T10:00"`
}

// UpdateSessionRequest carries the fields to change; nil fields are left untouched
type UpdateSessionRequest struct {
	Company *string    `json:"company,omitempty" example:"Acme Corp"`
	Start   *Timestamp `json:"start,omitempty" swaggertype:"string" example:"2025-03-14T11:30"`
}

// SessionEvent is the calendar projection of a session
type SessionEvent struct {
	ID    string    `json:"id" example:"665f1c2e8b3e4a1d2c3b4a61"`
	Title string    `json:"title" example:"Acme Corp"`
	Start time.Time `json:"start" example:"2025-03-14T10:00:00Z"`
}

// SessionCreatedResponse is returned by POST /sessions
type SessionCreatedResponse struct {
	Message string          `json:"message" example:"Session added successfully"`
	Session *models.Session `json:"session"`
}

// NewSessionEvents maps sessions onto calendar events, keeping their order
func NewSessionEvents(sessions []models.Session) []SessionEvent {
	events := make([]SessionEvent, 0, len(sessions))
	for _, s := range sessions {
		events = append(events, SessionEvent{
			ID:    s.ID.Hex(),
			Title: s.Company,
			Start: s.Start,
		})
	}
	return events
}
