package entity

import "time"

// ActivityType categorises audit trail entries.
type ActivityType string

const (
	ActivityLogin  ActivityType = "LOGIN"
	ActivityLogout ActivityType = "LOGOUT"
	ActivityAction ActivityType = "ACTION"
)

// ActivityLogEntry is an immutable audit record.
type ActivityLogEntry struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	UserName  string       `json:"userName"`
	Timestamp time.Time    `json:"timestamp"`
	Type      ActivityType `json:"type"`
	Details   string       `json:"details"`
	// Duration is the session length in seconds, set on LOGOUT only.
	Duration *int `json:"duration,omitempty"`
}
