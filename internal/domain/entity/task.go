package entity

import "time"

// FollowUpStatus is the state of a follow-up task.
type FollowUpStatus string

const (
	FollowUpPending FollowUpStatus = "معلقة"
	FollowUpDone    FollowUpStatus = "تمت"
)

// FollowUpTask asks staff to contact a customer about an anomaly.
type FollowUpTask struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customerId"`
	CustomerName    string         `json:"customerName"`
	DateCreated     time.Time      `json:"dateCreated"`
	Reason          string         `json:"reason"`
	Details         string         `json:"details"`
	Status          FollowUpStatus `json:"status"`
	AssignedTo      string         `json:"assignedTo,omitempty"`
	ResolutionNotes string         `json:"resolutionNotes,omitempty"`
	LastModified    time.Time      `json:"lastModified"`
}

// DailyFeedbackStatus is the state of a daily feedback call.
type DailyFeedbackStatus string

const (
	DailyFeedbackPending   DailyFeedbackStatus = "pending"
	DailyFeedbackCompleted DailyFeedbackStatus = "completed"
)

// DailyFeedbackTask is one pending feedback call for a (customer, invoice) pair.
type DailyFeedbackTask struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customerId"`
	CustomerName string              `json:"customerName"`
	InvoiceID    string              `json:"invoiceId"`
	InvoiceDate  time.Time           `json:"invoiceDate"`
	Status       DailyFeedbackStatus `json:"status"`
	LastModified time.Time           `json:"lastModified"`
}

// FeedbackTaskID derives the task id for an invoice.
func FeedbackTaskID(invoiceID string) string {
	return "dft-" + invoiceID
}
