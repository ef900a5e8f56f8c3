package entity

import (
	"slices"
	"time"
)

// ComplaintStatus is the lifecycle state of a complaint.
type ComplaintStatus string

const (
	ComplaintStatusOpen            ComplaintStatus = "مفتوحة"
	ComplaintStatusInProgress      ComplaintStatus = "قيد المراجعة"
	ComplaintStatusPendingCustomer ComplaintStatus = "في انتظار رد العميل"
	ComplaintStatusResolved        ComplaintStatus = "تم الحل"
	ComplaintStatusEscalated       ComplaintStatus = "مُصعَّدة"
)

var complaintStatusKeys = map[ComplaintStatus]string{
	ComplaintStatusOpen:            "open",
	ComplaintStatusInProgress:      "in_progress",
	ComplaintStatusPendingCustomer: "pending_customer",
	ComplaintStatusResolved:        "resolved",
	ComplaintStatusEscalated:       "escalated",
}

// IsValid checks if the status is known.
func (s ComplaintStatus) IsValid() bool {
	_, ok := complaintStatusKeys[s]

	return ok
}

// Key returns the ASCII identifier of the status.
func (s ComplaintStatus) Key() string {
	return complaintStatusKeys[s]
}

// ComplaintStatusFromKey resolves an ASCII key or wire value.
func ComplaintStatusFromKey(s string) (ComplaintStatus, bool) {
	if ComplaintStatus(s).IsValid() {
		return ComplaintStatus(s), true
	}
	for status, key := range complaintStatusKeys {
		if key == s {
			return status, true
		}
	}

	return "", false
}

// ComplaintPriority ranks complaint urgency.
type ComplaintPriority string

const (
	PriorityNormal ComplaintPriority = "عادية"
	PriorityMedium ComplaintPriority = "متوسطة"
	PriorityUrgent ComplaintPriority = "عاجلة"
)

// IsValid checks if the priority is known.
func (p ComplaintPriority) IsValid() bool {
	switch p {
	case PriorityNormal, PriorityMedium, PriorityUrgent:
		return true
	default:
		return false
	}
}

// ComplaintChannel is where the complaint came in.
type ComplaintChannel string

const (
	ChannelFacebook ComplaintChannel = "فيسبوك"
	ChannelWhatsApp ComplaintChannel = "واتساب"
	ChannelPhone    ComplaintChannel = "هاتف"
	ChannelEmail    ComplaintChannel = "بريد إلكتروني"
	ChannelWebsite  ComplaintChannel = "الموقع الإلكتروني"
)

// IsValid checks if the channel is known.
func (c ComplaintChannel) IsValid() bool {
	switch c {
	case ChannelFacebook, ChannelWhatsApp, ChannelPhone, ChannelEmail, ChannelWebsite:
		return true
	default:
		return false
	}
}

// ComplaintLogEntry is one line of the append-only complaint history.
type ComplaintLogEntry struct {
	User   string    `json:"user"`
	Date   time.Time `json:"date"`
	Action string    `json:"action"`
}

// Complaint is a customer complaint moving through the resolution workflow.
type Complaint struct {
	ComplaintID     string              `json:"complaintId"`
	CustomerID      string              `json:"customerId"`
	CustomerName    string              `json:"customerName"`
	DateOpened      time.Time           `json:"dateOpened"`
	Channel         ComplaintChannel    `json:"channel"`
	Type            string              `json:"type"`
	Priority        ComplaintPriority   `json:"priority"`
	Status          ComplaintStatus     `json:"status"`
	Description     string              `json:"description"`
	AssignedTo      string              `json:"assignedTo,omitempty"`
	ResolutionNotes string              `json:"resolutionNotes"`
	DateClosed      *time.Time          `json:"dateClosed"`
	Log             []ComplaintLogEntry `json:"log"`
	ProductID       string              `json:"productId,omitempty"`
	ProductColor    string              `json:"productColor,omitempty"`
	ProductSize     string              `json:"productSize,omitempty"`
	Attachments     []string            `json:"attachments,omitempty"`
	LastModified    time.Time           `json:"lastModified"`
}

// WithLog returns a copy of the complaint with entry appended to its log.
func (c Complaint) WithLog(entry ComplaintLogEntry) Complaint {
	c.Log = append(slices.Clip(c.Log), entry)
	c.LastModified = entry.Date

	return c
}

// IsAssignedToOther reports whether someone other than userID owns the complaint.
func (c Complaint) IsAssignedToOther(userID string) bool {
	return c.AssignedTo != "" && c.AssignedTo != userID
}
