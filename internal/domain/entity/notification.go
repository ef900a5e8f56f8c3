package entity

// AlertKind names the trigger of a staff alert.
type AlertKind string

const (
	// AlertUrgentNew fires when an urgent complaint is registered.
	AlertUrgentNew AlertKind = "URGENT_NEW"
	// AlertEscalation fires when a complaint is escalated.
	AlertEscalation AlertKind = "ESCALATION"
)

// NoticeLevel is the severity of a user-facing notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a short message surfaced to the acting user.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// AlertEvent is the exported record of a dispatched staff alert.
type AlertEvent struct {
	Kind         AlertKind `json:"kind"`
	ComplaintID  string    `json:"complaintId"`
	CustomerName string    `json:"customerName"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Roles        []Role    `json:"roles"`
}
