// Package effect describes the side effects a domain operation asks its caller to perform.
package effect

import "crm/internal/domain/entity"

// Effect is a side-effect request returned by a pure domain operation.
type Effect interface {
	isEffect()
}

// Notify asks the caller to alert staff about a complaint once the new state is committed.
type Notify struct {
	Kind        entity.AlertKind
	ComplaintID string
}

// Audit asks the caller to append an ACTION entry to the activity log.
type Audit struct {
	Details string
}

// Notice asks the caller to surface a message to the acting user.
type Notice struct {
	Level   entity.NoticeLevel
	Message string
}

func (Notify) isEffect() {}
func (Audit) isEffect()  {}
func (Notice) isEffect() {}

// Info is shorthand for an informational notice.
func Info(msg string) Notice {
	return Notice{Level: entity.NoticeInfo, Message: msg}
}

// Success is shorthand for a success notice.
func Success(msg string) Notice {
	return Notice{Level: entity.NoticeSuccess, Message: msg}
}

// Notifications returns the Notify effects in order.
func Notifications(effects []Effect) []Notify {
	var out []Notify
	for _, e := range effects {
		if n, ok := e.(Notify); ok {
			out = append(out, n)
		}
	}

	return out
}
