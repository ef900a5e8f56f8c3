// Package workflow implements the complaint lifecycle as pure reducers.
package workflow

import (
	"strings"
	"time"

	"crm/internal/domain/effect"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
)

// SystemUser is the log author of system generated entries.
const SystemUser = "System"

// Env carries the caller supplied context of one operation.
type Env struct {
	Actor entity.Actor
	Now   time.Time
	Texts *i18n.Texts
}

// Command requests a status change.
type Command struct {
	Target entity.ComplaintStatus
	Note   string
}

// Transition moves c to cmd.Target on behalf of env.Actor. Nothing is changed
// when an error is returned.
func Transition(c entity.Complaint, cmd Command, env Env) (entity.Complaint, []effect.Effect, error) {
	actor := env.Actor
	if actor.Role.ViewOnly() {
		return c, nil, domainerrors.ErrPermissionDenied.WithDetails("view-only role cannot change complaint status")
	}

	if !Owns(c, actor) {
		return c, nil, domainerrors.ErrPermissionDenied.WithDetails("complaint is assigned to another staff member")
	}

	capab, ok := capabilities[edge{c.Status, cmd.Target}]
	if !ok {
		return c, nil, domainerrors.ErrInvalidTransition.WithDetails(
			string(c.Status) + " -> " + string(cmd.Target))
	}
	if !capab.admits(actor.Role) {
		return c, nil, domainerrors.ErrPermissionDenied.WithDetails(
			"role " + actor.Role.Key() + " cannot move complaint to " + cmd.Target.Key())
	}

	note := strings.TrimSpace(cmd.Note)
	if capab.requiresNote && note == "" {
		return c, nil, domainerrors.ErrValidationFailed.WithDetails("a note is required for this transition")
	}

	prior := c.Status
	next := c
	next.Status = cmd.Target
	if prior == entity.ComplaintStatusOpen && cmd.Target == entity.ComplaintStatusInProgress && next.AssignedTo == "" {
		next.AssignedTo = actor.UserID
	}
	if cmd.Target == entity.ComplaintStatusResolved {
		closed := env.Now
		next.DateClosed = &closed
		next.ResolutionNotes = note
	}

	action := env.Texts.T(capab.text)
	if capab.requiresNote {
		action = env.Texts.T(capab.text, note)
	}
	next = next.WithLog(entity.ComplaintLogEntry{User: actor.UserName, Date: env.Now, Action: action})

	effects := []effect.Effect{
		effect.Audit{Details: env.Texts.T(i18n.AuditComplaintStatus, c.ComplaintID, env.Texts.Status(cmd.Target))},
		effect.Success(env.Texts.T(i18n.NoticeComplaintUpdated, env.Texts.Status(cmd.Target))),
	}
	if cmd.Target == entity.ComplaintStatusEscalated && prior != entity.ComplaintStatusEscalated {
		effects = append(effects, effect.Notify{Kind: entity.AlertEscalation, ComplaintID: c.ComplaintID})
	}

	return next, effects, nil
}

// Owns reports whether actor may act on c given its assignment. Open
// complaints are free to claim and managers may override the assignee of an
// escalated complaint.
func Owns(c entity.Complaint, actor entity.Actor) bool {
	if c.Status == entity.ComplaintStatusOpen || !c.IsAssignedToOther(actor.UserID) {
		return true
	}

	return c.Status == entity.ComplaintStatusEscalated && actor.Role.IsManager()
}

// AddNote appends a free-text note to the complaint log without touching its status.
// View-only roles may add notes.
func AddNote(c entity.Complaint, note string, env Env) (entity.Complaint, []effect.Effect, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return c, nil, domainerrors.ErrValidationFailed.WithDetails("note is required")
	}

	next := c.WithLog(entity.ComplaintLogEntry{User: env.Actor.UserName, Date: env.Now, Action: note})

	return next, []effect.Effect{
		effect.Audit{Details: env.Texts.T(i18n.AuditComplaintNote, c.ComplaintID)},
	}, nil
}
