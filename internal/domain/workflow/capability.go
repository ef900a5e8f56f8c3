package workflow

import (
	"crm/internal/domain/entity"
	"crm/internal/domain/i18n"
)

type edge struct {
	from entity.ComplaintStatus
	to   entity.ComplaintStatus
}

// capability describes one legal transition. A nil roles list admits every
// role that may act on complaints.
type capability struct {
	roles        entity.Roles
	requiresNote bool
	text         i18n.Key
}

var capabilities = map[edge]capability{
	{entity.ComplaintStatusOpen, entity.ComplaintStatusInProgress}: {
		text: i18n.ComplaintStarted,
	},
	{entity.ComplaintStatusInProgress, entity.ComplaintStatusPendingCustomer}: {
		requiresNote: true,
		text:         i18n.ComplaintProposed,
	},
	{entity.ComplaintStatusInProgress, entity.ComplaintStatusEscalated}: {
		roles: entity.Roles{entity.RoleTeamLeader, entity.RoleGeneralManager},
		text:  i18n.ComplaintEscalated,
	},
	{entity.ComplaintStatusPendingCustomer, entity.ComplaintStatusResolved}: {
		requiresNote: true,
		text:         i18n.ComplaintAccepted,
	},
	{entity.ComplaintStatusPendingCustomer, entity.ComplaintStatusInProgress}: {
		text: i18n.ComplaintRejected,
	},
	{entity.ComplaintStatusEscalated, entity.ComplaintStatusResolved}: {
		roles:        entity.Roles{entity.RoleGeneralManager, entity.RoleAccountsManager},
		requiresNote: true,
		text:         i18n.ComplaintAdminResolved,
	},
}

func (c capability) admits(role entity.Role) bool {
	if role.ViewOnly() {
		return false
	}

	return c.roles == nil || c.roles.Contains(role)
}

// Option is a transition the actor may request from the current status.
type Option struct {
	Target       entity.ComplaintStatus `json:"target"`
	RequiresNote bool                   `json:"requiresNote"`
}

// AllowedTargets lists the transitions role may take from status, ignoring assignment.
func AllowedTargets(role entity.Role, status entity.ComplaintStatus) []Option {
	var out []Option
	for _, target := range statusOrder {
		capab, ok := capabilities[edge{status, target}]
		if ok && capab.admits(role) {
			out = append(out, Option{Target: target, RequiresNote: capab.requiresNote})
		}
	}

	return out
}

var statusOrder = []entity.ComplaintStatus{
	entity.ComplaintStatusOpen,
	entity.ComplaintStatusInProgress,
	entity.ComplaintStatusPendingCustomer,
	entity.ComplaintStatusResolved,
	entity.ComplaintStatusEscalated,
}
