// Package notify decides who is alerted about a complaint and what they are told.
package notify

import (
	"strings"

	"crm/internal/domain/entity"
	"crm/internal/domain/i18n"
)

var recipientRoles = map[entity.AlertKind]entity.Roles{
	entity.AlertUrgentNew:  {entity.RoleTeamLeader, entity.RoleAccountsManager, entity.RoleGeneralManager},
	entity.AlertEscalation: {entity.RoleAccountsManager, entity.RoleGeneralManager},
}

// RolesFor returns the roles alerted for kind.
func RolesFor(kind entity.AlertKind) entity.Roles {
	return recipientRoles[kind]
}

// Recipients returns the users alerted for kind. Users without an email are left out.
func Recipients(users []entity.User, kind entity.AlertKind) []entity.User {
	roles := recipientRoles[kind]

	var out []entity.User
	for _, u := range users {
		if u.Email != "" && roles.Contains(u.Role) {
			out = append(out, u)
		}
	}

	return out
}

// Message is a composed alert.
type Message struct {
	Subject string
	Body    string
}

// Compose renders the localised alert for complaint c.
func Compose(c entity.Complaint, kind entity.AlertKind, texts *i18n.Texts) Message {
	subject, body := i18n.AlertSubjectUrgentNew, i18n.AlertBodyUrgentNew
	if kind == entity.AlertEscalation {
		subject, body = i18n.AlertSubjectEscalation, i18n.AlertBodyEscalation
	}

	return Message{
		Subject: texts.T(subject, c.ComplaintID),
		Body:    texts.T(body, c.ComplaintID, c.CustomerName, c.Type, c.Description),
	}
}

// TemplateParams are the variables handed to the email template of one recipient.
func TemplateParams(to entity.User, msg Message, settings entity.SystemSettings) map[string]string {
	return map[string]string{
		"to_name":   to.Name,
		"to_email":  to.Email,
		"from_name": settings.CompanyName,
		"subject":   msg.Subject,
		"message":   msg.Body,
	}
}

// Names joins the recipient names for audit texts.
func Names(users []entity.User) string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}

	return strings.Join(names, "، ")
}
