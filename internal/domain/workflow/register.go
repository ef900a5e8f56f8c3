package workflow

import (
	"strings"

	"crm/internal/domain/effect"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
)

// NewComplaint is the input of a complaint registration.
type NewComplaint struct {
	CustomerID   string
	Channel      entity.ComplaintChannel
	Type         string
	Priority     entity.ComplaintPriority
	Description  string
	ProductID    string
	ProductColor string
	ProductSize  string
	Attachments  []string
}

// Validate checks the required fields.
func (in NewComplaint) Validate() error {
	var missing []string
	if strings.TrimSpace(in.CustomerID) == "" {
		missing = append(missing, "customerId")
	}
	if strings.TrimSpace(in.Type) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}
	if in.Priority != "" && !in.Priority.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown priority " + string(in.Priority))
	}
	if in.Channel != "" && !in.Channel.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown channel " + string(in.Channel))
	}

	return nil
}

// Register builds a new Open complaint for customer. Urgent complaints ask for
// a URGENT_NEW alert once the complaint has been stored.
func Register(in NewComplaint, customer entity.Customer, id string, env Env) (entity.Complaint, []effect.Effect, error) {
	if err := in.Validate(); err != nil {
		return entity.Complaint{}, nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}
	channel := in.Channel
	if channel == "" {
		channel = entity.ChannelPhone
	}

	c := entity.Complaint{
		ComplaintID:  id,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		DateOpened:   env.Now,
		Channel:      channel,
		Type:         strings.TrimSpace(in.Type),
		Priority:     priority,
		Status:       entity.ComplaintStatusOpen,
		Description:  strings.TrimSpace(in.Description),
		ProductID:    in.ProductID,
		ProductColor: in.ProductColor,
		ProductSize:  in.ProductSize,
		Attachments:  in.Attachments,
		Log: []entity.ComplaintLogEntry{
			{User: SystemUser, Date: env.Now, Action: env.Texts.T(i18n.ComplaintRegistered)},
		},
		LastModified: env.Now,
	}

	effects := []effect.Effect{
		effect.Audit{Details: env.Texts.T(i18n.AuditComplaintRegistered, id, customer.Name)},
		effect.Success(env.Texts.T(i18n.NoticeComplaintCreated, id)),
	}
	if priority == entity.PriorityUrgent {
		effects = append(effects, effect.Notify{Kind: entity.AlertUrgentNew, ComplaintID: id})
	}

	return c, effects, nil
}
