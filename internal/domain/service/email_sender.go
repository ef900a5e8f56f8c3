package service

import "context"

// EmailRequest is one templated email addressed through an external email service.
type EmailRequest struct {
	ServiceID      string
	TemplateID     string
	PublicKey      string
	TemplateParams map[string]string
}

// EmailSender delivers templated emails. Delivery is best effort.
type EmailSender interface {
	Send(ctx context.Context, req *EmailRequest) error
}
