// Package i18n holds the localised texts written into logs, audits and alerts.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"crm/internal/domain/entity"
)

// Key identifies a message in the catalog.
type Key string

const (
	ComplaintRegistered    Key = "complaint.registered"
	ComplaintStarted       Key = "complaint.started"
	ComplaintProposed      Key = "complaint.proposed"
	ComplaintEscalated     Key = "complaint.escalated"
	ComplaintAccepted      Key = "complaint.accepted"
	ComplaintRejected      Key = "complaint.rejected"
	ComplaintAdminResolved Key = "complaint.admin_resolved"

	AuditComplaintRegistered Key = "audit.complaint_registered"
	AuditComplaintStatus     Key = "audit.complaint_status"
	AuditComplaintNote       Key = "audit.complaint_note"
	AuditCustomerCreated     Key = "audit.customer_created"
	AuditPointsGranted       Key = "audit.points_granted"
	AuditPointsDeducted      Key = "audit.points_deducted"
	AuditLegacyBalance       Key = "audit.legacy_balance"
	AuditVideoReward         Key = "audit.video_reward"
	AuditVoucherIssued       Key = "audit.voucher_issued"
	AuditImpression          Key = "audit.impression"
	AuditImport              Key = "audit.import"
	AuditFollowUpResolved    Key = "audit.followup_resolved"
	AuditFeedbackGenerated   Key = "audit.feedback_generated"
	AuditUserSaved           Key = "audit.user_saved"
	AuditBranchSaved         Key = "audit.branch_saved"
	AuditProductSaved        Key = "audit.product_saved"
	AuditInquiryAdded        Key = "audit.inquiry_added"

	NoticeComplaintUpdated  Key = "notice.complaint_updated"
	NoticeComplaintCreated  Key = "notice.complaint_created"
	NoticeFeedbackCompleted Key = "notice.feedback_completed"
	NoticeBranchChanged     Key = "notice.branch_changed"

	AlertUrgentNew         Key = "alert.urgent_new"
	AlertEscalation        Key = "alert.escalation"
	AlertSubjectUrgentNew  Key = "alert.subject.urgent_new"
	AlertSubjectEscalation Key = "alert.subject.escalation"
	AlertBodyUrgentNew     Key = "alert.body.urgent_new"
	AlertBodyEscalation    Key = "alert.body.escalation"
	AlertUnconfigured      Key = "alert.unconfigured"
	AlertSent              Key = "alert.sent"
	AlertFailed            Key = "alert.failed"
	NoticeEmailIncomplete  Key = "notice.email_incomplete"
	NoticeAlertSent        Key = "notice.alert_sent"
	NoticeAlertFailed      Key = "notice.alert_failed"

	FollowUpBranchReason  Key = "followup.branch_reason"
	FollowUpBranchDetails Key = "followup.branch_details"
	Unknown               Key = "unknown"

	VoucherDetails Key = "voucher.details"
	SessionLogin   Key = "session.login"
	SessionLogout  Key = "session.logout"
)

var supported = []language.Tag{language.Arabic, language.English}

var (
	matcher = language.NewMatcher(supported)
	texts   = catalog.NewBuilder(catalog.Fallback(language.Arabic))
)

func init() {
	for tag, entries := range map[language.Tag]map[Key]string{
		language.Arabic:  arabic,
		language.English: english,
	} {
		for key, msg := range entries {
			if err := texts.SetString(tag, string(key), msg); err != nil {
				panic(err)
			}
		}
	}

	for status, names := range statusNames {
		if err := texts.SetString(language.Arabic, statusKey(status), string(status)); err != nil {
			panic(err)
		}
		if err := texts.SetString(language.English, statusKey(status), names); err != nil {
			panic(err)
		}
	}
}

// Texts renders catalog messages in one language.
type Texts struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns the texts for the best supported match of locale.
// Unknown or empty locales resolve to Arabic.
func New(locale string) *Texts {
	_, idx, confidence := matcher.Match(language.Make(locale))
	tag := supported[0]
	if confidence != language.No {
		tag = supported[idx]
	}

	return &Texts{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(texts)),
	}
}

// Language returns the resolved language.
func (t *Texts) Language() language.Tag {
	return t.tag
}

// T renders key with args. Arguments are passed pre-formatted as strings so
// that digits are never localised.
func (t *Texts) T(key Key, args ...any) string {
	return t.printer.Sprintf(string(key), args...)
}

// Status renders the display name of a complaint status.
func (t *Texts) Status(s entity.ComplaintStatus) string {
	return t.printer.Sprintf(statusKey(s))
}

// Alert renders the display name of an alert kind.
func (t *Texts) Alert(kind entity.AlertKind) string {
	if kind == entity.AlertEscalation {
		return t.T(AlertEscalation)
	}

	return t.T(AlertUrgentNew)
}

func statusKey(s entity.ComplaintStatus) string {
	return "status." + s.Key()
}
