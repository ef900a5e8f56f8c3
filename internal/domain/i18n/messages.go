package i18n

import "crm/internal/domain/entity"

var arabic = map[Key]string{
	ComplaintRegistered:    "تم تسجيل الشكوى",
	ComplaintStarted:       "بدء العمل على الشكوى",
	ComplaintProposed:      "حل مقترح: %s",
	ComplaintEscalated:     "تم تصعيد الشكوى للإدارة",
	ComplaintAccepted:      "العميل وافق على الحل: %s",
	ComplaintRejected:      "العميل رفض الحل المقترح، إعادة الشكوى للمراجعة",
	ComplaintAdminResolved: "قرار إداري: %s",

	AuditComplaintRegistered: "تسجيل شكوى جديدة %s للعميل %s",
	AuditComplaintStatus:     "تغيير حالة الشكوى %s إلى %s",
	AuditComplaintNote:       "إضافة ملاحظة على الشكوى %s",
	AuditCustomerCreated:     "إضافة عميل جديد %s",
	AuditPointsGranted:       "منح %s نقطة للعميل %s. السبب: %s",
	AuditPointsDeducted:      "خصم %s نقطة من العميل %s. السبب: %s",
	AuditLegacyBalance:       "إضافة رصيد قديم بقيمة %s للعميل %s (%s نقطة). %s",
	AuditVideoReward:         "منح مكافأة فيديو %s نقطة للعميل %s",
	AuditVoucherIssued:       "إصدار قسيمة %s للعميل %s بقيمة %s",
	AuditImpression:          "تسجيل انطباع للعميل %s",
	AuditImport:              "استيراد بيانات العملاء: جديد %s، محدث %s، معاملات %s، متجاهل %s",
	AuditFollowUpResolved:    "إغلاق مهمة المتابعة %s",
	AuditFeedbackGenerated:   "إنشاء %s مهمة متابعة يومية",
	AuditUserSaved:           "حفظ بيانات المستخدم %s",
	AuditBranchSaved:         "حفظ بيانات الفرع %s",
	AuditProductSaved:        "حفظ بيانات المنتج %s",
	AuditInquiryAdded:        "تسجيل استفسار عن %s",

	NoticeComplaintUpdated:  "تم تحديث حالة الشكوى إلى %s",
	NoticeComplaintCreated:  "تم تسجيل الشكوى %s",
	NoticeFeedbackCompleted: "تم إكمال %s من مهام المتابعة اليومية",
	NoticeBranchChanged:     "العميل غيّر فرعه المعتاد، تم إنشاء مهمة متابعة",

	AlertUrgentNew:         "شكوى عاجلة جديدة",
	AlertEscalation:        "تصعيد شكوى",
	AlertSubjectUrgentNew:  "[شكوى عاجلة] %s",
	AlertSubjectEscalation: "[تصعيد شكوى] %s",
	AlertBodyUrgentNew:     "تم تسجيل شكوى عاجلة جديدة رقم %s للعميل %s.\nنوع الشكوى: %s\nالوصف: %s",
	AlertBodyEscalation:    "تم تصعيد الشكوى رقم %s للعميل %s وتحتاج إلى قرار إداري.\nنوع الشكوى: %s\nالوصف: %s",
	AlertUnconfigured:      "تنبيه (%s) للمستلمين: %s. لم يتم إرسال بريد فعلي لأن إعدادات البريد غير مكتملة",
	AlertSent:              "تم إرسال تنبيه (%s) بالبريد إلى %s",
	AlertFailed:            "فشل إرسال تنبيه (%s) إلى %s: %s",
	NoticeEmailIncomplete:  "إعدادات البريد الإلكتروني غير مكتملة، تم تسجيل التنبيه فقط",
	NoticeAlertSent:        "تم إرسال تنبيه إلى %s",
	NoticeAlertFailed:      "فشل إرسال التنبيه إلى %s",

	FollowUpBranchReason:  "العميل غيّر فرعه المعتاد",
	FollowUpBranchDetails: "كان العميل يتعامل مع فرع %s وسجل انطباعاً في فرع %s",
	Unknown:               "غير معروف",

	VoucherDetails: "استبدال %s نقطة بقسيمة خصم %s",
	SessionLogin:   "تسجيل دخول",
	SessionLogout:  "تسجيل خروج",
}

var english = map[Key]string{
	ComplaintRegistered:    "Complaint registered",
	ComplaintStarted:       "Started working on the complaint",
	ComplaintProposed:      "Proposed solution: %s",
	ComplaintEscalated:     "Complaint escalated to management",
	ComplaintAccepted:      "Customer accepted the solution: %s",
	ComplaintRejected:      "Customer rejected the proposed solution, back to review",
	ComplaintAdminResolved: "Administrative decision: %s",

	AuditComplaintRegistered: "Registered complaint %s for customer %s",
	AuditComplaintStatus:     "Changed complaint %s status to %s",
	AuditComplaintNote:       "Added a note to complaint %s",
	AuditCustomerCreated:     "Added customer %s",
	AuditPointsGranted:       "Granted %s points to customer %s. Reason: %s",
	AuditPointsDeducted:      "Deducted %s points from customer %s. Reason: %s",
	AuditLegacyBalance:       "Added legacy balance of %s to customer %s (%s points). %s",
	AuditVideoReward:         "Granted a %s point video reward to customer %s",
	AuditVoucherIssued:       "Issued voucher %s to customer %s worth %s",
	AuditImpression:          "Recorded an impression for customer %s",
	AuditImport:              "Imported customers: new %s, updated %s, transactions %s, skipped %s",
	AuditFollowUpResolved:    "Resolved follow-up task %s",
	AuditFeedbackGenerated:   "Generated %s daily feedback tasks",
	AuditUserSaved:           "Saved user %s",
	AuditBranchSaved:         "Saved branch %s",
	AuditProductSaved:        "Saved product %s",
	AuditInquiryAdded:        "Recorded an inquiry about %s",

	NoticeComplaintUpdated:  "Complaint status updated to %s",
	NoticeComplaintCreated:  "Complaint %s registered",
	NoticeFeedbackCompleted: "Completed %s daily feedback tasks",
	NoticeBranchChanged:     "Customer changed their usual branch, a follow-up task was created",

	AlertUrgentNew:         "new urgent complaint",
	AlertEscalation:        "complaint escalation",
	AlertSubjectUrgentNew:  "[Urgent complaint] %s",
	AlertSubjectEscalation: "[Complaint escalated] %s",
	AlertBodyUrgentNew:     "A new urgent complaint %s was registered for customer %s.\nType: %s\nDescription: %s",
	AlertBodyEscalation:    "Complaint %s for customer %s was escalated and needs an administrative decision.\nType: %s\nDescription: %s",
	AlertUnconfigured:      "Alert (%s) for recipients: %s. No email was sent because email settings are incomplete",
	AlertSent:              "Sent %s alert email to %s",
	AlertFailed:            "Failed to send %s alert to %s: %s",
	NoticeEmailIncomplete:  "Email settings are incomplete, the alert was only logged",
	NoticeAlertSent:        "Alert sent to %s",
	NoticeAlertFailed:      "Failed to send alert to %s",

	FollowUpBranchReason:  "Customer changed usual branch",
	FollowUpBranchDetails: "Customer usually visited %s but recorded an impression at %s",
	Unknown:               "unknown",

	VoucherDetails: "Redeemed %s points for discount voucher %s",
	SessionLogin:   "Logged in",
	SessionLogout:  "Logged out",
}

var statusNames = map[entity.ComplaintStatus]string{
	entity.ComplaintStatusOpen:            "Open",
	entity.ComplaintStatusInProgress:      "In progress",
	entity.ComplaintStatusPendingCustomer: "Pending customer",
	entity.ComplaintStatusResolved:        "Resolved",
	entity.ComplaintStatusEscalated:       "Escalated",
}
