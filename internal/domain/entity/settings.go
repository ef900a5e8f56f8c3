package entity

import "time"

// ClassificationSettings are the spend thresholds of each tier.
type ClassificationSettings struct {
	Silver   float64 `json:"silver"`
	Gold     float64 `json:"gold"`
	Platinum float64 `json:"platinum"`
}

// SystemSettings is the tenant-wide configuration persisted with the state.
type SystemSettings struct {
	PointValue        float64                `json:"pointValue"`
	ImportSpend       float64                `json:"importSpend"`
	ImportPoints      int                    `json:"importPoints"`
	Classification    ClassificationSettings `json:"classification"`
	CompanyName       string                 `json:"companyName"`
	CompanyLogo       string                 `json:"companyLogo"`
	SystemEmail       string                 `json:"systemEmail,omitempty"`
	EmailJSServiceID  string                 `json:"emailJsServiceId,omitempty"`
	EmailJSTemplateID string                 `json:"emailJsTemplateId,omitempty"`
	EmailJSPublicKey  string                 `json:"emailJsPublicKey,omitempty"`
}

// EmailConfigured reports whether every outbound email credential is set.
func (s SystemSettings) EmailConfigured() bool {
	return s.EmailJSServiceID != "" && s.EmailJSTemplateID != "" && s.EmailJSPublicKey != ""
}

// Theme is the dashboard appearance.
type Theme struct {
	Colors map[string]string `json:"colors"`
	Font   string            `json:"font"`
}

// Voucher is a presentation record of a redemption. It is not persisted.
type Voucher struct {
	CustomerName string    `json:"customerName"`
	Amount       float64   `json:"amount"`
	Points       int       `json:"points"`
	Code         string    `json:"code"`
	IssueDate    time.Time `json:"issueDate"`
	ExpiryDate   time.Time `json:"expiryDate"`
}

// DefaultSystemSettings returns the settings of a fresh installation.
func DefaultSystemSettings() SystemSettings {
	return SystemSettings{
		PointValue:   1,
		ImportSpend:  100,
		ImportPoints: 10,
		Classification: ClassificationSettings{
			Silver:   5000,
			Gold:     15000,
			Platinum: 50000,
		},
		CompanyName: "CRM",
	}
}

// DefaultTheme returns the default dashboard theme.
func DefaultTheme() Theme {
	return Theme{
		Colors: map[string]string{
			"primary":    "#2563eb",
			"background": "#f8fafc",
			"text":       "#0f172a",
		},
		Font: "Cairo",
	}
}
