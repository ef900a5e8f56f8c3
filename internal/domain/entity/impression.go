package entity

import "time"

// DiscoveryChannel is how the customer found the business.
type DiscoveryChannel string

const (
	DiscoveryFacebook  DiscoveryChannel = "فيسبوك"
	DiscoveryWhatsApp  DiscoveryChannel = "واتساب"
	DiscoveryInstagram DiscoveryChannel = "انستاجرام"
	DiscoveryTikTok    DiscoveryChannel = "تيكتوك"
	DiscoveryNearHome  DiscoveryChannel = "قريب من البيت"
	DiscoveryFriends   DiscoveryChannel = "من الأصدقاء"
	DiscoveryOther     DiscoveryChannel = "أخرى"
)

// IsValid checks if the discovery channel is known.
func (d DiscoveryChannel) IsValid() bool {
	switch d {
	case DiscoveryFacebook, DiscoveryWhatsApp, DiscoveryInstagram, DiscoveryTikTok,
		DiscoveryNearHome, DiscoveryFriends, DiscoveryOther:
		return true
	default:
		return false
	}
}

// CustomerImpression is a rated feedback record. It is never edited after creation.
type CustomerImpression struct {
	ID                     string           `json:"id"`
	Date                   time.Time        `json:"date"`
	RecordedByUserID       string           `json:"recordedByUserId"`
	RecordedByUserName     string           `json:"recordedByUserName"`
	ProductQualityRating   int              `json:"productQualityRating"`
	ProductQualityNotes    string           `json:"productQualityNotes,omitempty"`
	BranchExperienceRating int              `json:"branchExperienceRating"`
	BranchExperienceNotes  string           `json:"branchExperienceNotes,omitempty"`
	DiscoveryChannel       DiscoveryChannel `json:"discoveryChannel"`
	IsFirstVisit           bool             `json:"isFirstVisit"`
	RelatedInvoiceIDs      []string         `json:"relatedInvoiceIds,omitempty"`
	BranchID               string           `json:"branchId"`
	VisitTime              string           `json:"visitTime,omitempty"`
}
