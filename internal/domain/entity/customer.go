package entity

import (
	"slices"
	"time"
)

// CustomerType distinguishes individual from corporate customers.
type CustomerType string

const (
	CustomerTypeNormal    CustomerType = "عادي"
	CustomerTypeCorporate CustomerType = "شركة"
)

// Classification is the loyalty tier derived from lifetime spend.
type Classification string

const (
	ClassificationBronze   Classification = "برونزي"
	ClassificationSilver   Classification = "فضي"
	ClassificationGold     Classification = "ذهبي"
	ClassificationPlatinum Classification = "بلاتيني"
)

// Rank orders tiers from Bronze (0) to Platinum (3).
func (c Classification) Rank() int {
	switch c {
	case ClassificationSilver:
		return 1
	case ClassificationGold:
		return 2
	case ClassificationPlatinum:
		return 3
	default:
		return 0
	}
}

// OrderStatus is the delivery status attached to a customer log entry.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "قيد التجهيز"
	OrderStatusShipped    OrderStatus = "تم الشحن"
	OrderStatusDelivered  OrderStatus = "تم التسليم"
	OrderStatusCancelled  OrderStatus = "ملغي"
)

// CustomerLogEntry records one invoice or voucher event on the customer.
type CustomerLogEntry struct {
	InvoiceID    string      `json:"invoiceId"`
	Date         time.Time   `json:"date"`
	Details      string      `json:"details"`
	Status       OrderStatus `json:"status"`
	Feedback     string      `json:"feedback,omitempty"`
	PointsChange int         `json:"pointsChange"`
	Amount       float64     `json:"amount"`
}

// Customer holds the profile and loyalty ledger of a single customer.
type Customer struct {
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	Phone             string               `json:"phone"`
	Email             string               `json:"email,omitempty"`
	JoinDate          time.Time            `json:"joinDate"`
	Type              CustomerType         `json:"type"`
	Governorate       string               `json:"governorate"`
	StreetAddress     string               `json:"streetAddress,omitempty"`
	Classification    Classification       `json:"classification"`
	Points            int                  `json:"points"`
	TotalPointsEarned int                  `json:"totalPointsEarned"`
	TotalPointsUsed   int                  `json:"totalPointsUsed"`
	TotalPurchases    float64              `json:"totalPurchases"`
	LastPurchaseDate  *time.Time           `json:"lastPurchaseDate,omitempty"`
	HasBadReputation  bool                 `json:"hasBadReputation,omitempty"`
	Source            string               `json:"source,omitempty"`
	PurchaseCount     int                  `json:"purchaseCount"`
	Log               []CustomerLogEntry   `json:"log"`
	Impressions       []CustomerImpression `json:"impressions"`
	PrimaryBranchID   string               `json:"primaryBranchId,omitempty"`
	LastModified      time.Time            `json:"lastModified"`
}

// BalanceConsistent reports whether the spendable balance matches the earned/used totals.
func (c Customer) BalanceConsistent() bool {
	return c.Points >= 0 && c.Points == c.TotalPointsEarned-c.TotalPointsUsed
}

// HasInvoice reports whether invoiceID is already in the customer log.
func (c Customer) HasInvoice(invoiceID string) bool {
	return slices.ContainsFunc(c.Log, func(e CustomerLogEntry) bool {
		return e.InvoiceID == invoiceID
	})
}
