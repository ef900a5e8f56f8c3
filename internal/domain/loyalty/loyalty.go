// Package loyalty implements the customer points ledger. Every operation
// returns a new customer value and never lets the balance go negative.
package loyalty

import (
	"math"
	"slices"
	"strconv"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/i18n"
)

const (
	// CurrencyPerLegacyPoint converts legacy currency balances into points.
	CurrencyPerLegacyPoint = 10
	// VoucherValidity is how long an issued voucher stays redeemable.
	VoucherValidity = 30 * 24 * time.Hour
	// VideoRewardPoints is granted once a customer posts a review video.
	VideoRewardPoints = 50
	// VoucherPrefix starts every voucher code.
	VoucherPrefix = "VCHR-"
	// MaxPoints caps a customer balance and its lifetime earned total.
	MaxPoints = 1_000_000_000
	// MaxAmount caps a single currency amount accepted by the ledger.
	MaxAmount = 1e12
)

// CheckCredit reports whether points can be credited to c without pushing
// its balance or lifetime total past MaxPoints.
func CheckCredit(c entity.Customer, points int) error {
	if points < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("points amount must not be negative")
	}
	if points > MaxPoints-c.Points || points > MaxPoints-c.TotalPointsEarned {
		return domainerrors.ErrValidationFailed.WithDetails(
			"crediting " + strconv.Itoa(points) + " points exceeds the balance limit of " + strconv.Itoa(MaxPoints))
	}

	return nil
}

// CheckAmount validates a currency amount against MaxAmount.
func CheckAmount(amount float64) error {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domainerrors.ErrValidationFailed.WithDetails("amount must be positive")
	}
	if amount > MaxAmount {
		return domainerrors.ErrValidationFailed.WithDetails("amount exceeds " + FormatAmount(MaxAmount))
	}

	return nil
}

// PurchasePoints returns the points earned for amount, spend currency
// buying per points. It fails when the result would exceed MaxPoints.
func PurchasePoints(amount, spend float64, per int) (int, error) {
	if spend <= 0 || per <= 0 || amount <= 0 {
		return 0, nil
	}
	points := math.Floor(amount/spend) * float64(per)
	if math.IsNaN(points) || points > MaxPoints {
		return 0, domainerrors.ErrValidationFailed.WithDetails("purchase earns more than " + strconv.Itoa(MaxPoints) + " points")
	}

	return int(points), nil
}

// Classify returns the tier for a lifetime spend. It is monotonic in totalPurchases.
func Classify(totalPurchases float64, thresholds entity.ClassificationSettings) entity.Classification {
	switch {
	case totalPurchases >= thresholds.Platinum:
		return entity.ClassificationPlatinum
	case totalPurchases >= thresholds.Gold:
		return entity.ClassificationGold
	case totalPurchases >= thresholds.Silver:
		return entity.ClassificationSilver
	default:
		return entity.ClassificationBronze
	}
}

// Reclassify recomputes the customer tier from its spend.
func Reclassify(c entity.Customer, thresholds entity.ClassificationSettings) entity.Customer {
	c.Classification = Classify(c.TotalPurchases, thresholds)

	return c
}

// Grant credits amount points.
func Grant(c entity.Customer, amount int, now time.Time) (entity.Customer, error) {
	if amount <= 0 {
		return c, domainerrors.ErrValidationFailed.WithDetails("points amount must be positive")
	}
	if err := CheckCredit(c, amount); err != nil {
		return c, err
	}

	c.Points += amount
	c.TotalPointsEarned += amount
	c.LastModified = now

	return c, nil
}

// Deduct debits amount points, refusing when the balance is insufficient.
func Deduct(c entity.Customer, amount int, now time.Time) (entity.Customer, error) {
	if amount <= 0 {
		return c, domainerrors.ErrValidationFailed.WithDetails("points amount must be positive")
	}
	if amount > c.Points {
		return c, domainerrors.ErrInsufficientBalance.WithDetails(
			"requested " + strconv.Itoa(amount) + ", available " + strconv.Itoa(c.Points))
	}

	c.Points -= amount
	c.TotalPointsUsed += amount
	c.LastModified = now

	return c, nil
}

// AddLegacyBalance migrates a paper-era currency balance. It returns the
// updated customer and the points credited.
func AddLegacyBalance(c entity.Customer, amount float64, settings entity.SystemSettings, now time.Time) (entity.Customer, int, error) {
	if err := CheckAmount(amount); err != nil {
		return c, 0, err
	}

	points := int(math.Floor(amount / CurrencyPerLegacyPoint))
	if err := CheckCredit(c, points); err != nil {
		return c, 0, err
	}
	c.Points += points
	c.TotalPointsEarned += points
	c.TotalPurchases += amount
	c.LastModified = now

	return Reclassify(c, settings.Classification), points, nil
}

// GrantVideoReward credits the fixed video reward.
func GrantVideoReward(c entity.Customer, now time.Time) (entity.Customer, error) {
	return Grant(c, VideoRewardPoints, now)
}

// Redemption is the input of a voucher redemption.
type Redemption struct {
	Points     int
	PointValue float64
	Code       string
	Now        time.Time
	Texts      *i18n.Texts
}

// Redeem converts points into a discount voucher and records it on the customer log.
func Redeem(c entity.Customer, r Redemption) (entity.Customer, entity.Voucher, error) {
	if r.Points <= 0 {
		return c, entity.Voucher{}, domainerrors.ErrValidationFailed.WithDetails("points to redeem must be positive")
	}
	if r.Points > c.Points {
		return c, entity.Voucher{}, domainerrors.ErrInsufficientBalance.WithDetails(
			"requested " + strconv.Itoa(r.Points) + ", available " + strconv.Itoa(c.Points))
	}

	discount := float64(r.Points) * r.PointValue
	entry := entity.CustomerLogEntry{
		InvoiceID:    r.Code,
		Date:         r.Now,
		Details:      r.Texts.T(i18n.VoucherDetails, strconv.Itoa(r.Points), FormatAmount(discount)),
		Status:       entity.OrderStatusDelivered,
		PointsChange: -r.Points,
		Amount:       0,
	}

	c.Points -= r.Points
	c.TotalPointsUsed += r.Points
	c.Log = append([]entity.CustomerLogEntry{entry}, c.Log...)
	c.LastModified = r.Now

	voucher := entity.Voucher{
		CustomerName: c.Name,
		Amount:       discount,
		Points:       r.Points,
		Code:         r.Code,
		IssueDate:    r.Now,
		ExpiryDate:   r.Now.Add(VoucherValidity),
	}

	return c, voucher, nil
}

// FindVoucher rebuilds the voucher record of code from the customer log.
func FindVoucher(c entity.Customer, code string, pointValue float64) (entity.Voucher, bool) {
	idx := slices.IndexFunc(c.Log, func(e entity.CustomerLogEntry) bool {
		return e.InvoiceID == code && e.PointsChange < 0
	})
	if idx < 0 {
		return entity.Voucher{}, false
	}

	entry := c.Log[idx]
	points := -entry.PointsChange

	return entity.Voucher{
		CustomerName: c.Name,
		Amount:       float64(points) * pointValue,
		Points:       points,
		Code:         code,
		IssueDate:    entry.Date,
		ExpiryDate:   entry.Date.Add(VoucherValidity),
	}, true
}

// FormatAmount renders a currency amount without trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
