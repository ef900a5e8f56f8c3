package importer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/domain/loyalty"
)

const (
	// DefaultInvoiceDetails describes an imported invoice without details.
	DefaultInvoiceDetails = "عملية شراء مستوردة"
	// DefaultGovernorate is stored for created customers without one.
	DefaultGovernorate = "N/A"
)

// Summary counts the outcome of an import. Updated counts every row that
// matched an existing customer.
type Summary struct {
	New          int `json:"new"`
	Updated      int `json:"updated"`
	Transactions int `json:"transactions"`
	Skipped      int `json:"skipped"`
}

// Merger folds import rows into a state. The state must be owned by the caller.
type Merger struct {
	state   *entity.AppState
	now     time.Time
	nextSeq int
	summary Summary
}

// NewMerger prepares a merge into state.
func NewMerger(state *entity.AppState, now time.Time) *Merger {
	return &Merger{
		state:   state,
		now:     now,
		nextSeq: maxCustomerSeq(state.Customers) + 1,
	}
}

// Skip counts n rows that could not be parsed.
func (m *Merger) Skip(n int) {
	m.summary.Skipped += n
}

// Merge applies every row in order.
func (m *Merger) Merge(rows []Row) {
	for _, row := range rows {
		m.MergeRow(row)
	}
}

// Summary returns the counts so far.
func (m *Merger) Summary() Summary {
	return m.summary
}

// MergeRow applies one row: it matches a customer by id then phone, creates
// one when neither matches, records the invoice once and reclassifies. A row
// whose points would push the balance past loyalty.MaxPoints is skipped.
func (m *Merger) MergeRow(row Row) {
	if row.ID == "" && row.Phone == "" {
		m.summary.Skipped++

		return
	}

	customer, found := m.match(row)
	if !found && (row.Phone == "" || row.Name == "") {
		m.summary.Skipped++

		return
	}

	newInvoice := row.InvoiceID != "" && !customer.HasInvoice(row.InvoiceID)
	invoicePoints := 0
	if newInvoice {
		settings := m.state.SystemSettings
		points, err := loyalty.PurchasePoints(row.InvoiceAmount, settings.ImportSpend, settings.ImportPoints)
		if err != nil {
			m.summary.Skipped++

			return
		}
		invoicePoints = points
	}
	legacyPoints := max(row.LegacyPoints, 0)
	if invoicePoints > loyalty.MaxPoints-legacyPoints || loyalty.CheckCredit(customer, invoicePoints+legacyPoints) != nil {
		m.summary.Skipped++

		return
	}

	if found {
		refresh(&customer, row)
	} else {
		customer = m.newCustomer(row)
	}

	if newInvoice {
		customer = m.addInvoice(customer, row, invoicePoints)
		m.summary.Transactions++
	}

	if row.LegacyTotalPurchases > 0 {
		customer.TotalPurchases += row.LegacyTotalPurchases
	}
	if legacyPoints > 0 {
		customer.Points += legacyPoints
		customer.TotalPointsEarned += legacyPoints
	}

	customer = loyalty.Reclassify(customer, m.state.SystemSettings.Classification)
	customer.LastModified = m.now
	m.state.PutCustomer(customer)

	if found {
		m.summary.Updated++
	} else {
		m.summary.New++
	}
}

func (m *Merger) match(row Row) (entity.Customer, bool) {
	if row.ID != "" {
		if c, ok := m.state.FindCustomer(row.ID); ok {
			return c, true
		}
	}
	if row.Phone != "" {
		for _, c := range m.state.Customers {
			if c.Phone == row.Phone {
				return c, true
			}
		}
	}

	return entity.Customer{}, false
}

func (m *Merger) newCustomer(row Row) entity.Customer {
	id := row.ID
	governorate := row.Governorate
	if governorate == "" {
		governorate = DefaultGovernorate
	}
	if id == "" {
		id = fmt.Sprintf("CUST-%04d", m.nextSeq)
		m.nextSeq++
	}

	return entity.Customer{
		ID:             id,
		Name:           row.Name,
		Phone:          row.Phone,
		Email:          row.Email,
		JoinDate:       m.now,
		Type:           entity.CustomerTypeNormal,
		Governorate:    governorate,
		StreetAddress:  row.StreetAddress,
		Classification: entity.ClassificationBronze,
		Source:         "import",
		Log:            []entity.CustomerLogEntry{},
		Impressions:    []entity.CustomerImpression{},
	}
}

func refresh(c *entity.Customer, row Row) {
	if row.Name != "" {
		c.Name = row.Name
	}
	if row.Governorate != "" {
		c.Governorate = row.Governorate
	}
	if row.StreetAddress != "" {
		c.StreetAddress = row.StreetAddress
	}
	if row.Email != "" {
		c.Email = row.Email
	}
}

func (m *Merger) addInvoice(c entity.Customer, row Row, points int) entity.Customer {
	details := row.InvoiceDetails
	if details == "" {
		details = DefaultInvoiceDetails
	}

	date := m.now
	if row.InvoiceDate != nil {
		date = *row.InvoiceDate
	}

	entry := entity.CustomerLogEntry{
		InvoiceID:    row.InvoiceID,
		Date:         date,
		Details:      details,
		Status:       entity.OrderStatusDelivered,
		PointsChange: points,
		Amount:       row.InvoiceAmount,
	}

	log := append(append([]entity.CustomerLogEntry(nil), c.Log...), entry)
	sort.SliceStable(log, func(i, j int) bool { return log[i].Date.After(log[j].Date) })

	c.Log = log
	c.Points += points
	c.TotalPointsEarned += points
	c.TotalPurchases += row.InvoiceAmount
	c.PurchaseCount++
	newest := log[0].Date
	c.LastPurchaseDate = &newest

	return c
}

// NextCustomerID returns the id the next created customer would receive.
func NextCustomerID(customers []entity.Customer) string {
	return fmt.Sprintf("CUST-%04d", maxCustomerSeq(customers)+1)
}

func maxCustomerSeq(customers []entity.Customer) int {
	highest := 0
	for _, c := range customers {
		_, suffix, ok := strings.Cut(c.ID, "-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}

	return highest
}
