package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"crm/internal/domain/loyalty"
)

// Row is one typed spreadsheet row.
type Row struct {
	ID                   string
	Name                 string
	Phone                string
	Email                string
	Governorate          string
	StreetAddress        string
	InvoiceID            string
	InvoiceDate          *time.Time
	InvoiceDetails       string
	InvoiceAmount        float64
	LegacyTotalPurchases float64
	LegacyPoints         int
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
}

// Row converts a record into a typed row using header to locate columns.
func (m Mapping) Row(header, record []string) (Row, error) {
	var row Row
	for i, column := range header {
		if i >= len(record) {
			break
		}
		field := m[strings.TrimSpace(column)]
		value := strings.TrimSpace(record[i])
		if field == FieldIgnored || value == "" {
			continue
		}

		if err := row.set(field, value); err != nil {
			return Row{}, errors.Wrapf(err, "column %q", column)
		}
	}

	return row, nil
}

func (r *Row) set(field Field, value string) error {
	switch field {
	case FieldID:
		r.ID = value
	case FieldName:
		r.Name = value
	case FieldPhone:
		r.Phone = value
	case FieldEmail:
		r.Email = value
	case FieldGovernorate:
		r.Governorate = value
	case FieldStreetAddress:
		r.StreetAddress = value
	case FieldInvoiceID:
		r.InvoiceID = value
	case FieldInvoiceDetails:
		r.InvoiceDetails = value
	case FieldInvoiceDate:
		date, err := parseDate(value)
		if err != nil {
			return err
		}
		r.InvoiceDate = &date
	case FieldInvoiceAmount:
		amount, err := parseAmount(value)
		if err != nil {
			return err
		}
		r.InvoiceAmount = amount
	case FieldLegacyTotalPurchases:
		amount, err := parseAmount(value)
		if err != nil {
			return err
		}
		r.LegacyTotalPurchases = amount
	case FieldLegacyPoints:
		amount, err := parseAmount(value)
		if err != nil {
			return err
		}
		if amount > loyalty.MaxPoints {
			return errors.Errorf("points %q out of range", value)
		}
		r.LegacyPoints = int(amount)
	case FieldIgnored:
	}

	return nil
}

func parseAmount(value string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0, errors.Errorf("invalid number %q", value)
	}
	if amount < 0 {
		return 0, errors.Errorf("negative number %q", value)
	}
	if math.IsNaN(amount) || amount > loyalty.MaxAmount {
		return 0, errors.Errorf("number %q out of range", value)
	}

	return amount, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errors.Errorf("invalid date %q", value)
}
