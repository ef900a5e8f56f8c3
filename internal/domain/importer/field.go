// Package importer maps bulk customer spreadsheets onto the loyalty ledger.
package importer

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Field is a recognised import target.
type Field int

const (
	FieldIgnored Field = iota
	FieldID
	FieldName
	FieldPhone
	FieldEmail
	FieldGovernorate
	FieldStreetAddress
	FieldInvoiceID
	FieldInvoiceDate
	FieldInvoiceDetails
	FieldInvoiceAmount
	// FieldLegacyTotalPurchases adds to lifetime spend without an invoice.
	FieldLegacyTotalPurchases
	// FieldLegacyPoints adds points carried over from paper records.
	FieldLegacyPoints
)

var fieldNames = map[string]Field{
	"ignore":             FieldIgnored,
	"id":                 FieldID,
	"name":               FieldName,
	"phone":              FieldPhone,
	"email":              FieldEmail,
	"governorate":        FieldGovernorate,
	"streetAddress":      FieldStreetAddress,
	"invoiceId":          FieldInvoiceID,
	"invoiceDate":        FieldInvoiceDate,
	"invoiceDetails":     FieldInvoiceDetails,
	"invoiceAmount":      FieldInvoiceAmount,
	"_oldTotalPurchases": FieldLegacyTotalPurchases,
	"_oldPoints":         FieldLegacyPoints,
}

// ParseField resolves a target field name. An empty name means the column is ignored.
func ParseField(name string) (Field, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return FieldIgnored, nil
	}

	field, ok := fieldNames[name]
	if !ok {
		return FieldIgnored, errors.Errorf("unknown import field %q", name)
	}

	return field, nil
}

// String returns the field name as used in mappings.
func (f Field) String() string {
	for name, field := range fieldNames {
		if field == f {
			return name
		}
	}

	return "ignore"
}

// FieldNames lists every accepted target field name.
func FieldNames() []string {
	names := make([]string, 0, len(fieldNames))
	for name := range fieldNames {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Mapping assigns a target field to each source column header.
type Mapping map[string]Field

// ParseMapping validates a raw header → field name mapping.
func ParseMapping(raw map[string]string) (Mapping, error) {
	mapping := make(Mapping, len(raw))
	seen := make(map[Field]string, len(raw))
	for column, name := range raw {
		field, err := ParseField(name)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", column)
		}
		if field != FieldIgnored {
			if other, dup := seen[field]; dup {
				return nil, errors.Errorf("field %s mapped by both %q and %q", field, other, column)
			}
			seen[field] = column
		}
		mapping[strings.TrimSpace(column)] = field
	}

	if _, ok := seen[FieldID]; !ok {
		if _, ok := seen[FieldPhone]; !ok {
			return nil, errors.New("mapping needs an id or phone column")
		}
	}

	return mapping, nil
}
