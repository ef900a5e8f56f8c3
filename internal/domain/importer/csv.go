package importer

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadCSV parses every record of r using mapping. It returns the typed rows
// and the number of records whose values could not be parsed.
func ReadCSV(r io.Reader, mapping Mapping) ([]Row, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, 0, errors.Wrap(err, "read header")
	}
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}

	var (
		rows    []Row
		invalid int
	)
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, 0, errors.WithStack(readErr)
		}

		row, rowErr := mapping.Row(header, record)
		if rowErr != nil {
			invalid++

			continue
		}
		rows = append(rows, row)
	}

	return rows, invalid, nil
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
