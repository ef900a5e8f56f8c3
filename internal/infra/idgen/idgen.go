// Package idgen generates entity identifiers from random UUIDs.
package idgen

import (
	"strings"
	"unicode"

	"crm/internal/domain/service"

	"github.com/google/uuid"
)

// suffixLength is the number of hex digits appended to a prefix.
const suffixLength = 12

type uuidGenerator struct{}

// New returns an IDGenerator producing <prefix><12 hex digits>.
// Upper-case prefixes such as CMPT- get an upper-case suffix.
func New() service.IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) New(prefix string) string {
	raw := uuid.New()
	suffix := strings.ReplaceAll(raw.String(), "-", "")[:suffixLength]
	if isUpper(prefix) {
		suffix = strings.ToUpper(suffix)
	}

	return prefix + suffix
}

func isUpper(prefix string) bool {
	hasLetter := false
	for _, r := range prefix {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}

	return hasLetter
}
