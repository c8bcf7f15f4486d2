package schema

import (
	"strings"
	"unicode"
)

// Mapping is the result of reconciling one raw header row against a
// source schema. Every canonical field appears in Columns; fields with no
// matching raw header map to -1 and read as null downstream.
type Mapping struct {
	// Columns maps canonical field name -> raw column index, or -1.
	Columns map[string]int
}

// Value returns the raw cell for a canonical field, or "" and false when
// the field is unmapped or the row is too short.
func (m Mapping) Value(row []string, field string) (string, bool) {
	idx, ok := m.Columns[field]
	if !ok || idx < 0 || idx >= len(row) {
		return "", false
	}
	return row[idx], true
}

// MatchKey reduces a header to a bare lowercase alphanumeric key so that
// "order date", "Order_Date" and "OrderDate" all compare equal.
func MatchKey(header string) string {
	var b strings.Builder
	for _, r := range header {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// MapHeaders produces a best-effort mapping from raw headers to canonical
// fields. For each canonical field the alias variants are tried in declared
// priority order and the first raw header matching wins. Unmapped raw
// columns are dropped silently; a header row matching nothing still yields
// a complete, all-null mapping. This never fails.
func MapHeaders(s SourceSchema, rawHeaders []string) Mapping {
	byKey := make(map[string]int, len(rawHeaders))
	for i, h := range rawHeaders {
		key := MatchKey(h)
		if key == "" {
			continue
		}
		// First occurrence wins for duplicate raw headers.
		if _, seen := byKey[key]; !seen {
			byKey[key] = i
		}
	}

	claimed := make(map[int]bool, len(rawHeaders))
	columns := make(map[string]int, len(s.Aliases))
	for _, alias := range s.Aliases {
		columns[alias.Field] = -1
		for _, variant := range alias.Variants {
			idx, ok := byKey[MatchKey(variant)]
			if ok && !claimed[idx] {
				columns[alias.Field] = idx
				claimed[idx] = true
				break
			}
		}
	}

	return Mapping{Columns: columns}
}
