package normalize

import (
	"regexp"
	"strings"
)

// The raw card feed embeds POS terminal codes, store numbers, phone
// numbers and dates in merchant names ("AMZN Mktp US*RT4X12ZZ0",
// "STAPLES 00123456", "GODADDY.COM 480-5058855"). These are stripped
// before the canonical-map lookup.
var (
	phoneRe       = regexp.MustCompile(`\(?\d{3}\)?[-. ]\d{3}[-. ]?\d{4}`)
	isoDateRe     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	refTokenRe    = regexp.MustCompile(`^(?:[A-Za-z0-9]*\d[A-Za-z0-9]*)$`)
	trailDigitsRe = regexp.MustCompile(`^\d{6,}$`)
)

// SpecialPurchaseBucket is the single bucket for special-purchase
// merchants, applied regardless of what follows the prefix token.
const SpecialPurchaseBucket = "Special Purchase"

// CleanMerchant reduces a raw merchant string to its cleaned form without
// consulting the canonical map: wildcard/store-code truncation, trailing
// reference-code stripping, phone and date removal, whitespace collapse.
// The result keeps its original casing.
func CleanMerchant(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// Truncate at the first wildcard or store-code marker.
	if i := strings.IndexAny(s, "*#"); i >= 0 {
		s = s[:i]
	}

	s = phoneRe.ReplaceAllString(s, " ")
	s = isoDateRe.ReplaceAllString(s, " ")
	s = CollapseWhitespace(s)

	// Strip trailing POS terminal / reference tokens: digit-bearing
	// alphanumeric runs of 5+ chars or pure digit runs of 6+. Plain words
	// stay, however long - "CORPORATION" is a name, "RT4X12ZZ0" is not.
	words := strings.Fields(s)
	for len(words) > 1 {
		last := words[len(words)-1]
		if trailDigitsRe.MatchString(last) || (len(last) >= 5 && refTokenRe.MatchString(last)) {
			words = words[:len(words)-1]
			continue
		}
		break
	}

	return strings.Join(words, " ")
}

// CanonicalMerchant cleans a raw merchant name and resolves it against the
// canonical merchant map. Lookup happens after stripping, on the
// upper-cased cleaned string; unmapped values pass through title-cased.
// Names beginning with a special-purchase prefix bucket to
// SpecialPurchaseBucket regardless of suffix.
func CanonicalMerchant(raw string, merchantMap map[string]string, specialPrefixes []string) string {
	cleaned := CleanMerchant(raw)
	if cleaned == "" {
		return ""
	}

	upper := strings.ToUpper(cleaned)
	for _, prefix := range specialPrefixes {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(raw)), strings.ToUpper(prefix)) {
			return SpecialPurchaseBucket
		}
	}

	if canonical, ok := merchantMap[upper]; ok {
		return canonical
	}
	return TitleCase(cleaned)
}
