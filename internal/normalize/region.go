package normalize

import "strings"

// CanonicalRegion resolves a raw state/region value against the region
// map. The map keys Latin-script variants upper-cased and non-Latin-script
// variants verbatim, so the trimmed value is tried as-is before the
// upper-cased lookup. Unmapped values come back title-cased rather than
// rejected - canonicalization is best-effort, not validating.
func CanonicalRegion(raw string, regionMap map[string]string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if canonical, ok := regionMap[s]; ok {
		return canonical
	}
	if canonical, ok := regionMap[strings.ToUpper(s)]; ok {
		return canonical
	}
	return TitleCase(s)
}
