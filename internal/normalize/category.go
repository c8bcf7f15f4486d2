package normalize

import "strings"

// CategorySeparator joins hierarchical category levels in canonical
// category paths.
const CategorySeparator = " > "

// JoinCategoryPath concatenates hierarchical category-level values and a
// leaf category name into one path, skipping empty levels and suppressing
// case-insensitive adjacent duplicates so "Office > Office > Supplies"
// collapses to "Office > Supplies". Each kept level is title-cased.
func JoinCategoryPath(levels []string, leaf string) string {
	all := make([]string, 0, len(levels)+1)
	all = append(all, levels...)
	all = append(all, leaf)

	var kept []string
	prevKey := ""
	for _, level := range all {
		cleaned := TitleCase(level)
		if cleaned == "" {
			continue
		}
		key := strings.ToLower(cleaned)
		if key == prevKey {
			continue
		}
		kept = append(kept, cleaned)
		prevKey = key
	}
	return strings.Join(kept, CategorySeparator)
}
