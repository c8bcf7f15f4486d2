// Package rules provides the static normalization rule tables: the merchant
// canonical map, the state/region canonical map, the aggregation item
// blacklist, campus-merchant names and special-purchase prefixes. Tables are
// loaded once at pipeline start and are read-only afterwards; changing a
// table means deploying a new version, never mutating at run time.
package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table holds all rule tables for one pipeline run.
type Table struct {
	MerchantMap map[string]string
	RegionMap   map[string]string
	// ItemBlacklist keys are stored lower-cased; lookups must lower-case
	// the candidate name.
	ItemBlacklist   map[string]struct{}
	CampusMerchants []string
	SpecialPrefixes []string
}

// defaultItemBlacklist lists known-junk placeholder item names excluded
// from top-item aggregation. Matched case-insensitively and exactly.
var defaultItemBlacklist = []string{
	"",
	"nan",
	"none",
	"null",
	"undefined",
	"product",
	"shipping",
	"freight",
	"sq hosted product",
	"noncatalog product",
	"punchout product",
	"order summary",
	"placeholder - do not close",
}

// Default returns the built-in rule tables.
func Default() *Table {
	t := &Table{
		MerchantMap:     defaultMerchantMap,
		RegionMap:       defaultRegionMap,
		ItemBlacklist:   make(map[string]struct{}, len(defaultItemBlacklist)),
		CampusMerchants: defaultCampusMerchants,
		SpecialPrefixes: defaultSpecialPrefixes,
	}
	for _, name := range defaultItemBlacklist {
		t.ItemBlacklist[strings.ToLower(name)] = struct{}{}
	}
	return t
}

// overrideFile is the YAML shape of an optional rule-table override file.
type overrideFile struct {
	Merchants       map[string]string `yaml:"merchants"`
	Regions         map[string]string `yaml:"regions"`
	ItemBlacklist   []string          `yaml:"item_blacklist"`
	CampusMerchants []string          `yaml:"campus_merchants"`
	SpecialPrefixes []string          `yaml:"special_prefixes"`
}

// Load returns the default tables merged with the override file at path,
// if it exists. Override entries win over defaults; list-valued overrides
// are appended. A missing file is not an error.
func Load(path string) (*Table, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	resolved, err := findRuleFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file %s: %w", resolved, err)
	}

	var of overrideFile
	if err := yaml.Unmarshal(data, &of); err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", resolved, err)
	}

	// Copy-on-override so the package-level defaults stay untouched.
	if len(of.Merchants) > 0 {
		merged := make(map[string]string, len(t.MerchantMap)+len(of.Merchants))
		for k, v := range t.MerchantMap {
			merged[k] = v
		}
		for k, v := range of.Merchants {
			merged[k] = v
		}
		t.MerchantMap = merged
	}
	if len(of.Regions) > 0 {
		merged := make(map[string]string, len(t.RegionMap)+len(of.Regions))
		for k, v := range t.RegionMap {
			merged[k] = v
		}
		for k, v := range of.Regions {
			merged[k] = v
		}
		t.RegionMap = merged
	}
	if len(of.ItemBlacklist) > 0 {
		merged := make(map[string]struct{}, len(t.ItemBlacklist)+len(of.ItemBlacklist))
		for k := range t.ItemBlacklist {
			merged[k] = struct{}{}
		}
		for _, name := range of.ItemBlacklist {
			merged[strings.ToLower(name)] = struct{}{}
		}
		t.ItemBlacklist = merged
	}
	t.CampusMerchants = append(append([]string{}, t.CampusMerchants...), of.CampusMerchants...)
	t.SpecialPrefixes = append(append([]string{}, t.SpecialPrefixes...), of.SpecialPrefixes...)

	return t, nil
}

// findRuleFile looks for a rule file in the standard locations: the path
// itself, ./config/, and the user's config directory.
func findRuleFile(path string) (string, error) {
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}

	locations := []string{
		path,
		filepath.Join("config", path),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "procure-csv", path))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}
