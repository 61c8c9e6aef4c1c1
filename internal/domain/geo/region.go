// Package geo maps postal codes and device categories to the short codes
// embedded in order identifiers.
package geo

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var defaultRegionsYAML []byte

var (
	ErrEmptyRegionTable  = errors.New("region table has no ranges")
	ErrInvalidPostalSpan = errors.New("invalid postal range")
)

// Region is the (region code, sub-region code) pair of an order identifier.
type Region struct {
	Code      string `yaml:"region"`
	SubRegion string `yaml:"sub_region"`
}

// PostalRange is an inclusive range of 6-digit postal codes.
type PostalRange struct {
	From      int    `yaml:"from"`
	To        int    `yaml:"to"`
	Region    string `yaml:"region"`
	SubRegion string `yaml:"sub_region"`
}

type regionFile struct {
	Default Region        `yaml:"default"`
	Ranges  []PostalRange `yaml:"ranges"`
}

// RegionTable resolves postal codes by linear scan over ordered ranges.
// Ranges are expected to be disjoint; that is not checked here.
type RegionTable struct {
	ranges   []PostalRange
	fallback Region
}

// ParseRegionTable reads a YAML region table.
func ParseRegionTable(data []byte) (*RegionTable, error) {
	var f regionFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse region table: %w", err)
	}
	if len(f.Ranges) == 0 {
		return nil, ErrEmptyRegionTable
	}
	for i, r := range f.Ranges {
		if r.From > r.To || r.From < 0 || r.To > 999999 || r.Region == "" || len(r.SubRegion) != 2 {
			return nil, fmt.Errorf("%w at index %d: %+v", ErrInvalidPostalSpan, i, r)
		}
	}
	if f.Default.Code == "" || len(f.Default.SubRegion) != 2 {
		return nil, fmt.Errorf("region table default is incomplete: %+v", f.Default)
	}
	return &RegionTable{ranges: f.Ranges, fallback: f.Default}, nil
}

// LoadRegionTable reads a region table from path, or the embedded table when
// path is empty.
func LoadRegionTable(path string) (*RegionTable, error) {
	if path == "" {
		return DefaultRegionTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read region table %s: %w", path, err)
	}
	return ParseRegionTable(data)
}

var defaultRegionTable = mustParse(defaultRegionsYAML)

// DefaultRegionTable returns the built-in table.
func DefaultRegionTable() *RegionTable {
	return defaultRegionTable
}

func mustParse(data []byte) *RegionTable {
	t, err := ParseRegionTable(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Default is the pair returned for postal codes outside every range.
func (t *RegionTable) Default() Region {
	return t.fallback
}

// Lookup returns the region of postalCode and whether a range matched.
func (t *RegionTable) Lookup(postalCode string) (Region, bool) {
	n, ok := NormalizePostalCode(postalCode)
	if !ok {
		return t.fallback, false
	}
	for _, r := range t.ranges {
		if n >= r.From && n <= r.To {
			return Region{Code: r.Region, SubRegion: r.SubRegion}, true
		}
	}
	return t.fallback, false
}

// Resolve is Lookup without the match flag.
func (t *RegionTable) Resolve(postalCode string) Region {
	r, _ := t.Lookup(postalCode)
	return r
}

// ResolveRegion resolves against the built-in table.
func ResolveRegion(postalCode string) Region {
	return defaultRegionTable.Resolve(postalCode)
}

// NormalizePostalCode turns "600 005", "60005" or "600005" into an integer in
// [0, 999999]. Short codes are left-padded with zeros.
func NormalizePostalCode(postalCode string) (int, bool) {
	s := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(postalCode))
	if s == "" || len(s) > 6 {
		return 0, false
	}
	s = strings.Repeat("0", 6-len(s)) + s
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
