package geo

import "strings"

const (
	CategoryCodeCamera = "CAMR"
	CategoryCodePhone  = "PHNE"
	CategoryCodeLaptop = "LPTP"
	CategoryCodeTablet = "TBLT"
)

type categoryRule struct {
	kind   string
	brands []string
	code   string
}

// Brand-specific rules come before the generic rule of the same kind.
var categoryRules = []categoryRule{
	{kind: "camera", code: CategoryCodeCamera},
	{kind: "phone", brands: []string{"apple", "iphone"}, code: "APPL"},
	{kind: "phone", brands: []string{"samsung"}, code: "SMSG"},
	{kind: "phone", brands: []string{"oneplus", "one plus"}, code: "ONEP"},
	{kind: "phone", brands: []string{"google", "pixel"}, code: "PIXL"},
	{kind: "phone", code: CategoryCodePhone},
	{kind: "laptop", brands: []string{"apple", "macbook"}, code: "MACB"},
	{kind: "laptop", code: CategoryCodeLaptop},
	{kind: "tablet", brands: []string{"apple", "ipad"}, code: "IPAD"},
	{kind: "tablet", brands: []string{"samsung"}, code: "STAB"},
	{kind: "tablet", code: CategoryCodeTablet},
}

func categoryKind(category string) string {
	switch {
	case strings.Contains(category, "camera"), strings.Contains(category, "dslr"):
		return "camera"
	case strings.Contains(category, "phone"), strings.Contains(category, "mobile"):
		return "phone"
	case strings.Contains(category, "laptop"), strings.Contains(category, "notebook"):
		return "laptop"
	case strings.Contains(category, "tablet"), strings.Contains(category, "ipad"):
		return "tablet"
	}
	return ""
}

// ResolveCategoryCode maps a product category and optional brand to the
// 4-letter category code. Anything unrecognised falls back to the camera code.
func ResolveCategoryCode(category, brand string) string {
	kind := categoryKind(strings.ToLower(strings.TrimSpace(category)))
	b := strings.Join(strings.Fields(strings.ToLower(brand)), " ")

	for _, rule := range categoryRules {
		if rule.kind != kind {
			continue
		}
		if len(rule.brands) == 0 {
			return rule.code
		}
		for _, want := range rule.brands {
			if b == want {
				return rule.code
			}
		}
	}
	return CategoryCodeCamera
}
