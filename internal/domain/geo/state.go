package geo

import "strings"

var stateCodes = map[string]string{
	"andhra pradesh":    "AP",
	"assam":             "AS",
	"bihar":             "BR",
	"chandigarh":        "CH",
	"chhattisgarh":      "CG",
	"delhi":             "DL",
	"new delhi":         "DL",
	"goa":               "GA",
	"gujarat":           "GJ",
	"haryana":           "HR",
	"himachal pradesh":  "HP",
	"jammu and kashmir": "JK",
	"jharkhand":         "JH",
	"karnataka":         "KA",
	"kerala":            "KL",
	"madhya pradesh":    "MP",
	"maharashtra":       "MH",
	"odisha":            "OD",
	"orissa":            "OD",
	"puducherry":        "PY",
	"pondicherry":       "PY",
	"punjab":            "PB",
	"rajasthan":         "RJ",
	"tamil nadu":        "TN",
	"tamilnadu":         "TN",
	"telangana":         "TS",
	"uttar pradesh":     "UP",
	"uttarakhand":       "UK",
	"west bengal":       "WB",
}

// StateCode maps a state name (or an already-coded value like "TN") to its
// region code.
func StateCode(name string) (string, bool) {
	n := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	if n == "" {
		return "", false
	}
	if code, ok := stateCodes[n]; ok {
		return code, true
	}
	upper := strings.ToUpper(n)
	for _, code := range stateCodes {
		if code == upper {
			return code, true
		}
	}
	return "", false
}
