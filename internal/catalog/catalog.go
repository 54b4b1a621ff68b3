// Package catalog holds the static reference list of common medications.
// It is lookup data only, independent of anything the user registers.
package catalog

import "strings"

type MedicationInfo struct {
	Name              string   `json:"name"`
	GenericName       string   `json:"genericName,omitempty"`
	BrandNames        []string `json:"brandNames,omitempty"`
	Dosages           []string `json:"dosages"`
	CommonFrequencies []string `json:"commonFrequencies"`
	Category          string   `json:"category"`
	RequiresFood      bool     `json:"requiresFood"`
	EmptyStomach      bool     `json:"emptyStomach"`
	CommonSideEffects []string `json:"commonSideEffects"`
	Description       string   `json:"description"`
	Shape             string   `json:"shape,omitempty"`
	Colors            []string `json:"color,omitempty"`
}

const (
	emptyQueryLimit = 10
	searchLimit     = 20
)

// Search matches the query case-insensitively as a substring of the name,
// generic name, any brand name, or the category. An empty query returns
// the first ten entries. Results keep catalog declaration order.
func Search(query string) []MedicationInfo {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return medications[:emptyQueryLimit]
	}

	matches := make([]MedicationInfo, 0, searchLimit)
	for _, medication := range medications {
		if medicationMatches(medication, term) {
			matches = append(matches, medication)
			if len(matches) == searchLimit {
				break
			}
		}
	}
	return matches
}

// Lookup finds a single entry by exact case-insensitive name, generic
// name, or brand name.
func Lookup(name string) (MedicationInfo, bool) {
	term := strings.ToLower(strings.TrimSpace(name))
	for _, medication := range medications {
		if strings.ToLower(medication.Name) == term ||
			strings.ToLower(medication.GenericName) == term {
			return medication, true
		}
		for _, brand := range medication.BrandNames {
			if strings.ToLower(brand) == term {
				return medication, true
			}
		}
	}
	return MedicationInfo{}, false
}

// ByCategory returns every entry whose category contains the given
// string, case-insensitively.
func ByCategory(category string) []MedicationInfo {
	term := strings.ToLower(category)
	matches := make([]MedicationInfo, 0)
	for _, medication := range medications {
		if strings.Contains(strings.ToLower(medication.Category), term) {
			matches = append(matches, medication)
		}
	}
	return matches
}

func medicationMatches(medication MedicationInfo, term string) bool {
	if strings.Contains(strings.ToLower(medication.Name), term) ||
		strings.Contains(strings.ToLower(medication.GenericName), term) ||
		strings.Contains(strings.ToLower(medication.Category), term) {
		return true
	}
	for _, brand := range medication.BrandNames {
		if strings.Contains(strings.ToLower(brand), term) {
			return true
		}
	}
	return false
}
