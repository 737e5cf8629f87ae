package record

import "fmt"

// ValidateCrossReferences returns one DanglingRecommendation warning per
// recommended slug missing from knownSlugs. The item is not modified.
func ValidateCrossReferences(item *ContentItem, knownSlugs SlugSet) []Warning {
	if item == nil {
		return nil
	}
	var warnings []Warning
	for _, target := range item.Recommended {
		if knownSlugs.Has(target) {
			continue
		}
		warnings = append(warnings, Warning{
			Code:    WarningDanglingRecommendation,
			Slug:    item.Slug,
			Field:   keyRecommended,
			Target:  target,
			Message: fmt.Sprintf("recommended slug %q does not exist", target),
		})
	}
	return warnings
}
