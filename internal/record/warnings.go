package record

import "fmt"

// WarningCode classifies non-fatal findings.
type WarningCode string

const (
	WarningDanglingRecommendation  WarningCode = "DanglingRecommendation"
	WarningModifiedBeforePublished WarningCode = "ModifiedBeforePublished"
	WarningMissingAsset            WarningCode = "MissingAsset"
)

// Warning is a finding that never blocks publication. Slug identifies the
// item it belongs to; Target carries the referenced slug or asset path.
type Warning struct {
	Code    WarningCode `json:"code"`
	Slug    string      `json:"slug"`
	Field   string      `json:"field,omitempty"`
	Target  string      `json:"target,omitempty"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	if w.Slug == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", w.Code, w.Slug, w.Message)
}
