package record

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ISO-8601 profiles seen in front matter. Layouts without a zone are read
// as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp in one of the accepted layouts
// and returns it in UTC.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// timestampField keeps the literal scalar text so timestamps are parsed by
// ParseTimestamp rather than by the YAML resolver.
type timestampField struct {
	raw    string
	set    bool
	scalar bool
}

func (t *timestampField) UnmarshalYAML(node *yaml.Node) error {
	t.set = true
	t.scalar = node.Kind == yaml.ScalarNode
	if t.scalar {
		t.raw = strings.TrimSpace(node.Value)
	}
	return nil
}

func (t timestampField) parse(field string) (time.Time, error) {
	if !t.scalar {
		return time.Time{}, newParseError(KindInvalidTimestamp, field, "", "value must be a scalar")
	}
	ts, ok := ParseTimestamp(t.raw)
	if !ok {
		return time.Time{}, newParseError(KindInvalidTimestamp, field, t.raw, "expected ISO-8601")
	}
	return ts, nil
}

// scalarText accepts any scalar and keeps its literal text. Used for ids that
// are often written as bare numbers.
type scalarText string

func (s *scalarText) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = scalarText(strings.TrimSpace(node.Value))
	}
	return nil
}
