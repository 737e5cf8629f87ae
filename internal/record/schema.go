package record

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var frontMatterSchemaSource []byte

var frontMatterSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("frontmatter.json", bytes.NewReader(frontMatterSchemaSource)); err != nil {
		return nil, err
	}
	return compiler.Compile("frontmatter.json")
})

type schemaIssue struct {
	location string
	message  string
}

// checkShape validates field types. Presence is checked separately so that
// missing fields are reported in a fixed order.
func checkShape(fields map[string]any) error {
	schema, err := frontMatterSchema()
	if err != nil {
		return fmt.Errorf("content record: compile front matter schema: %w", err)
	}

	payload, err := jsonCompatible(fields)
	if err != nil {
		return err
	}

	err = schema.Validate(payload)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return newParseError(KindInvalidField, "", "", err.Error())
	}

	issues := collectIssues(validationErr)
	if len(issues) == 0 {
		return newParseError(KindInvalidField, "", "", validationErr.Message)
	}
	first := issues[0]
	return newParseError(KindInvalidField, canonicalKey(fieldFromLocation(first.location)), "", first.message)
}

// jsonCompatible round trips the known keys through JSON so the validator
// sees plain JSON values. Extra keys are not part of the schema and are left
// out; a known value JSON cannot encode (NaN, non-string map keys) is an
// InvalidField for that key.
func jsonCompatible(fields map[string]any) (any, error) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		if _, known := knownKeys[key]; known {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	known := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		encoded, err := json.Marshal(fields[key])
		if err != nil {
			return nil, newParseError(KindInvalidField, canonicalKey(key), "", fmt.Sprintf("%s: %v", key, err))
		}
		known[key] = encoded
	}

	encoded, err := json.Marshal(known)
	if err != nil {
		return nil, newParseError(KindMalformedDocument, "", "", fmt.Sprintf("front matter: %v", err))
	}
	var out any
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	if err := decoder.Decode(&out); err != nil {
		return nil, newParseError(KindMalformedDocument, "", "", fmt.Sprintf("front matter: %v", err))
	}
	return out, nil
}

func collectIssues(err *jsonschema.ValidationError) []schemaIssue {
	issues := []schemaIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, schemaIssue{
				location: strings.TrimSpace(node.InstanceLocation),
				message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].location < issues[j].location
	})
	return issues
}

func fieldFromLocation(location string) string {
	location = strings.TrimPrefix(location, "#")
	location = strings.TrimPrefix(location, "/")
	if idx := strings.Index(location, "/"); idx >= 0 {
		location = location[:idx]
	}
	return location
}

func canonicalKey(key string) string {
	for canonical, aliases := range fieldAliases {
		for _, alias := range aliases {
			if alias == key {
				return canonical
			}
		}
	}
	return key
}
