// Package record parses content documents made of a YAML front matter block
// and a Markdown body into typed ContentItem values, validates them against
// the content-item schema and reports non-fatal warnings such as dangling
// recommendations.
package record
