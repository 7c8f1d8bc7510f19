package model

// Record is one structured result of matching a single log line.
// Keys are the named capture groups of the pattern that produced it;
// groups that did not participate in the match map to "".
type Record map[string]string

// Field names produced by the built-in report patterns.
const (
	FieldLevel    = "level"
	FieldSource   = "source"
	FieldEndpoint = "endpoint"
)

// Get returns the value of a field, or "" when the field is absent.
func (r Record) Get(field string) string {
	return r[field]
}
