// Package patterns holds the fixed vocabulary recognized in application
// log lines. Order matters: reports display levels in the order listed here.
package patterns

import (
	"regexp"
	"strings"
)

var (
	levels        = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}
	sources       = []string{"django.request", "django.security", "django.db.backends", "django.core.management"}
	methods       = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	errorKeywords = []string{"Internal Server Error", "OSError"}
)

// Levels returns the severity levels in display order.
func Levels() []string { return clone(levels) }

// Sources returns the recognized log source identifiers.
func Sources() []string { return clone(sources) }

// Methods returns the recognized request method tokens.
func Methods() []string { return clone(methods) }

// ErrorKeywords returns the generic error keywords that may precede an endpoint.
func ErrorKeywords() []string { return clone(errorKeywords) }

// RequestSource is the source whose lines carry request endpoints.
const RequestSource = "django.request"

// Alternation joins tokens into a regexp alternation, quoting each one.
func Alternation(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return strings.Join(quoted, "|")
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
