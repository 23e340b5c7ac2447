// Package validate evaluates declarative per-field rule tables against
// incoming request bodies. Rules run in declared order and every violated
// rule is collected, so a submission with several bad fields reports all of
// them in a single message.
package validate

import (
	"regexp"
	"strings"
)

// Rule is one field check. When is an optional applicability guard: rules
// for optional fields only run when the field is present. OK reports
// whether the check passed.
type Rule struct {
	When    func() bool
	OK      func() bool
	Message string
}

// Check evaluates rules in order and returns the messages of every
// violated rule.
func Check(rules ...Rule) []string {
	var violations []string
	for _, r := range rules {
		if r.When != nil && !r.When() {
			continue
		}
		if !r.OK() {
			violations = append(violations, r.Message)
		}
	}
	return violations
}

// Error runs Check and joins the violations into a single message, or
// returns "" when everything passed.
func Error(rules ...Rule) string {
	return strings.Join(Check(rules...), "; ")
}

var (
	rePersonNameChars  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	reAccountNameChars = regexp.MustCompile(`^[a-zA-Z0-9\s'-]+$`)
	reAccountTypeChars = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	reLetter           = regexp.MustCompile(`[a-zA-Z]`)
	reLower            = regexp.MustCompile(`[a-z]`)
	reUpper            = regexp.MustCompile(`[A-Z]`)
	reDigit            = regexp.MustCompile(`\d`)
	reEmail            = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func present(v string) func() bool {
	return func() bool { return v != "" }
}

func lengthBetween(v string, min, max int) func() bool {
	return func() bool { return len(v) >= min && len(v) <= max }
}

func maxLength(v string, max int) func() bool {
	return func() bool { return len(v) <= max }
}

func matches(re *regexp.Regexp, v string) func() bool {
	return func() bool { return re.MatchString(v) }
}

// personName requires the charset match plus at least one letter, so a
// value of only spaces or hyphens is rejected.
func personName(v string) func() bool {
	return func() bool { return rePersonNameChars.MatchString(v) && reLetter.MatchString(v) }
}
