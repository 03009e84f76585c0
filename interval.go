package coerce

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/sosodev/duration"
)

// AsDuration fails with ErrInvalidArgument when value cannot be
// interpreted as a duration.
func AsDuration(value any) (time.Duration, error) {
	if result := TryDuration(value); result != nil {
		return *result, nil
	}
	return 0, invalidArgument("duration", value)
}

// TryDuration passes durations through unchanged and diffs instants
// against the current moment. Integers are disambiguated by magnitude: a
// value below one tenth of the current Unix timestamp is a second count,
// anything larger is a timestamp whose diff against now is returned.
// Floats truncate to integer seconds first. Strings without an interior
// space are tried as strict ISO-8601 duration literals before falling back
// to the relative expression parser.
func TryDuration(value any) *time.Duration {
	switch actual := value.(type) {
	case nil:
		return nil
	case time.Duration:
		return &actual
	case time.Time:
		result := actual.Sub(timeNow())
		return &result
	case *time.Time:
		if actual == nil {
			return nil
		}
		result := actual.Sub(timeNow())
		return &result
	}
	if isNumeric(reflect.ValueOf(value)) {
		parsed := tryFloat64(value)
		if parsed == nil {
			return nil
		}
		seconds := int64(*parsed)
		if seconds < timeNow().Unix()/10 {
			result := time.Duration(seconds) * time.Second
			return &result
		}
		moment := TryTime(seconds)
		if moment == nil {
			return nil
		}
		result := moment.Sub(timeNow())
		return &result
	}
	text := TryString(value)
	if text == nil {
		return nil
	}
	return parseDuration(*text)
}

// ToDuration collapses unconvertible values to a zero duration.
func ToDuration(value any) time.Duration {
	if result := TryDuration(value); result != nil {
		return *result
	}
	return 0
}

func parseDuration(text string) *time.Duration {
	trimmed := strings.TrimSpace(text)
	if !strings.Contains(trimmed, " ") {
		if parsed, err := duration.Parse(trimmed); err == nil {
			result := parsed.ToTimeDuration()
			return &result
		}
	}
	base := timeNow()
	// the relative parser matches one quantity at a time, so compound
	// counts such as "2 weeks 1 day" are summed component-wise
	if components := quantityComponents(trimmed); components != nil {
		var total time.Duration
		for _, component := range components {
			// bare counts only match the parser's deadline form
			match, err := relativeParser.Parse("in "+component, base)
			if err != nil || match == nil {
				return nil
			}
			total += match.Time.Sub(base)
		}
		return &total
	}
	if match, err := relativeParser.Parse(trimmed, base); err == nil && match != nil {
		result := match.Time.Sub(base)
		return &result
	}
	return nil
}

var quantityExpr = regexp.MustCompile(`(?i)^(?:(?:within|in)\s+)?(?:\d+\s*(?:seconds?|minutes?|hours?|days?|weeks?|months?|years?)\s*)+$`)
var quantityComponent = regexp.MustCompile(`(?i)(\d+)\s*(seconds?|minutes?|hours?|days?|weeks?|months?|years?)`)

// quantityComponents splits a quantity expression into its "count unit"
// pairs, or returns nil when text is not composed entirely of them.
func quantityComponents(text string) []string {
	if !quantityExpr.MatchString(text) {
		return nil
	}
	matches := quantityComponent.FindAllStringSubmatch(text, -1)
	result := make([]string, 0, len(matches))
	for _, match := range matches {
		result = append(result, match[1]+" "+match[2])
	}
	return result
}
