package coerce

import (
	"math"
	"reflect"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// timeNow is indirected so the wall clock reading families are testable.
var timeNow = time.Now

var relativeParser = newRelativeParser()

func newRelativeParser() *when.Parser {
	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)
	return parser
}

// AsTime fails with ErrInvalidArgument when value cannot be interpreted as
// a point in time.
func AsTime(value any, opts ...Option) (time.Time, error) {
	if result := TryTime(value, opts...); result != nil {
		return *result, nil
	}
	return time.Time{}, invalidArgument("time", value)
}

// TryTime passes existing instants through unchanged, adds durations to
// the current moment, reads numerics as Unix timestamps and parses
// stringable values permissively, including relative expressions such as
// "tomorrow".
func TryTime(value any, opts ...Option) *time.Time {
	switch actual := value.(type) {
	case nil:
		return nil
	case time.Time:
		return &actual
	case *time.Time:
		return actual
	case time.Duration:
		result := timeNow().Add(actual)
		return &result
	}
	options := newOptions(opts)
	if isNumeric(reflect.ValueOf(value)) {
		parsed := tryFloat64(value)
		if parsed == nil {
			return nil
		}
		seconds, fraction := math.Modf(*parsed)
		result := time.Unix(int64(seconds), int64(fraction*float64(time.Second))).In(options.location)
		return &result
	}
	text := TryString(value)
	if text == nil {
		return nil
	}
	return parseTime(*text, options.location)
}

// ToTime defaults to the current moment.
func ToTime(value any, opts ...Option) time.Time {
	if result := TryTime(value, opts...); result != nil {
		return *result
	}
	return timeNow()
}

func parseTime(text string, location *time.Location) *time.Time {
	if result, err := dateparse.ParseIn(text, location); err == nil {
		return &result
	}
	if match, err := relativeParser.Parse(text, timeNow()); err == nil && match != nil {
		result := match.Time
		return &result
	}
	return nil
}
