package coerce

import (
	"time"

	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
)

// Option customizes record and time coercion.
type Option func(o *options)

type options struct {
	caseFormat text.CaseFormat
	tagName    string
	location   *time.Location
}

func newOptions(opts []Option) *options {
	result := &options{
		caseFormat: text.CaseFormatUndefined,
		tagName:    format.TagName,
		location:   time.Local,
	}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

// WithCaseFormat sets the output case format applied to snapshotted field
// names.
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.caseFormat = caseFormat
	}
}

// WithTagName overrides the struct tag consulted for field name overrides.
func WithTagName(name string) Option {
	return func(o *options) {
		o.tagName = name
	}
}

// WithTimeLocation sets the location used when parsing date/time text.
func WithTimeLocation(location *time.Location) Option {
	return func(o *options) {
		o.location = location
	}
}
