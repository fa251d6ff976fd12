package v2d

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatOption configures a Formatter during creation.
//
// Example:
//
//	f := v2d.NewFormatter(
//	    v2d.WithLanguage(language.German),
//	    v2d.WithPrecision(2),
//	)
//	f.Format(v2d.New(1234.567, 1)) // "(1.234,57, 1)"
type FormatOption func(*formatOptions)

// formatOptions holds optional configuration for Formatter creation.
type formatOptions struct {
	tag       language.Tag
	precision int
	separator string
}

// defaultFormatOptions returns the default formatter options.
func defaultFormatOptions() formatOptions {
	return formatOptions{
		tag:       language.English,
		precision: -1, // shortest round-trip digits
		separator: ", ",
	}
}

// WithLanguage sets the locale used for digits, grouping and the decimal mark.
func WithLanguage(tag language.Tag) FormatOption {
	return func(o *formatOptions) {
		o.tag = tag
	}
}

// WithPrecision sets the maximum number of fraction digits.
// A negative value prints the shortest digits that identify the float64
// exactly, so 1e-7 renders as 0.0000001 rather than 0.
func WithPrecision(n int) FormatOption {
	return func(o *formatOptions) {
		o.precision = n
	}
}

// WithSeparator sets the text placed between the two components.
func WithSeparator(sep string) FormatOption {
	return func(o *formatOptions) {
		o.separator = sep
	}
}

// Formatter renders vectors as localized, human-readable text.
// It is meant for display; the output is not intended to be parsed back.
//
// A Formatter is immutable after creation and safe for concurrent use.
type Formatter struct {
	printer   *message.Printer
	opts      []number.Option
	separator string
}

// NewFormatter creates a Formatter. Without options it formats with
// English conventions, shortest round-trip digits and ", " between
// components.
func NewFormatter(opts ...FormatOption) *Formatter {
	o := defaultFormatOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// MaxFractionDigits(-1) lifts the locale pattern's cap of 3 digits.
	if o.precision < 0 {
		o.precision = -1
	}
	return &Formatter{
		printer:   message.NewPrinter(o.tag),
		opts:      []number.Option{number.MaxFractionDigits(o.precision)},
		separator: o.separator,
	}
}

// Format returns v as "(x<sep>y)".
func (f *Formatter) Format(v Vector2D) string {
	return f.printer.Sprintf("(%v%s%v)",
		number.Decimal(v.x, f.opts...),
		f.separator,
		number.Decimal(v.y, f.opts...),
	)
}
