package serializer

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// DateLayout is the format dates are written in.
const DateLayout = "2006-01-02"

// dateInputLayout also takes one-digit months and days ("2021-3-4").
const dateInputLayout = "2006-1-2"

// "5.0" and "5.00 " are accepted as the integer 5
var integralSuffix = regexp.MustCompile(`\.0*\s*$`)

// Reader pulls typed values out of Fields, collecting presence and type
// violations as it goes. Missing or mistyped fields read as zero values.
type Reader struct {
	fields Fields
	errs   FieldErrors
}

func NewReader(fields Fields) *Reader {
	if fields == nil {
		fields = Fields{}
	}
	return &Reader{fields: fields, errs: FieldErrors{}}
}

// lookup returns the raw value of a required, non-null field.
func (r *Reader) lookup(name string) (any, bool) {
	v, ok := r.fields[name]
	if !ok {
		r.errs.Add(name, MsgRequired)
		return nil, false
	}
	if v == nil {
		r.errs.Add(name, MsgNull)
		return nil, false
	}
	return v, true
}

// String reads a string field, trimming surrounding whitespace. Numbers are
// accepted and kept in their textual form.
func (r *Reader) String(name string) string {
	v, ok := r.lookup(name)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	if text, ok := numberText(v); ok {
		return text
	}
	r.errs.Add(name, MsgInvalidString)
	return ""
}

// Integer reads an integer given as a JSON number or numeric string.
func (r *Reader) Integer(name string) int64 {
	v, ok := r.lookup(name)
	if !ok {
		return 0
	}
	n, ok := parseInteger(v)
	if !ok {
		r.errs.Add(name, MsgInvalidInteger)
		return 0
	}
	return n
}

// PrimaryKey reads a reference to another entity by id. Whether the id
// exists is for the caller to check (see AddError).
func (r *Reader) PrimaryKey(name string) int64 {
	v, ok := r.lookup(name)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case bool, []any, map[string]any:
		r.errs.Add(name, MsgPKIncorrectType(typeName(v)))
		return 0
	case string:
		// an empty form value means no reference at all
		if t == "" {
			r.errs.Add(name, MsgNull)
			return 0
		}
	}
	n, ok := parseInteger(v)
	if !ok {
		r.errs.Add(name, MsgPKIncorrectType(typeName(v)))
		return 0
	}
	return n
}

// ParseDate parses YYYY-MM-DD, allowing one-digit month and day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateInputLayout, s)
}

// Date reads a YYYY-MM-DD date. The result is midnight UTC.
func (r *Reader) Date(name string) time.Time {
	v, ok := r.lookup(name)
	if !ok {
		return time.Time{}
	}
	s, ok := v.(string)
	if !ok {
		r.errs.Add(name, MsgInvalidDate)
		return time.Time{}
	}
	t, err := ParseDate(strings.TrimSpace(s))
	if err != nil {
		r.errs.Add(name, MsgInvalidDate)
		return time.Time{}
	}
	return t
}

// Decimal reads an exact decimal given as a JSON number or numeric string.
func (r *Reader) Decimal(name string) decimal.Decimal {
	v, ok := r.lookup(name)
	if !ok {
		return decimal.Zero
	}

	var text string
	switch t := v.(type) {
	case string:
		text = strings.TrimSpace(t)
	default:
		n, ok := numberText(v)
		if !ok {
			r.errs.Add(name, MsgInvalidNumber)
			return decimal.Zero
		}
		text = n
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		r.errs.Add(name, MsgInvalidNumber)
		return decimal.Zero
	}
	return d
}

// AddError records a violation found outside the reader, e.g. a missing referenced row.
func (r *Reader) AddError(field, msg string) {
	r.errs.Add(field, msg)
}

func (r *Reader) Errors() FieldErrors {
	return r.errs
}

// Validate runs v's rules, merges them with the read errors and returns
// the combined FieldErrors, or nil when the request is valid.
func (r *Reader) Validate(v validation.Validatable) error {
	if err := r.errs.Merge(v.Validate()); err != nil {
		return err
	}
	return r.errs.OrNil()
}

func parseInteger(v any) (int64, bool) {
	var text string
	switch t := v.(type) {
	case string:
		text = strings.TrimSpace(t)
	default:
		n, ok := numberText(v)
		if !ok {
			return 0, false
		}
		text = n
	}

	text = integralSuffix.ReplaceAllString(text, "")
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// numberText returns the literal text of a decoded JSON number.
func numberText(v any) (string, bool) {
	switch t := v.(type) {
	case json.Number:
		return t.String(), true
	case interface {
		Int64() (int64, error)
		String() string
	}:
		return t.String(), true
	}
	return "", false
}
