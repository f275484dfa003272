package book

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"library-api/internal/shared/serializer"
)

// Date is a calendar date without time of day, YYYY-MM-DD on the wire and in storage.
type Date struct {
	time.Time
}

// NewDate drops the time of day and location of t.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := serializer.ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(serializer.DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan accepts what the drivers hand back for a DATE column:
// time.Time (pgx, lib/pq, go-sqlite3) or the raw text.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	case nil:
		return fmt.Errorf("book: cannot scan NULL into Date")
	default:
		return fmt.Errorf("book: cannot scan %T into Date", src)
	}
}

func (d *Date) scanText(s string) error {
	if len(s) > len(serializer.DateLayout) {
		s = s[:len(serializer.DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("book: invalid stored date %q: %w", s, err)
	}
	*d = parsed
	return nil
}

// Value stores the date as YYYY-MM-DD text, which every supported driver
// accepts for a DATE column.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}
