package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the zone-less timestamp the mobile app decodes.
const DateLayout = "2006-01-02T15:04:05"

// Date is a timestamp serialized without a zone offset.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, want %s: %w", s, DateLayout, err)
	}
	d.Time = t
	return nil
}
