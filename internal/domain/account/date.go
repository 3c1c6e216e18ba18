package account

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/swaggest/jsonschema-go"
)

// DateLayout is a wire format of Date.
const DateLayout = "2006-01-02"

// Date is a calendar day without time and zone.
type Date struct {
	time.Time
}

var _ jsonschema.Exposer = Date{}

// ParseDate parses YYYY-MM-DD value.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}

	return Date{Time: t}, nil
}

// String returns YYYY-MM-DD value.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string

	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	v, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = v

	return nil
}

// JSONSchema exposes Date JSON schema, implements jsonschema.Exposer.
func (Date) JSONSchema() (jsonschema.Schema, error) {
	s := jsonschema.Schema{}
	s.
		WithType(jsonschema.String.Type()).
		WithFormat("date").
		WithExamples("1990-12-31")

	return s, nil
}
