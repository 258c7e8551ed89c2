package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Timestamp is a date field that upstream sources send as ISO strings,
// date-only strings, Unix milliseconds or BSON datetimes. Present is true
// whenever a non-empty value was supplied, even one that failed to parse.
// Zero milliseconds count as absent.
type Timestamp struct {
	Time    time.Time
	Present bool
	Raw     string
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses raw with the layouts upstream APIs are known to use.
// Values without a zone are read as UTC.
func ParseTimestamp(raw string) Timestamp {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Timestamp{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return Timestamp{Time: t, Present: true}
		}
	}
	return Timestamp{Present: true, Raw: trimmed}
}

// At wraps a known time.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t, Present: true}
}

// Valid reports whether the timestamp holds a parsed time.
func (t Timestamp) Valid() bool {
	return t.Present && !t.Time.IsZero()
}

func (t Timestamp) IsZero() bool {
	return !t.Present
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null" || trimmed == "":
		*t = Timestamp{}
		return nil
	case strings.HasPrefix(trimmed, `"`):
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*t = ParseTimestamp(value)
		return nil
	default:
		millis, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return fmt.Errorf("cannot decode %s into Timestamp", trimmed)
		}
		if millis == 0 {
			*t = Timestamp{}
			return nil
		}
		*t = At(time.UnixMilli(int64(millis)).UTC())
		return nil
	}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	switch {
	case t.Valid():
		return json.Marshal(t.Time.Format(time.RFC3339Nano))
	case t.Present:
		return json.Marshal(t.Raw)
	default:
		return []byte("null"), nil
	}
}

func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch {
	case t.Valid():
		return bson.MarshalValue(t.Time)
	case t.Present:
		return bson.MarshalValue(t.Raw)
	default:
		return bson.MarshalValue(nil)
	}
}
