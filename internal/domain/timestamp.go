package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// Timestamp is a point in time that accepts the loose encodings clients send
// for "last updated": RFC 3339 strings (with or without fractional seconds),
// bare dates, unix milliseconds, or null.
type Timestamp struct {
	time.Time
}

// Epoch milliseconds outside years 0001 through 9999 cannot be written back
// as RFC 3339.
const (
	minEpochMillis = -62135596800000
	maxEpochMillis = 253402300799999
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t.UTC()} }

func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t), nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognised timestamp %q", s)
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := ParseTimestamp(s)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}
	var ms float64
	if err := json.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("lastUpdated must be a date string or epoch milliseconds: %w", err)
	}
	if math.IsNaN(ms) || ms < minEpochMillis || ms > maxEpochMillis {
		return fmt.Errorf("lastUpdated must be a date string or epoch milliseconds: %v is out of range", ms)
	}
	*t = NewTimestamp(time.UnixMilli(int64(ms)))
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
