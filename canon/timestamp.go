package canon

import (
	"fmt"
	"time"
)

// rfc3339Second is time.RFC3339 with the fractional-second component
// dropped — the layout every committed payload's timestamp field must
// serialize to (spec.md §3.1: "Timestamp: RFC 3339, UTC, second
// precision in committed payloads"). Sub-second precision would change
// next_root/checkpoint_digest/attestation-signature bytes across
// implementations that serialize at different granularities — see
// spec.md §9.4's open question on this exact point.
const rfc3339Second = "2006-01-02T15:04:05Z"

// Timestamp is a UTC, whole-second instant suitable for embedding in
// any structure whose canonical bytes are committed to a digest or a
// signature. It marshals to and parses from exactly rfc3339Second,
// never RFC3339Nano — this is what keeps Canonicalize deterministic
// across implementations that might otherwise carry different
// sub-second clock resolutions.
type Timestamp struct {
	t time.Time
}

// NewTimestamp truncates t to whole-second UTC precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.UTC().Truncate(time.Second)}
}

// Now returns the current time as a Timestamp.
func Now() Timestamp {
	return NewTimestamp(time.Now())
}

// Time returns the underlying time.Time value.
func (ts Timestamp) Time() time.Time { return ts.t }

func (ts Timestamp) String() string { return ts.t.Format(rfc3339Second) }

func (ts Timestamp) Before(other Timestamp) bool { return ts.t.Before(other.t) }
func (ts Timestamp) After(other Timestamp) bool  { return ts.t.After(other.t) }
func (ts Timestamp) Sub(other Timestamp) time.Duration { return ts.t.Sub(other.t) }
func (ts Timestamp) Add(d time.Duration) Timestamp {
	return NewTimestamp(ts.t.Add(d))
}
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// MarshalJSON renders ts at second precision, always with the "Z"
// suffix (spec.md §6.2).
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.t.UTC().Format(rfc3339Second) + `"`), nil
}

// UnmarshalJSON parses an RFC 3339 string, truncating any fractional
// seconds it carries.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: timestamp must be a JSON string", ErrInvalidValue)
	}
	parsed, err := time.Parse(time.RFC3339, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	*ts = NewTimestamp(parsed)
	return nil
}
