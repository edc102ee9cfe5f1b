package canon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidValue is returned when a value cannot be canonicalized:
// NaN, infinity, a non-integer number, a number outside the safe
// integer range, or non-UTF-8 input.
var ErrInvalidValue = errors.New("canon: invalid value")

// safeIntegerLimit is the largest magnitude integer that can be
// represented exactly by every conforming implementation (mirrors the
// JavaScript Number.MAX_SAFE_INTEGER bound named in the spec).
const safeIntegerLimit = int64(1)<<53 - 1

// Canonicalize produces the deterministic byte image of v. v may be a
// Go struct (it is round-tripped through encoding/json first, so
// ordinary `json:"..."` tags apply), or already a JSON-compatible
// value tree (map[string]any, []any, string, bool, nil, and integer
// number types).
func Canonicalize(v any) ([]byte, error) {
	val, err := toValueTree(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encodeValue(&buf, val); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toValueTree normalizes v into the plain value tree this package
// encodes: map[string]any, []any, string, bool, nil, json.Number.
func toValueTree(v any) (any, error) {
	switch v.(type) {
	case map[string]any, []any, string, bool, nil, json.Number:
		return v, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return out, nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
		return nil
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case string:
		return encodeString(buf, val)
	case json.Number:
		return encodeNumber(buf, val)
	case float64:
		// float64 only arises when a caller hand-built a map[string]any
		// with a float literal rather than going through json.Marshal;
		// treat it with the same integer-only rule.
		return encodeNumber(buf, json.Number(strconv.FormatFloat(val, 'f', -1, 64)))
	case int:
		return encodeNumber(buf, json.Number(strconv.Itoa(val)))
	case int64:
		return encodeNumber(buf, json.Number(strconv.FormatInt(val, 10)))
	case uint64:
		return encodeNumber(buf, json.Number(strconv.FormatUint(val, 10)))
	case map[string]any:
		return encodeObject(buf, val)
	case []any:
		return encodeArray(buf, val)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

func encodeObject(buf *bytes.Buffer, obj map[string]any) error {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeString(buf, k); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeValue(buf, obj[k]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeArray(buf *bytes.Buffer, arr []any) error {
	buf.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(buf, elem); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: string is not valid UTF-8", ErrInvalidValue)
	}
	normalized := norm.NFC.String(s)
	b, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	buf.Write(b)
	return nil
}

func encodeNumber(buf *bytes.Buffer, n json.Number) error {
	s := n.String()
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("%w: unparseable number %q", ErrInvalidValue, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: NaN and infinity are forbidden", ErrInvalidValue)
	}
	if containsDecimalPoint(s) {
		return fmt.Errorf("%w: decimal numbers are forbidden in committed payloads: %q", ErrInvalidValue, s)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: non-integer number %q", ErrInvalidValue, s)
	}
	if i > safeIntegerLimit || i < -safeIntegerLimit {
		return fmt.Errorf("%w: integer %d outside safe range", ErrInvalidValue, i)
	}
	buf.WriteString(strconv.FormatInt(i, 10))
	return nil
}

func containsDecimalPoint(s string) bool {
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return true
		}
	}
	return false
}
