package canon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeSortsKeys(t *testing.T) {
	v := map[string]any{"b": 1, "a": 2}
	b, err := Canonicalize(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"b":1}`, string(b))
}

func TestCanonicalizeNestedObjectsSortAtEveryDepth(t *testing.T) {
	v := map[string]any{
		"outer": map[string]any{"z": 1, "y": 2},
		"a":     true,
	}
	b, err := Canonicalize(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a":true,"outer":{"y":2,"z":1}}`, string(b))
}

func TestCanonicalizeIsDeterministic(t *testing.T) {
	v := map[string]any{"corridor_id": "pk-ae-001", "sequence": 3}
	b1, err := Canonicalize(v)
	require.NoError(t, err)
	b2, err := Canonicalize(v)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestCanonicalizeRejectsFloat(t *testing.T) {
	_, err := Canonicalize(map[string]any{"amount": 1.5})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestCanonicalizeRejectsNaNAndInfinity(t *testing.T) {
	_, err := Canonicalize(map[string]any{"x": math_NaN()})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = Canonicalize(map[string]any{"x": math.Inf(1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestCanonicalizeNormalizesStringsToNFC(t *testing.T) {
	// "é" as e + combining acute accent (NFD) must canonicalize the
	// same as the single precomposed code point (NFC).
	nfd := "é"
	nfc := "é"
	bNFD, err := Canonicalize(map[string]any{"name": nfd})
	require.NoError(t, err)
	bNFC, err := Canonicalize(map[string]any{"name": nfc})
	require.NoError(t, err)
	assert.Equal(t, bNFC, bNFD)
}

func TestCanonicalizeStruct(t *testing.T) {
	type payload struct {
		B int    `json:"b"`
		A string `json:"a"`
	}
	b, err := Canonicalize(payload{B: 2, A: "x"})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"x","b":2}`, string(b))
}

func TestCanonicalizeRejectsUnsafeInteger(t *testing.T) {
	_, err := Canonicalize(map[string]any{"big": int64(1) << 60})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestDigestValueIsDeterministic(t *testing.T) {
	v := map[string]any{"zone_genesis": "pk-sifc"}
	d1, err := DigestValue(v)
	require.NoError(t, err)
	d2, err := DigestValue(v)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1.Hex(), 64)
}

func TestParseDigestRejectsUppercase(t *testing.T) {
	_, err := ParseDigest("AB" + string(make([]byte, 62)))
	require.Error(t, err)
}

func math_NaN() float64 {
	var zero float64
	return zero / zero
}
