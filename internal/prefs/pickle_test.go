package prefs

import (
	"bytes"
	"math/big"
	"testing"

	pickle "github.com/kisielk/og-rek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_RoundTrip(t *testing.T) {
	rec := Record{
		"name":      "User 1",
		"count":     int64(42),
		"firstRun":  false,
		"syncMedia": true,
		"syncKey":   pickle.None{},
		"history":   []any{"deck:Default", "tag:leech"},
		"empty":     []any{},
	}

	data, err := EncodeRecord(rec)
	require.NoError(t, err)

	got, err := DecodeRecord(data)
	require.NoError(t, err)

	assert.Equal(t, "User 1", got["name"])
	assert.Equal(t, int64(42), got["count"])
	assert.Equal(t, false, got["firstRun"])
	assert.Equal(t, true, got["syncMedia"])
	assert.Equal(t, pickle.None{}, got["syncKey"])
	assert.Equal(t, []any{"deck:Default", "tag:leech"}, got["history"])
	assert.Len(t, got["empty"], 0)
}

func TestRecord_RoundTripLargeInt(t *testing.T) {
	// Profile ids are 19 decimal digits; they must survive the trip intact.
	rec := Record{"id": int64(8_765_432_109_876_543_210)}

	data, err := EncodeRecord(rec)
	require.NoError(t, err)

	got, err := DecodeRecord(data)
	require.NoError(t, err)

	switch id := got["id"].(type) {
	case int64:
		assert.Equal(t, int64(8_765_432_109_876_543_210), id)
	case *big.Int:
		assert.Equal(t, "8765432109876543210", id.String())
	default:
		t.Fatalf("unexpected id type %T", got["id"])
	}
}

func TestDecodeRecord_NotADict(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, pickle.NewEncoder(&buf).Encode("not a dict"))

	_, err := DecodeRecord(buf.Bytes())
	assert.ErrorContains(t, err, "expected dict")
}

func TestDecodeRecord_Garbage(t *testing.T) {
	_, err := DecodeRecord([]byte{0xff, 0x00, 0x01})
	assert.Error(t, err)
}

func TestRecord_JSONView(t *testing.T) {
	rec := Record{
		"syncKey":  pickle.None{},
		"syncUser": "user@example.com",
		"count":    int64(3),
		"id":       big.NewInt(42),
		"nested":   map[any]any{"inner": pickle.None{}},
		"items":    []any{pickle.None{}, "x"},
	}

	view := rec.JSONView()
	assert.Nil(t, view["syncKey"])
	assert.Equal(t, "user@example.com", view["syncUser"])
	assert.Equal(t, int64(3), view["count"])
	assert.Equal(t, "42", view["id"])
	assert.Equal(t, map[string]any{"inner": nil}, view["nested"])
	assert.Equal(t, []any{nil, "x"}, view["items"])
}
