// Pickle codec for profile records. Anki reads the profiles table with
// Python's pickle.loads, so the blob format is fixed by the consumer: a dict
// with string keys and None/bool/int/str/list values. og-rek provides the
// wire format; this file owns the mapping to and from Record.
package prefs

import (
	"bytes"
	"fmt"
	"math/big"

	pickle "github.com/kisielk/og-rek"
)

// Record is a profile record as stored in the profiles table: an opaque
// mapping from the store's perspective, interpreted only by this package.
// Keys are strings; values are pickle-compatible (nil maps to Python None
// via pickle.None).
type Record map[any]any

// pickleProtocol is the pickle protocol version written to the store.
// Protocol 2 is readable by every Python 2.3+ and 3.x pickle module.
const pickleProtocol = 2

// EncodeRecord serializes a record to a pickle blob.
func EncodeRecord(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := pickle.NewEncoderWithConfig(&buf, &pickle.EncoderConfig{
		Protocol: pickleProtocol,
	})
	if err := enc.Encode(map[any]any(rec)); err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeRecord parses a pickle blob into a record.
func DecodeRecord(data []byte) (Record, error) {
	dec := pickle.NewDecoder(bytes.NewReader(data))
	v, err := dec.Decode()
	if err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	m, ok := v.(map[any]any)
	if !ok {
		return nil, fmt.Errorf("decoding record: expected dict, got %T", v)
	}
	return Record(m), nil
}

// JSONView converts a record into a string-keyed map suitable for
// encoding/json output. Python None becomes nil; oversized pickle longs
// are rendered as their decimal string.
func (r Record) JSONView() map[string]any {
	out := make(map[string]any, len(r))
	for k, v := range r {
		key, ok := k.(string)
		if !ok {
			key = fmt.Sprint(k)
		}
		out[key] = jsonValue(v)
	}
	return out
}

func jsonValue(v any) any {
	switch val := v.(type) {
	case pickle.None:
		return nil
	case *big.Int:
		return val.String()
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = jsonValue(item)
		}
		return items
	case map[any]any:
		return Record(val).JSONView()
	default:
		return val
	}
}
