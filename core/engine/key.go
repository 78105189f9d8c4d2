package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Key is the ordered tuple of primary-key values identifying one record.
// It marshals to JSON as a plain array of values.
type Key struct {
	Values []any
}

// String renders the key tuple for error messages and reports,
// e.g. (42, "acme").
func (k Key) String() string {
	parts := make([]string, len(k.Values))
	for i, v := range k.Values {
		switch t := v.(type) {
		case string:
			parts[i] = strconv.Quote(t)
		case time.Time:
			parts[i] = t.UTC().Format(time.RFC3339Nano)
		default:
			parts[i] = fmt.Sprintf("%v", t)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// MarshalJSON renders the key as its bare value array.
func (k Key) MarshalJSON() ([]byte, error) {
	if k.Values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(k.Values)
}

// UnmarshalJSON accepts the bare value array form.
func (k *Key) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &k.Values)
}

// canonical encodes the tuple into a string usable as a map key. Each value
// carries a type tag so "1" (string) and 1 (number) stay distinct, while
// int64(1) and float64(1) collapse onto the same record identity the way
// integral values of either width do in the inputs.
func (k Key) canonical() string {
	var b strings.Builder
	for i, v := range k.Values {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		switch t := v.(type) {
		case int64:
			b.WriteString("n:")
			b.WriteString(strconv.FormatInt(t, 10))
		case float64:
			b.WriteString("n:")
			b.WriteString(canonicalFloat(t))
		case string:
			b.WriteString("s:")
			b.WriteString(t)
		case bool:
			b.WriteString("b:")
			b.WriteString(strconv.FormatBool(t))
		case time.Time:
			b.WriteString("t:")
			b.WriteString(t.UTC().Format(time.RFC3339Nano))
		default:
			b.WriteString("v:")
			b.WriteString(fmt.Sprintf("%v", t))
		}
	}
	return b.String()
}

// canonicalFloat writes integral floats in integer form so they share
// identity with int64 key values.
func canonicalFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// keyLess orders key tuples element-wise for deterministic output:
// numerics by value, then strings, booleans, and times, with shorter
// tuples first on a shared prefix.
func keyLess(a, b Key) bool {
	n := len(a.Values)
	if len(b.Values) < n {
		n = len(b.Values)
	}
	for i := 0; i < n; i++ {
		if c := compareKeyValue(a.Values[i], b.Values[i]); c != 0 {
			return c < 0
		}
	}
	return len(a.Values) < len(b.Values)
}

func compareKeyValue(a, b any) int {
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return ra - rb
	}
	switch ra {
	case 0: // numeric
		fa, _ := numericValue(a)
		fb, _ := numericValue(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case 1: // string
		return strings.Compare(a.(string), b.(string))
	case 2: // bool, false before true
		ba, bb := a.(bool), b.(bool)
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		}
		return 1
	case 3: // time
		ta, tb := a.(time.Time), b.(time.Time)
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		}
		return 0
	}
	return 0
}

func keyRank(v any) int {
	switch v.(type) {
	case int64, float64:
		return 0
	case string:
		return 1
	case bool:
		return 2
	case time.Time:
		return 3
	}
	return 4
}
