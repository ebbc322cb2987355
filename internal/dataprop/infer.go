package dataprop

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Value is a cell value after inference. Data holds nil, string, int64,
// uint64, float64, bool or time.Time depending on Kind.
type Value struct {
	Kind Kind
	Data any
}

// Infer classifies v and coerces it into its canonical Go representation.
// Strings holding integers, floats, "inf", "nan", "true" or "false" are
// coerced; other strings stay strings. Infer never fails: unknown types are
// stringified.
func Infer(v any) Value {
	switch x := v.(type) {
	case nil:
		return Value{Kind: None}
	case Value:
		return x
	case bool:
		return Value{Kind: Bool, Data: x}
	case time.Time:
		return Value{Kind: DateTime, Data: x}
	case *time.Time:
		if x == nil {
			return Value{Kind: None}
		}
		return Value{Kind: DateTime, Data: *x}
	case float32:
		// Round-trip through the shortest float32 text so 1.1 stays 1.1.
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(x), 'g', -1, 32), 64)
		return fromFloat(f)
	case float64:
		return fromFloat(x)
	case uint, uint64:
		u, err := cast.ToUint64E(x)
		if err != nil {
			return Value{Kind: String, Data: fmt.Sprint(x)}
		}
		if u > math.MaxInt64 {
			return Value{Kind: Integer, Data: u}
		}
		return Value{Kind: Integer, Data: int64(u)}
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		n, err := cast.ToInt64E(x)
		if err != nil {
			return Value{Kind: String, Data: fmt.Sprint(x)}
		}
		return Value{Kind: Integer, Data: n}
	case json.Number:
		return fromString(x.String())
	case string:
		return fromString(x)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		s = fmt.Sprint(v)
	}
	return fromString(s)
}

func fromFloat(f float64) Value {
	switch {
	case math.IsNaN(f):
		return Value{Kind: NaN, Data: f}
	case math.IsInf(f, 0):
		return Value{Kind: Infinity, Data: f}
	}
	return Value{Kind: Float, Data: f}
}

func fromString(s string) Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Value{Kind: NullString, Data: s}
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Value{Kind: Integer, Data: n}
	}
	if decimalSyntax(trimmed) {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return fromFloat(f)
		}
	}
	if strings.EqualFold(trimmed, "true") || strings.EqualFold(trimmed, "false") {
		if b, err := cast.ToBoolE(strings.ToLower(trimmed)); err == nil {
			return Value{Kind: Bool, Data: b}
		}
	}
	return Value{Kind: String, Data: s}
}

// decimalSyntax rejects the Go literal forms ParseFloat accepts beyond plain
// decimals: digit separators and hexadecimal floats.
func decimalSyntax(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	s = strings.TrimLeft(s, "+-")
	return len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X')
}

// Float64 returns the numeric value of an Integer, Float, Infinity or NaN
// value. Other kinds return 0.
func (v Value) Float64() float64 {
	switch x := v.Data.(type) {
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float64:
		return x
	}
	return 0
}
