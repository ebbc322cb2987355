package dataprop

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Default display strings.
const (
	DefaultInfValue = "Infinity"
	DefaultNaNValue = "NaN"
)

// Options control how [Format] renders a value.
type Options struct {
	// DecimalPlaces fixes the precision of Integer and Float values when
	// non-negative. A negative value lets each Float use its own precision
	// and leaves integers untouched.
	DecimalPlaces int
	// Separator groups the integer digits of numbers in threes. Empty
	// disables grouping.
	Separator string
	// InfValue and NaNValue replace the defaults for special floats.
	InfValue string
	NaNValue string
	// TimeLayout overrides the DateTime layout.
	TimeLayout string
}

// decimal place limits by magnitude: values below 10^pow keep at most n places.
var placeLimits = []struct {
	pow float64
	n   int
}{
	{-2, 6}, {-1, 5}, {0, 4}, {1, 3}, {2, 2}, {3, 1},
}

// DecimalPlaces returns the natural precision of a number: the digits of its
// shortest representation, capped by a limit that shrinks as magnitude grows.
func DecimalPlaces(v Value) int {
	if v.Kind != Float {
		return 0
	}
	f := math.Abs(v.Float64())
	text := strconv.FormatFloat(f, 'f', -1, 64)
	_, frac, ok := strings.Cut(text, ".")
	if !ok {
		return 0
	}
	limit := 1
	for _, l := range placeLimits {
		if f < math.Pow(10, l.pow) {
			limit = l.n
			break
		}
	}
	return min(limit, len(frac))
}

// ColumnDecimalPlaces returns the shared precision for the numeric values of
// a Float column: one more than the mean precision, rounded up, but never
// more than the largest precision in the column.
func ColumnDecimalPlaces(values []Value) int {
	var sum, n, most int
	for _, v := range values {
		if !v.Kind.Numeric() {
			continue
		}
		p := DecimalPlaces(v)
		sum += p
		n++
		most = max(most, p)
	}
	if n == 0 {
		return 0
	}
	mean := float64(sum) / float64(n)
	return min(int(math.Ceil(mean+1)), most)
}

// Format renders v as display text.
func Format(v Value, opts Options) string {
	switch v.Kind {
	case None:
		return ""
	case NullString:
		return ""
	case Bool:
		if b, _ := v.Data.(bool); b {
			return "True"
		}
		return "False"
	case DateTime:
		t, _ := v.Data.(time.Time)
		return formatTime(t, opts.TimeLayout)
	case Infinity:
		s := opts.InfValue
		if s == "" {
			s = DefaultInfValue
		}
		if math.IsInf(v.Float64(), -1) {
			return "-" + s
		}
		return s
	case NaN:
		if opts.NaNValue != "" {
			return opts.NaNValue
		}
		return DefaultNaNValue
	case Integer:
		if opts.DecimalPlaces > 0 {
			return group(formatFixed(v.Float64(), opts.DecimalPlaces), opts.Separator)
		}
		switch n := v.Data.(type) {
		case uint64:
			return group(strconv.FormatUint(n, 10), opts.Separator)
		case int64:
			return group(strconv.FormatInt(n, 10), opts.Separator)
		}
	case Float:
		places := opts.DecimalPlaces
		if places < 0 {
			places = DecimalPlaces(v)
		}
		return group(formatFixed(v.Float64(), places), opts.Separator)
	}
	s, _ := v.Data.(string)
	return s
}

// formatFixed renders f with exactly places decimals. Rounding works on the
// shortest decimal form of f, half to even, so 0.00125 becomes 0.0012.
func formatFixed(f float64, places int) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) <= places {
		frac += strings.Repeat("0", places-len(frac))
		if places == 0 {
			return sign + whole
		}
		return sign + whole + "." + frac
	}
	digits := []byte(whole + frac[:places])
	next, rest := frac[places], strings.TrimRight(frac[places+1:], "0")
	last := digits[len(digits)-1] - '0'
	if next > '5' || (next == '5' && (rest != "" || last%2 == 1)) {
		i := len(digits) - 1
		for ; i >= 0 && digits[i] == '9'; i-- {
			digits[i] = '0'
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		} else {
			digits[i]++
		}
	}
	cut := len(digits) - places
	if places == 0 {
		return sign + string(digits)
	}
	return sign + string(digits[:cut]) + "." + string(digits[cut:])
}

func formatTime(t time.Time, layout string) string {
	if layout != "" {
		return t.Format(layout)
	}
	if t.Location() == time.UTC {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05-07:00")
}

// group inserts sep between each run of three integer digits of a plain
// decimal number such as "-1234.50".
func group(num, sep string) string {
	if sep == "" {
		return num
	}
	sign := ""
	if strings.HasPrefix(num, "-") {
		sign, num = "-", num[1:]
	}
	whole, frac, hasFrac := strings.Cut(num, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return sign + num
	}
	grouped := humanize.BigComma(n)
	if sep != "," {
		grouped = strings.ReplaceAll(grouped, ",", sep)
	}
	if hasFrac {
		return sign + grouped + "." + frac
	}
	return sign + grouped
}
