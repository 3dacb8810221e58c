// Package quoting provides the literal-quoting helpers shared by the
// dialect packages.
package quoting

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// String escapes s as a SQL string literal by doubling single quotes.
func String(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Value renders v as a SQL literal. Booleans use the dialect's keywords,
// which differ between engines (TRUE/FALSE vs 1/0).
func Value(v any, boolTrue, boolFalse string) (string, error) {
	switch x := v.(type) {
	case nil:
		return "NULL", nil
	case bool:
		if x {
			return boolTrue, nil
		}
		return boolFalse, nil
	case string:
		return String(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case time.Time:
		return "'" + x.Format("2006-01-02 15:04:05") + "'", nil
	case fmt.Stringer:
		return String(x.String()), nil
	default:
		return "", fmt.Errorf("cannot render %T as a SQL literal", v)
	}
}
