package sensor

import "room-summary/internal/domain/model"

// AttrNumber reads a numeric attribute, accepting numbers and numeric strings.
// The second result is false when the attribute is absent or not numeric.
func AttrNumber(state model.EntityState, name string) (float64, bool) {
	v, ok := state.Attr(name)
	if !ok {
		return 0, false
	}
	return ToFloat(v)
}

func ToFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, !isNonFinite(t)
	case float32:
		return float64(t), !isNonFinite(float64(t))
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		return NumericValue(t)
	}
	return 0, false
}
