package jsnot

import (
	"strconv"
)

// Cast converts the wrapped value to the target kind.  Identity casts always
// succeed; beyond that the usual coercions apply: strings parse into numbers
// and bools, numbers format into strings, bools count as 1/0, floats truncate
// toward zero when cast to int.  Int casts yield int64 and float casts yield
// float64 regardless of the wrapped numeric type.  Returns a CastError when
// no conversion exists.
func (w *Wrapper) Cast(target Kind) (interface{}, error) {
	switch target {
	case KindNull:
		if w.value == nil {
			return nil, nil
		}
	case KindBool:
		out, err := w.CastBool()
		if err != nil {
			return nil, err
		}
		return out, nil
	case KindInt:
		out, err := w.CastInt()
		if err != nil {
			return nil, err
		}
		return out, nil
	case KindFloat:
		out, err := w.CastFloat()
		if err != nil {
			return nil, err
		}
		return out, nil
	case KindString:
		out, err := w.CastString()
		if err != nil {
			return nil, err
		}
		return out, nil
	case KindArray:
		if obj, ok := w.value.([]interface{}); ok {
			return obj, nil
		}
	case KindObject:
		if obj, ok := w.value.(map[string]interface{}); ok {
			return obj, nil
		}
	}
	return nil, &CastError{Target: target, Value: w.value}
}

func (w *Wrapper) CastBool() (bool, error) {
	switch value := w.value.(type) {
	case bool:
		return value, nil
	case string:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, &CastError{Target: KindBool, Value: w.value}
		}
		return parsed, nil
	}
	if number, ok := floatValue(w.value); ok {
		return number != 0, nil
	}
	return false, &CastError{Target: KindBool, Value: w.value}
}

func (w *Wrapper) CastInt() (int64, error) {
	switch value := w.value.(type) {
	case bool:
		if value {
			return 1, nil
		}
		return 0, nil
	case string:
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, &CastError{Target: KindInt, Value: w.value}
		}
		return parsed, nil
	case float32:
		return int64(value), nil
	case float64:
		return int64(value), nil
	}
	if number, ok := intValue(w.value); ok {
		return number, nil
	}
	return 0, &CastError{Target: KindInt, Value: w.value}
}

func (w *Wrapper) CastFloat() (float64, error) {
	switch value := w.value.(type) {
	case bool:
		if value {
			return 1, nil
		}
		return 0, nil
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, &CastError{Target: KindFloat, Value: w.value}
		}
		return parsed, nil
	}
	if number, ok := floatValue(w.value); ok {
		return number, nil
	}
	return 0, &CastError{Target: KindFloat, Value: w.value}
}

func (w *Wrapper) CastString() (string, error) {
	switch value := w.value.(type) {
	case string:
		return value, nil
	case bool:
		return strconv.FormatBool(value), nil
	}
	if number, ok := intValue(w.value); ok {
		return strconv.FormatInt(number, 10), nil
	}
	if number, ok := floatValue(w.value); ok {
		return strconv.FormatFloat(number, 'f', -1, 64), nil
	}
	return "", &CastError{Target: KindString, Value: w.value}
}

func intValue(value interface{}) (int64, bool) {
	switch number := value.(type) {
	case int:
		return int64(number), true
	case int8:
		return int64(number), true
	case int16:
		return int64(number), true
	case int32:
		return int64(number), true
	case int64:
		return number, true
	case uint:
		return int64(number), true
	case uint8:
		return int64(number), true
	case uint16:
		return int64(number), true
	case uint32:
		return int64(number), true
	case uint64:
		return int64(number), true
	default:
		return 0, false
	}
}

func floatValue(value interface{}) (float64, bool) {
	switch number := value.(type) {
	case float32:
		return float64(number), true
	case float64:
		return number, true
	default:
		integer, ok := intValue(value)
		return float64(integer), ok
	}
}
