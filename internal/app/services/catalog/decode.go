package catalog

// ValueFromAny converts a decoded JSON payload into a Value. JSON numbers
// arrive as float64 and multiselect answers as []interface{} of strings.
func ValueFromAny(raw interface{}) (Value, bool) {
	switch v := raw.(type) {
	case bool:
		return BoolValue(v), true
	case float64:
		return NumberValue(v), true
	case string:
		return TextValue(v), true
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return Value{}, false
			}
			items = append(items, s)
		}
		return ListValue(items), true
	default:
		return Value{}, false
	}
}

// AnyFromValue renders a Value back into the plain JSON shape clients send.
func AnyFromValue(v Value) interface{} {
	switch v.Kind {
	case ValueKindBool:
		return v.Bool
	case ValueKindNumber:
		return v.Number
	case ValueKindText:
		return v.Text
	case ValueKindList:
		return v.List
	default:
		return nil
	}
}
