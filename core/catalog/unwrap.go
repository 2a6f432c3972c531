package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// RootValuer is implemented by wrappers that hold a single root value.
type RootValuer interface {
	RootValue() interface{}
}

// PlainString unwraps v into a plain string. Absent values, nil wrappers and
// containers without a root value yield the empty string.
func PlainString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case Name:
		return string(val)
	case *Name:
		if val == nil {
			return ""
		}
		return string(*val)
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case RootValuer:
		return PlainString(val.RootValue())
	case map[string]interface{}:
		root, ok := val["root"]
		if !ok {
			return ""
		}
		return PlainString(root)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
