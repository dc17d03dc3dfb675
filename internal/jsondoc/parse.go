package jsondoc

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// Parse parses a complete JSON document into the ordered value model. The
// returned error is the underlying parser's error and carries its message
// verbatim.
func Parse(data []byte) (*Value, error) {
	var p fastjson.Parser
	parsed, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return fromFast(parsed)
}

// fromFast converts a fastjson parse tree into a Value. Object members are
// visited in source order; a duplicate key keeps its first position with
// the last value winning, matching ordered-dict semantics.
func fromFast(v *fastjson.Value) (*Value, error) {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil, err
		}
		out := NewObject()
		var convErr error
		obj.Visit(func(key []byte, item *fastjson.Value) {
			if convErr != nil {
				return
			}
			child, err := fromFast(item)
			if err != nil {
				convErr = err
				return
			}
			out.Set(string(key), child)
		})
		if convErr != nil {
			return nil, convErr
		}
		return out, nil
	case fastjson.TypeArray:
		items, err := v.Array()
		if err != nil {
			return nil, err
		}
		out := NewArray()
		for _, item := range items {
			child, err := fromFast(item)
			if err != nil {
				return nil, err
			}
			out.Append(child)
		}
		return out, nil
	case fastjson.TypeString:
		sb, err := v.StringBytes()
		if err != nil {
			return nil, err
		}
		return NewString(string(sb)), nil
	case fastjson.TypeNumber:
		// String() on a number value yields the source literal, which
		// keeps formatting like 1e3 or 0.10 intact across a round-trip.
		return NewNumber(v.String()), nil
	case fastjson.TypeTrue:
		return NewBool(true), nil
	case fastjson.TypeFalse:
		return NewBool(false), nil
	case fastjson.TypeNull:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("unexpected JSON value type %v", v.Type())
	}
}
