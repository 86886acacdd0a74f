package jsnot

import (
	"github.com/pkg/errors"
)

// Kind classifies a decoded value into one of the shapes a JSON-ish document
// can hold.  Int and Float are distinct kinds even though encoding/json
// produces only float64: values wrapped programmatically (or decoded by a
// YAML decoder) keep their integer identity.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

var kindNames = map[Kind]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "invalid"
	}
	return name
}

func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kind != KindInvalid && kindName == name {
			return kind, nil
		}
	}
	return KindInvalid, errors.Errorf("unable to parse kind from %q", name)
}

// KindOf classifies a value.  Go types outside the decoded-document model map
// to KindInvalid, which satisfies nothing and casts to nothing.
func KindOf(value interface{}) Kind {
	switch value.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	case []interface{}:
		return KindArray
	case map[string]interface{}:
		return KindObject
	default:
		return KindInvalid
	}
}
