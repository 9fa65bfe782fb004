package catalog

import (
	"fmt"
	"time"
)

// ValueKind tags the closed set of value shapes a decoded translation
// table can hold. The builder consumes strings and tables; every other
// kind is reported as unsupported and skipped.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindTable
	KindInteger
	KindFloat
	KindBool
	KindArray
	KindDatetime
)

// Value is one node of a decoded translation table.
type Value struct {
	Kind  ValueKind
	Str   string           // KindString
	Table map[string]Value // KindTable
}

// TypeName returns the TOML-facing name of the value's shape, used in
// unsupported-value diagnostics.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindString:
		return "string"
	case KindTable:
		return "table"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindArray:
		return "array"
	case KindDatetime:
		return "datetime"
	}
	return "unknown"
}

// FromTOML converts the generic tree a TOML decoder produces into a
// tagged Value. Array elements are not converted: arrays are
// unsupported wholesale, only their shape matters.
func FromTOML(v any) (Value, error) {
	switch t := v.(type) {
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case map[string]any:
		table := make(map[string]Value, len(t))
		for k, child := range t {
			cv, err := FromTOML(child)
			if err != nil {
				return Value{}, err
			}
			table[k] = cv
		}
		return Value{Kind: KindTable, Table: table}, nil
	case int64, int, uint64:
		return Value{Kind: KindInteger}, nil
	case float64, float32:
		return Value{Kind: KindFloat}, nil
	case bool:
		return Value{Kind: KindBool}, nil
	case []any:
		return Value{Kind: KindArray}, nil
	case []map[string]any:
		return Value{Kind: KindArray}, nil
	case time.Time:
		return Value{Kind: KindDatetime}, nil
	}
	return Value{}, fmt.Errorf("unexpected decoded value of type %T", v)
}
