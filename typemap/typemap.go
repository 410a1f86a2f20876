// Package typemap translates abstract protocol types into per-target
// type tokens.
package typemap

import (
	"strings"

	"github.com/itchio/bridgegen/protocol"
	"github.com/itchio/bridgegen/targets"
)

type table struct {
	types    map[string]string
	fallback string
}

var tables = map[targets.Target]*table{
	targets.TypeScript: {
		types: map[string]string{
			protocol.TypeString:  "string",
			protocol.TypeBoolean: "boolean",
			protocol.TypeUint:    "number",
			protocol.TypeInt:     "number",
			protocol.TypeDouble:  "number",
			protocol.TypeVoid:    "void",
		},
		fallback: "any",
	},
	targets.JavaScript: {
		types: map[string]string{
			protocol.TypeString:  "string",
			protocol.TypeBoolean: "boolean",
			protocol.TypeUint:    "number",
			protocol.TypeInt:     "number",
			protocol.TypeDouble:  "number",
			protocol.TypeVoid:    "void",
		},
		fallback: "any",
	},
	targets.Java: {
		types: map[string]string{
			protocol.TypeString:  "String",
			protocol.TypeBoolean: "boolean",
			protocol.TypeUint:    "long",
			protocol.TypeInt:     "int",
			protocol.TypeDouble:  "double",
			protocol.TypeVoid:    "void",
		},
		fallback: "Object",
	},
	targets.ObjectiveC: {
		types: map[string]string{
			protocol.TypeString:  "NSString *",
			protocol.TypeBoolean: "BOOL",
			protocol.TypeUint:    "NSUInteger",
			protocol.TypeInt:     "NSInteger",
			protocol.TypeDouble:  "double",
			protocol.TypeVoid:    "void",
		},
		fallback: "id",
	},
	targets.CHeader: {
		types: map[string]string{
			protocol.TypeString:  "const char *",
			protocol.TypeBoolean: "bool",
			protocol.TypeUint:    "uint64_t",
			protocol.TypeInt:     "int64_t",
			protocol.TypeDouble:  "double",
			protocol.TypeVoid:    "void",
		},
		fallback: "void *",
	},
}

// Normalize strips surrounding whitespace and any trailing run of
// commas and whitespace, so `"string, ,"` still reads as `string`.
func Normalize(raw string) string {
	return strings.TrimSpace(strings.TrimRight(raw, ", \t\r\n"))
}

// Lookup maps an abstract type to t's type token, or to t's
// fallback when the type is unknown.
func Lookup(t targets.Target, raw string) string {
	tab, ok := tables[t]
	if !ok {
		return ""
	}
	if token, ok := tab.types[Normalize(raw)]; ok {
		return token
	}
	return tab.fallback
}

// Fallback returns the token used for unknown types
func Fallback(t targets.Target) string {
	if tab, ok := tables[t]; ok {
		return tab.fallback
	}
	return ""
}

// Known returns true if raw names one of the abstract types
func Known(raw string) bool {
	norm := Normalize(raw)
	for _, at := range protocol.AbstractTypes {
		if at == norm {
			return true
		}
	}
	return false
}
