// Package protocol loads bridge protocol descriptions.
//
// A protocol lists the methods every platform binding must expose:
//
//	{
//	  "version": "1.0.0",
//	  "methods": [
//	    {
//	      "name": "getUser",
//	      "desc": "Looks up a user",
//	      "min_version": "1.2",
//	      "params": [{ "name": "id", "type": "uint" }],
//	      "returns": { "type": "string", "desc": "user json" }
//	    }
//	  ]
//	}
//
// Names are emitted verbatim into generated code, they must already be
// valid identifiers in every target language.
package protocol

// Abstract types understood by every target. Anything else is kept as-is
// and rendered with the target's fallback type.
const (
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeUint    = "uint"
	TypeInt     = "int"
	TypeDouble  = "double"
	TypeVoid    = "void"
)

// AbstractTypes lists the known abstract types
var AbstractTypes = []string{
	TypeString,
	TypeBoolean,
	TypeUint,
	TypeInt,
	TypeDouble,
	TypeVoid,
}

type Spec struct {
	Version string    `mapstructure:"version"`
	Methods []*Method `mapstructure:"-"`

	// Source is the base name of the file the protocol was loaded from
	Source string `mapstructure:"-"`
}

type Method struct {
	Name       string   `mapstructure:"name"`
	Desc       string   `mapstructure:"desc"`
	MinVersion string   `mapstructure:"min_version"`
	Params     []*Param `mapstructure:"params"`
	Returns    *Return  `mapstructure:"returns"`
}

type Param struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
	Desc string `mapstructure:"desc"`
}

// Return describes a method's result. A bare type string in the
// protocol is read as a Return with no description.
type Return struct {
	Type string `mapstructure:"type"`
	Desc string `mapstructure:"desc"`
}

// VoidReturn is what methods without a `returns` entry get
func VoidReturn() *Return {
	return &Return{Type: TypeVoid}
}
