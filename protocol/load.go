package protocol

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/itchio/wharf/state"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatJSON Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// FormatForPath picks a document format from a file extension.
// Unknown extensions are read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and parses the protocol description at path.
func Load(path string, consumer *state.Consumer) (*Spec, error) {
	if consumer == nil {
		consumer = &state.Consumer{}
	}
	consumer.Debugf("Reading protocol (%s)", path)
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading protocol")
	}

	s, err := Parse(data, FormatForPath(path), consumer)
	if err != nil {
		if me, ok := errors.Cause(err).(*MalformedSpecError); ok && me.Path == "" {
			me.Path = path
		}
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	s.Source = filepath.Base(path)
	return s, nil
}

// Parse decodes a protocol description. Only the presence of a `methods`
// sequence is enforced, methods that don't decode cleanly keep whatever
// fields could be read and a warning is reported.
func Parse(data []byte, format Format, consumer *state.Consumer) (*Spec, error) {
	if consumer == nil {
		consumer = &state.Consumer{}
	}

	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}

	rawMethods, ok := doc["methods"]
	if !ok {
		return nil, &MalformedSpecError{Reason: "missing `methods`"}
	}
	entries, ok := asSequence(rawMethods)
	if !ok {
		return nil, &MalformedSpecError{Reason: "`methods` must be a list"}
	}

	s := &Spec{}
	if err := decodeLenient(doc, s); err != nil {
		consumer.Warnf("protocol header: %v", err)
	}

	for i, entry := range entries {
		m := &Method{}
		if err := decodeLenient(entry, m); err != nil {
			consumer.Warnf("methods[%d]: %v", i, err)
		}
		normalizeMethod(m)
		s.Methods = append(s.Methods, m)
	}
	consumer.Debugf("Protocol version (%s), %d methods", s.Version, len(s.Methods))
	return s, nil
}

func decodeDocument(data []byte, format Format) (map[string]interface{}, error) {
	var raw interface{}
	switch format {
	case FormatTOML:
		var m map[string]interface{}
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, errors.WithStack(err)
		}
		raw = m
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.WithStack(err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	doc, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &MalformedSpecError{Reason: "document must be an object"}
	}
	return doc, nil
}

// asSequence accepts any slice, since TOML arrays of tables
// come out as []map[string]interface{}.
func asSequence(v interface{}) ([]interface{}, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	res := make([]interface{}, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}
	return res, true
}

func decodeLenient(input interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       returnHook,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	return dec.Decode(input)
}

var returnType = reflect.TypeOf(Return{})

// returnHook reads `"returns": "string"` as `"returns": {"type": "string"}`
func returnHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != returnType && to != reflect.PtrTo(returnType) {
		return data, nil
	}
	if from.Kind() == reflect.String {
		return map[string]interface{}{"type": data}, nil
	}
	return data, nil
}

func normalizeMethod(m *Method) {
	if m.Returns == nil {
		m.Returns = VoidReturn()
	}
	for i, p := range m.Params {
		if p == nil {
			m.Params[i] = &Param{}
		}
	}
}
