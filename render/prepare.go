package render

import (
	"fmt"
	"strings"

	"github.com/itchio/bridgegen/config"
	"github.com/itchio/bridgegen/protocol"
	"github.com/itchio/bridgegen/targets"
	"github.com/itchio/bridgegen/typemap"
)

type Options struct {
	// Bridge names the interface, class, protocol or function prefix.
	// Defaults to "JsBridge".
	Bridge string

	// Source is mentioned in the provenance header when set
	Source string
}

// BridgeName returns the configured bridge name or the default one
func (o Options) BridgeName() string {
	if o.Bridge == "" {
		return config.DefaultBridge
	}
	return o.Bridge
}

// Bridge is a protocol prepared for one target: types are mapped
// and doc comments are assembled. Formatters only deal with syntax.
type Bridge struct {
	Target  targets.Target
	Name    string
	Version string
	Source  string
	Methods []*Method
}

type Method struct {
	Name    string
	Doc     []string
	Params  []*Param
	Returns string
}

type Param struct {
	Name string
	Type string
}

// Prepare maps s into t's type vocabulary, keeping method and
// parameter order.
func Prepare(t targets.Target, s *protocol.Spec, opts Options) *Bridge {
	b := &Bridge{
		Target:  t,
		Name:    opts.BridgeName(),
		Version: s.Version,
		Source:  opts.Source,
	}
	if b.Source == "" {
		b.Source = s.Source
	}

	for _, m := range s.Methods {
		if m == nil {
			m = &protocol.Method{}
		}
		returns := m.Returns
		if returns == nil {
			returns = protocol.VoidReturn()
		}

		pm := &Method{
			Name:    m.Name,
			Doc:     docLines(m),
			Returns: typemap.Lookup(t, returns.Type),
		}
		for _, p := range m.Params {
			if p == nil {
				p = &protocol.Param{}
			}
			pm.Params = append(pm.Params, &Param{
				Name: p.Name,
				Type: typemap.Lookup(t, p.Type),
			})
		}
		b.Methods = append(b.Methods, pm)
	}
	return b
}

// docLines returns the description followed by @since and @returns
// tags. No lines means no comment block.
func docLines(m *protocol.Method) []string {
	var lines []string
	if desc := strings.TrimSpace(m.Desc); desc != "" {
		for _, line := range strings.Split(desc, "\n") {
			lines = append(lines, strings.TrimRight(line, " \t\r"))
		}
	}
	if v := strings.TrimSpace(m.MinVersion); v != "" {
		lines = append(lines, fmt.Sprintf("@since %s", v))
	}
	if m.Returns != nil {
		if desc := strings.TrimSpace(m.Returns.Desc); desc != "" {
			lines = append(lines, fmt.Sprintf("@returns %s", strings.Replace(desc, "\n", " ", -1)))
		}
	}
	return lines
}

// header is the provenance line at the top of every generated file
func (b *Bridge) header() string {
	if b.Source != "" {
		return fmt.Sprintf("Generated by bridgegen from %s (protocol version %s). Do not edit manually.", b.Source, b.Version)
	}
	return fmt.Sprintf("Generated by bridgegen (protocol version %s). Do not edit manually.", b.Version)
}

// macroPrefix is the bridge name as used in preprocessor identifiers
func (b *Bridge) macroPrefix() string {
	return strings.ToUpper(b.Name)
}

// quote builds a double-quoted literal valid in every target language.
// Only escapes shared by C, Java and JavaScript are used, other control
// characters are dropped.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// docComment writes a /** */ block, or nothing at all for empty lines.
func docComment(doc *Document, indent string, lines []string) {
	if len(lines) == 0 {
		return
	}
	doc.Line("%s/**", indent)
	for _, line := range lines {
		line = strings.Replace(line, "*/", "*\\/", -1)
		if line == "" {
			doc.Line("%s *", indent)
		} else {
			doc.Line("%s * %s", indent, line)
		}
	}
	doc.Line("%s */", indent)
}
