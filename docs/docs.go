// Package docs renders a markdown reference page for a protocol.
package docs

import (
	"fmt"
	"html"
	"strings"

	"github.com/itchio/bridgegen/protocol"
	"github.com/itchio/bridgegen/render"
	"github.com/itchio/bridgegen/targets"
	"github.com/itchio/bridgegen/typemap"
	"github.com/russross/blackfriday/v2"
)

const layout = `# {{TITLE}}

{{HEADER}}

{{METHODS}}`

// Filename is the reference page's basename for a bridge
func Filename(bridge string) string {
	return bridge + ".md"
}

// Render returns the reference page for s. Descriptions are markdown
// and get rendered to HTML, so the page reads the same on any host.
func Render(s *protocol.Spec, opts render.Options) string {
	bridge := opts.BridgeName()
	source := opts.Source
	if source == "" {
		source = s.Source
	}

	var doc render.Document
	doc.Load(layout)

	doc.Line("%s reference", bridge)
	doc.Commit("{{TITLE}}\n")

	if source != "" {
		doc.Line("<!-- Generated by bridgegen from %s (protocol version %s). Do not edit manually. -->", source, s.Version)
	} else {
		doc.Line("<!-- Generated by bridgegen (protocol version %s). Do not edit manually. -->", s.Version)
	}
	doc.Blank()
	doc.Line("Protocol version: `%s`", s.Version)
	doc.Blank()
	doc.Line("Bindings: %s", bindingList(bridge))
	doc.Commit("{{HEADER}}\n")

	doc.Line("## Methods")
	for _, m := range s.Methods {
		if m == nil {
			continue
		}
		doc.Blank()
		method(&doc, m)
	}
	doc.Commit("{{METHODS}}")

	return doc.String()
}

func bindingList(bridge string) string {
	var items []string
	for _, t := range targets.All {
		items = append(items, fmt.Sprintf("`%s` (%s)", t.Filename(bridge), t.Name()))
	}
	return strings.Join(items, ", ")
}

func method(doc *render.Document, m *protocol.Method) {
	doc.Line("### %s", m.Name)

	if desc := strings.TrimSpace(m.Desc); desc != "" {
		doc.Blank()
		doc.Line("%s", markdown(desc))
	}

	if v := strings.TrimSpace(m.MinVersion); v != "" {
		doc.Blank()
		doc.Line("<p><span class=%#v>Since</span> %s</p>", "tag", html.EscapeString(v))
	}

	doc.Blank()
	if len(m.Params) == 0 {
		doc.Line("<p><span class=%#v>Parameters</span> <em>none</em></p>", "header")
	} else {
		doc.Line("<p><span class=%#v>Parameters</span></p>", "header")
		doc.Blank()
		doc.Line("<table class=%#v>", "field-table")

		var headers []string
		headers = append(headers, "<th>Name</th>", "<th>Type</th>")
		for _, t := range targets.All {
			headers = append(headers, fmt.Sprintf("<th>%s</th>", html.EscapeString(t.Name())))
		}
		headers = append(headers, "<th>Description</th>")
		doc.Line("<tr>%s</tr>", strings.Join(headers, ""))

		for _, p := range m.Params {
			if p == nil {
				p = &protocol.Param{}
			}
			doc.Line("<tr>")
			doc.Line("<td><code>%s</code></td>", html.EscapeString(p.Name))
			doc.Line("<td>%s</td>", typeName(p.Type))
			for _, t := range targets.All {
				doc.Line("<td><code>%s</code></td>", html.EscapeString(typemap.Lookup(t, p.Type)))
			}
			doc.Line("<td>%s</td>", markdown(p.Desc))
			doc.Line("</tr>")
		}
		doc.Line("</table>")
	}

	returns := m.Returns
	if returns == nil {
		returns = protocol.VoidReturn()
	}
	doc.Blank()
	line := fmt.Sprintf("<p><span class=%#v>Returns</span> %s", "header", typeName(returns.Type))
	if desc := strings.TrimSpace(returns.Desc); desc != "" {
		line += " " + html.EscapeString(desc)
	}
	doc.Line("%s</p>", line)
}

func typeName(raw string) string {
	norm := typemap.Normalize(raw)
	class := "type builtin-type"
	if !typemap.Known(norm) {
		class = "type unknown-type"
	}
	return fmt.Sprintf("<code class=%#v>%s</code>", class, html.EscapeString(norm))
}

// markdown renders input as HTML, without a trailing newline
func markdown(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	return strings.TrimSpace(string(blackfriday.Run([]byte(input))))
}
