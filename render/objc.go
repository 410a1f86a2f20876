package render

import (
	"fmt"
	"strings"
)

// objc renders a protocol. Selectors are built from the method name
// and the parameter names: `- (R)name:(A)a b:(B)b;`
func objc(b *Bridge) string {
	var doc Document

	doc.Line("// %s", b.header())
	doc.Blank()
	doc.Line("#import <Foundation/Foundation.h>")
	doc.Blank()
	doc.Line("#define %s_VERSION @%s", b.macroPrefix(), quote(b.Version))
	doc.Blank()
	doc.Line("@protocol %s <NSObject>", b.Name)
	for _, m := range b.Methods {
		doc.Blank()
		docComment(&doc, "", m.Doc)
		doc.Line("- (%s)%s;", m.Returns, selector(m))
	}
	doc.Blank()
	doc.Line("@end")

	doc.Commit("")
	return doc.String()
}

func selector(m *Method) string {
	if len(m.Params) == 0 {
		return m.Name
	}

	var parts []string
	for i, p := range m.Params {
		keyword := p.Name
		if i == 0 {
			keyword = m.Name
		}
		parts = append(parts, fmt.Sprintf("%s:(%s)%s", keyword, p.Type, p.Name))
	}
	return strings.Join(parts, " ")
}
