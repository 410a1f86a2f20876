package render

import (
	"fmt"
	"strings"
)

// Document accumulates generated lines. Lines are buffered until Commit,
// which either replaces the whole document or fills in a placeholder
// of a previously loaded layout.
type Document struct {
	doc string
	buf string
}

// Load sets a layout containing placeholders for Commit
func (d *Document) Load(layout string) {
	d.doc = layout
}

// Line appends a formatted line to the buffer
func (d *Document) Line(msg string, args ...interface{}) {
	d.buf += fmt.Sprintf(msg, args...)
	d.buf += "\n"
}

// Blank appends an empty line
func (d *Document) Blank() {
	d.buf += "\n"
}

// Commit moves the buffer into the document. With an empty name the
// buffer becomes the document, otherwise it replaces the first
// occurrence of name.
func (d *Document) Commit(name string) {
	if name == "" {
		d.doc = d.buf
	} else {
		d.doc = strings.Replace(d.doc, name, d.buf, 1)
	}
	d.buf = ""
}

func (d *Document) String() string {
	return d.doc
}
