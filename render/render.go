// Package render turns a protocol into binding source files, one
// formatter per target language.
package render

import (
	"github.com/itchio/bridgegen/protocol"
	"github.com/itchio/bridgegen/targets"
	"github.com/pkg/errors"
)

type formatter func(b *Bridge) string

var formatters = map[targets.Target]formatter{
	targets.TypeScript: typescript,
	targets.JavaScript: javascript,
	targets.Java:       java,
	targets.ObjectiveC: objc,
	targets.CHeader:    cheader,
}

// Render returns the complete source text of t's binding for s.
// The output depends on nothing but its inputs.
func Render(t targets.Target, s *protocol.Spec, opts Options) (string, error) {
	f, ok := formatters[t]
	if !ok {
		return "", errors.Errorf("no renderer for target (%s)", t)
	}
	return f(Prepare(t, s, opts)), nil
}

// File is a rendered binding
type File struct {
	Target   targets.Target
	Filename string
	Contents string
}

// RenderAll renders every target in ts, in order.
func RenderAll(ts []targets.Target, s *protocol.Spec, opts Options) ([]*File, error) {
	bridge := opts.BridgeName()

	var files []*File
	for _, t := range ts {
		contents, err := Render(t, s, opts)
		if err != nil {
			return nil, err
		}
		files = append(files, &File{
			Target:   t,
			Filename: t.Filename(bridge),
			Contents: contents,
		})
	}
	return files, nil
}
