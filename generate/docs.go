package generate

import (
	"os"
	"path/filepath"

	"github.com/dchest/safefile"
	"github.com/itchio/bridgegen/docs"
	"github.com/itchio/bridgegen/protocol"
	"github.com/itchio/bridgegen/render"
	"github.com/itchio/wharf/state"
	"github.com/pkg/errors"
)

// Docs writes the protocol reference page to the output directory.
// Lang and All are ignored, the page covers every target.
func Docs(p Params) (string, error) {
	if p.Consumer == nil {
		p.Consumer = &state.Consumer{}
	}
	consumer := p.Consumer

	s, err := protocol.Load(p.ProtocolPath(), consumer)
	if err != nil {
		return "", err
	}

	opts := render.Options{
		Bridge: p.Bridge,
		Source: s.Source,
	}
	contents := docs.Render(s, opts)

	dir := ResolveOutDir(p.Out, p.Root, p.Home)
	err = os.MkdirAll(dir, DirMode)
	if err != nil {
		return "", errors.Wrapf(err, "creating output directory")
	}

	dest := filepath.Join(dir, docs.Filename(opts.BridgeName()))
	consumer.Debugf("Writing reference (%s)...", dest)
	err = safefile.WriteFile(dest, []byte(contents), FileMode)
	if err != nil {
		return "", errors.Wrapf(err, "writing %s", dest)
	}
	return dest, nil
}
