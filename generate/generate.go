// Package generate wires the protocol loader, target selection and
// renderers together, and writes the resulting bindings to disk.
package generate

import (
	"os"
	"path/filepath"

	"github.com/dchest/safefile"
	"github.com/itchio/bridgegen/config"
	"github.com/itchio/bridgegen/protocol"
	"github.com/itchio/bridgegen/render"
	"github.com/itchio/bridgegen/targets"
	"github.com/itchio/wharf/state"
	"github.com/pkg/errors"
)

// DirMode is used when creating the output directory
const DirMode = 0755

// FileMode is used for generated files
const FileMode = 0644

type Params struct {
	// Root is the project root. Relative protocol and output paths are
	// resolved against it.
	Root string

	// Protocol is the protocol description path, defaults to protocol.json
	Protocol string

	// Bridge names the generated interface and files, defaults to JsBridge
	Bridge string

	// Lang is the comma-separated list of targets, empty means all
	Lang string

	// All selects every target regardless of Lang
	All bool

	// Out is the output directory as given by the user
	Out string

	// Home is used to expand a leading ~ in Out
	Home string

	Consumer *state.Consumer
}

type Result struct {
	Targets []targets.Target
	Dir     string
	Files   []string
}

// ProtocolPath returns the absolute path of the protocol description
func (p Params) ProtocolPath() string {
	path := p.Protocol
	if path == "" {
		path = config.DefaultProtocol
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Root, path)
}

type plan struct {
	targets []targets.Target
	dir     string
	files   []*render.File
}

// prepare does everything that can fail before the filesystem is
// touched: loading, target selection and rendering.
func prepare(p Params) (*plan, error) {
	consumer := p.Consumer

	s, err := protocol.Load(p.ProtocolPath(), consumer)
	if err != nil {
		return nil, err
	}

	ts, err := targets.Select(p.Lang, p.All)
	if err != nil {
		return nil, err
	}

	dir := ResolveOutDir(p.Out, p.Root, p.Home)

	files, err := render.RenderAll(ts, s, render.Options{
		Bridge: p.Bridge,
		Source: s.Source,
	})
	if err != nil {
		return nil, err
	}

	return &plan{
		targets: ts,
		dir:     dir,
		files:   files,
	}, nil
}

// Run generates bindings for every selected target. Each file is
// replaced atomically, but the batch is not: if writing one target
// fails, the ones written before it stay in place.
func Run(p Params) (*Result, error) {
	if p.Consumer == nil {
		p.Consumer = &state.Consumer{}
	}
	consumer := p.Consumer

	pl, err := prepare(p)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Targets: pl.targets,
		Dir:     pl.dir,
	}

	err = os.MkdirAll(pl.dir, DirMode)
	if err != nil {
		return res, errors.Wrapf(err, "creating output directory")
	}

	for _, f := range pl.files {
		dest := filepath.Join(pl.dir, f.Filename)
		consumer.Debugf("Writing %s binding (%s)...", f.Target.Name(), dest)
		err := safefile.WriteFile(dest, []byte(f.Contents), FileMode)
		if err != nil {
			return res, errors.Wrapf(err, "writing %s", dest)
		}
		res.Files = append(res.Files, dest)
	}

	return res, nil
}
