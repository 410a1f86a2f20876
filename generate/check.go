package generate

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/itchio/bridgegen/targets"
	"github.com/itchio/wharf/state"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// Drift describes a generated file that doesn't match what would be
// generated now.
type Drift struct {
	Target  targets.Target
	Path    string
	Missing bool
	Diff    string
}

// Check renders every selected target in memory and compares it with
// what's on disk. Nothing is written.
func Check(p Params) (*Result, []*Drift, error) {
	if p.Consumer == nil {
		p.Consumer = &state.Consumer{}
	}
	consumer := p.Consumer

	pl, err := prepare(p)
	if err != nil {
		return nil, nil, err
	}

	res := &Result{
		Targets: pl.targets,
		Dir:     pl.dir,
	}

	var drifts []*Drift
	for _, f := range pl.files {
		dest := filepath.Join(pl.dir, f.Filename)
		res.Files = append(res.Files, dest)

		existing, err := ioutil.ReadFile(dest)
		if err != nil {
			if os.IsNotExist(err) {
				consumer.Debugf("(%s) is missing", dest)
				drifts = append(drifts, &Drift{
					Target:  f.Target,
					Path:    dest,
					Missing: true,
				})
				continue
			}
			return nil, nil, errors.WithStack(err)
		}

		if string(existing) == f.Contents {
			consumer.Debugf("(%s) is up to date", dest)
			continue
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(existing)),
			B:        difflib.SplitLines(f.Contents),
			FromFile: dest + " (on disk)",
			ToFile:   dest + " (generated)",
			Context:  3,
		})
		if err != nil {
			return nil, nil, errors.WithStack(err)
		}
		drifts = append(drifts, &Drift{
			Target: f.Target,
			Path:   dest,
			Diff:   diff,
		})
	}

	return res, drifts, nil
}
