package check

import (
	"fmt"
	"io"

	"github.com/go-errors/errors"
	"github.com/itchio/bridgegen/cmd/generate"
	"github.com/itchio/bridgegen/comm"
	"github.com/itchio/bridgegen/mansion"
	"github.com/itchio/wharf/state"

	gen "github.com/itchio/bridgegen/generate"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("check", "Verify that generated stubs are up to date with the protocol description")
	ctx.Register(cmd, do)
}

type StaleFile struct {
	Target  string `json:"target"`
	Path    string `json:"path"`
	Missing bool   `json:"missing"`
	Diff    string `json:"diff,omitempty"`
}

type CheckResult struct {
	Dir   string       `json:"dir"`
	Stale []*StaleFile `json:"stale"`
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx, ctx.Consumer()))
}

func Do(ctx *mansion.Context, consumer *state.Consumer) error {
	params, err := generate.Params(ctx, consumer)
	if err != nil {
		return err
	}

	comm.Opf("Checking stubs against %s", params.ProtocolPath())
	res, drifts, err := gen.Check(params)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	cr := &CheckResult{
		Dir:   res.Dir,
		Stale: []*StaleFile{},
	}
	for _, d := range drifts {
		cr.Stale = append(cr.Stale, &StaleFile{
			Target:  string(d.Target),
			Path:    d.Path,
			Missing: d.Missing,
			Diff:    d.Diff,
		})
	}

	comm.ResultOrPrint(cr, func(w io.Writer) {
		for _, s := range cr.Stale {
			if s.Missing {
				fmt.Fprintf(w, "missing: %s\n", s.Path)
				continue
			}
			fmt.Fprintf(w, "stale: %s\n", s.Path)
			fmt.Fprint(w, s.Diff)
		}
	})

	if len(cr.Stale) > 0 {
		return errors.Errorf("%d of %d generated files are out of date, run generate", len(cr.Stale), len(res.Targets))
	}
	comm.Statf("All %d generated files are up to date", len(res.Targets))
	return nil
}
