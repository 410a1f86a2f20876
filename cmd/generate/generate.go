package generate

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-errors/errors"
	"github.com/itchio/bridgegen/comm"
	"github.com/itchio/bridgegen/generate"
	"github.com/itchio/bridgegen/mansion"
	"github.com/itchio/bridgegen/targets"
	"github.com/itchio/wharf/state"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("generate", "Generate bridge stubs from the protocol description").Default()
	ctx.Register(cmd, do)
}

type GenerateResult struct {
	Targets []targets.Target `json:"targets"`
	Dir     string           `json:"dir"`
	Files   []string         `json:"files"`
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx, ctx.Consumer()))
}

// Params builds orchestrator parameters from the command-line context
// and the project config file.
func Params(ctx *mansion.Context, consumer *state.Consumer) (generate.Params, error) {
	var home string
	cfg, err := ctx.Settings()
	if err != nil {
		if generate.NeedsHome(cfg.Out) {
			home, err = ctx.HomeDir()
			if err != nil {
				return generate.Params{}, errors.Wrap(err, 0)
			}
		}

		return generate.Params{}, errors.Wrap(err, 0)
	}

	return generate.Params{
		Root:     cfg.Root,
		Protocol: cfg.Protocol,
		Bridge:   cfg.Bridge,
		Lang:     ctx.Lang,
		All:      ctx.All,
		Out:      cfg.Out,
		Home:     home,
		Consumer: consumer,
	}, nil
}

func Do(ctx *mansion.Context, consumer *state.Consumer) error {
	params, err := Params(ctx, consumer)
	if err != nil {
		return err
	}

	comm.Opf("Generating from %s", params.ProtocolPath())
	res, err := generate.Run(params)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	comm.ResultOrPrint(&GenerateResult{
		Targets: res.Targets,
		Dir:     res.Dir,
		Files:   res.Files,
	}, func(w io.Writer) {
		fmt.Fprintln(w, Summary(res))
	})
	return nil
}

// Summary is the one-line report printed after a successful run.
func Summary(res *generate.Result) string {
	var ids []string
	for _, t := range res.Targets {
		ids = append(ids, string(t))
	}
	return fmt.Sprintf("Generated %s bindings in %s", strings.Join(ids, ", "), res.Dir)
}
