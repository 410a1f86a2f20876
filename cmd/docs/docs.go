package docs

import (
	"github.com/go-errors/errors"
	"github.com/itchio/bridgegen/cmd/generate"
	"github.com/itchio/bridgegen/comm"
	"github.com/itchio/bridgegen/mansion"

	gen "github.com/itchio/bridgegen/generate"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("docs", "Write a markdown reference of the protocol next to the generated stubs")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	params, err := generate.Params(ctx, ctx.Consumer())
	ctx.Must(err)

	dest, err := gen.Docs(params)
	if err != nil {
		ctx.Must(errors.Wrap(err, 0))
	}

	comm.Statf("Wrote protocol reference to %s", dest)
	comm.Result(map[string]string{"path": dest})
}
