package targets

import (
	"github.com/itchio/bridgegen/comm"
	"github.com/itchio/bridgegen/config"
	"github.com/itchio/bridgegen/mansion"
	"github.com/itchio/bridgegen/targets"
	"github.com/itchio/bridgegen/typemap"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("targets", "List supported output languages")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	bridge := ctx.Bridge
	if bridge == "" {
		bridge = config.DefaultBridge
	}
	comm.Table(Headers, Rows(bridge))
}

var Headers = []string{"id", "language", "filename", "fallback"}

// Rows lists every target in canonical order.
func Rows(bridge string) [][]string {
	var rows [][]string
	for _, t := range targets.All {
		rows = append(rows, []string{
			string(t),
			t.Name(),
			t.Filename(bridge),
			typemap.Fallback(t),
		})
	}
	return rows
}
