package version

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/itchio/bridgegen/buildinfo"
	"github.com/itchio/bridgegen/comm"
	"github.com/itchio/bridgegen/mansion"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("version", "Prints the current version of bridgegen")
	ctx.Register(cmd, do)
}

type VersionData struct {
	Version       string     `json:"version"`
	BuiltAt       *time.Time `json:"builtAt"`
	Commit        string     `json:"commit"`
	GoVersion     string     `json:"goVersion"`
	VersionString string     `json:"versionString"`
}

func do(ctx *mansion.Context) {
	data := VersionData{
		Version:       buildinfo.Version,
		BuiltAt:       buildinfo.BuildTime(),
		Commit:        buildinfo.Commit,
		GoVersion:     runtime.Version(),
		VersionString: buildinfo.VersionString,
	}
	comm.ResultOrPrint(data, func(w io.Writer) {
		fmt.Fprintln(w, data.VersionString)
		if ctx.Verbose {
			fmt.Fprintf(w, "built with %s\n", data.GoVersion)
		}
	})
}
