package main

import (
	"log"
	"os"

	"github.com/itchio/bridgegen/buildinfo"
	"github.com/itchio/bridgegen/comm"
	"github.com/itchio/bridgegen/mansion"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var app = kingpin.New("bridgegen", "Generate TypeScript, JavaScript, Java, Objective-C and C stubs from a protocol description")

var appArgs = struct {
	lang     *string
	out      *string
	all      *bool
	root     *string
	protocol *string
	bridge   *string
	config   *string

	json       *bool
	quiet      *bool
	verbose    *bool
	timestamps *bool
	panic      *bool
}{
	app.Flag("lang", "Comma-separated list of targets to generate (ts,js,java,objc,cpp)").String(),
	app.Flag("out", "Output directory, relative to the project root (supports ~)").String(),
	app.Flag("all", "Generate every supported target").Bool(),
	app.Flag("root", "Project root").Default(".").String(),
	app.Flag("protocol", "Protocol description, relative to the project root").String(),
	app.Flag("bridge", "Name of the generated interface and files").String(),
	app.Flag("config", "Project config file (defaults to bridgegen.toml in the project root)").String(),

	app.Flag("json", "Enable machine-readable JSON-lines output").Short('j').Bool(),
	app.Flag("quiet", "Hide everything but errors and results").Short('q').Bool(),
	app.Flag("verbose", "Display as much extra info as possible").Short('v').Bool(),
	app.Flag("timestamps", "Prefix all output by timestamps (for logging purposes)").Bool(),
	app.Flag("panic", "Panic instead of exiting on fatal errors").Hidden().Bool(),
}

func main() {
	ctx := mansion.NewContext(app)
	registerCommands(ctx)

	app.UsageTemplate(kingpin.CompactUsageTemplate)
	app.HelpFlag.Short('h')
	app.Version(buildinfo.VersionString)
	app.VersionFlag.Short('V')

	cmd, err := app.Parse(os.Args[1:])

	if *appArgs.timestamps {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	} else {
		log.SetFlags(0)
	}

	ctx.Lang = *appArgs.lang
	ctx.Out = *appArgs.out
	ctx.All = *appArgs.all
	ctx.Root = *appArgs.root
	ctx.Protocol = *appArgs.protocol
	ctx.Bridge = *appArgs.bridge
	ctx.ConfigPath = *appArgs.config
	ctx.VersionString = buildinfo.VersionString

	ctx.JSON = *appArgs.json
	ctx.Quiet = *appArgs.quiet
	ctx.Verbose = *appArgs.verbose

	comm.Configure(ctx.Quiet, ctx.Verbose, ctx.JSON, *appArgs.panic)

	if err != nil {
		pctx, _ := app.ParseContext(os.Args[1:])
		if pctx != nil {
			app.FatalUsageContext(pctx, "%s\n", err.Error())
		} else {
			app.FatalUsage("%s\n", err.Error())
		}
	}

	do := ctx.Commands[cmd]
	if do == nil {
		kingpin.Fatalf("Unknown command %s", cmd)
	}

	comm.Debugf("%s", ctx.VersionString)
	do(ctx)
}
